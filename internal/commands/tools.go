package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stahnma/gh-mcp/internal/format"
	"github.com/stahnma/gh-mcp/internal/toolset"
)

// toolCommands maps CLI subcommands onto tool set entries.
var toolCommands = []struct {
	use  string
	tool string
}{
	{"search-users", "search_users"},
	{"user", "get_user_details"},
	{"search-repos", "search_repositories"},
	{"repo", "get_repository_details"},
	{"user-repos", "get_user_repos"},
	{"summary", "github_user_summary"},
}

func (a *App) newToolCommand(use, tool string) *cobra.Command {
	d, ok := toolset.Lookup(tool)
	if !ok {
		panic("commands: no tool set entry for " + tool)
	}
	names := d.ParamNames()

	usage := use
	for _, n := range names {
		usage += " <" + n + ">"
	}

	return &cobra.Command{
		Use:   usage,
		Short: d.Description,
		Args:  cobra.ExactArgs(len(names)),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := make(map[string]string, len(names))
			for i, n := range names {
				params[n] = args[i]
			}
			out, err := a.Invoke(cmd.Context(), d.Name, params)
			if err != nil {
				return fmt.Errorf("%s: %w", use, err)
			}
			return format.WriteJSON(cmd.OutOrStdout(), out, a.Compact)
		},
	}
}

func (a *App) newToolsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the tools and prompts offered to MCP hosts",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, d := range toolset.All() {
				kind := "tool"
				if d.Kind == toolset.KindPrompt {
					kind = "prompt"
				}
				fmt.Fprintf(w, "%s (%s): %s\n", d.Name, kind, d.Description)
				for _, p := range d.Params {
					fmt.Fprintf(w, "  %-10s %s\n", p.Name, p.Description)
				}
			}
			return nil
		},
	}
}
