package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stahnma/gh-mcp/internal/mcpserver"
)

func (a *App) newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the GitHub tools over MCP on stdin/stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureClient(); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			s := mcpserver.New(a.Client, a.Version(), a.Logger)
			a.Logger.Info("serving MCP over stdio", "base_url", a.Config.BaseURL, "version", a.Version())
			return mcpserver.ServeStdio(ctx, s, cmd.InOrStdin(), cmd.OutOrStdout(), a.Logger)
		},
	}
}
