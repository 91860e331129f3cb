// Package toolset describes the GitHub tools and prompts offered to hosts and
// dispatches calls to them. Every host (MCP server, CLI, Lambda) goes through
// Invoke so they all expose the same surface.
package toolset

import (
	"context"
	"errors"
	"fmt"
	"strings"

	ghub "github.com/stahnma/gh-mcp/internal/github"
)

var (
	ErrUnknownTool     = errors.New("unknown tool")
	ErrMissingArgument = errors.New("missing required argument")
)

// Kind separates tools from prompts.
type Kind int

const (
	KindTool Kind = iota
	KindPrompt
)

// Param is one named string argument.
type Param struct {
	Name        string
	Description string
}

// Definition describes one callable unit for host-side discovery.
type Definition struct {
	Name        string
	Kind        Kind
	Description string
	Params      []Param

	call func(ctx context.Context, client ghub.Client, args map[string]string) (any, error)
}

// ParamNames returns the parameter names in declaration order.
func (d Definition) ParamNames() []string {
	names := make([]string, len(d.Params))
	for i, p := range d.Params {
		names[i] = p.Name
	}
	return names
}

var (
	usernameParam = Param{Name: "username", Description: "Name of the GitHub profile to look up"}
	repoNameParam = Param{Name: "repo_name", Description: "Name of the GitHub repository to search for"}
	ownerParam    = Param{Name: "owner", Description: "Login of the repository owner (user or organization)"}
	repoParam     = Param{Name: "repo", Description: "Name of the repository"}
)

var definitions = []Definition{
	{
		Name:        "search_users",
		Kind:        KindTool,
		Description: "Search for GitHub users (returns minimal data).",
		Params:      []Param{usernameParam},
		call: func(ctx context.Context, c ghub.Client, args map[string]string) (any, error) {
			return ghub.SearchUsers(ctx, c, args["username"])
		},
	},
	{
		Name:        "get_user_details",
		Kind:        KindTool,
		Description: "Fetch details of a GitHub user (returns minimal data).",
		Params:      []Param{usernameParam},
		call: func(ctx context.Context, c ghub.Client, args map[string]string) (any, error) {
			return ghub.GetUserDetails(ctx, c, args["username"])
		},
	},
	{
		Name:        "search_repositories",
		Kind:        KindTool,
		Description: "Search for repositories on GitHub (returns minimal data).",
		Params:      []Param{repoNameParam},
		call: func(ctx context.Context, c ghub.Client, args map[string]string) (any, error) {
			return ghub.SearchRepositories(ctx, c, args["repo_name"])
		},
	},
	{
		Name:        "get_repository_details",
		Kind:        KindTool,
		Description: "Get details of a GitHub repository (returns minimal data).",
		Params:      []Param{ownerParam, repoParam},
		call: func(ctx context.Context, c ghub.Client, args map[string]string) (any, error) {
			return ghub.GetRepositoryDetails(ctx, c, args["owner"], args["repo"])
		},
	},
	{
		Name:        "get_user_repos",
		Kind:        KindTool,
		Description: "Fetch public repositories of a user (returns minimal data).",
		Params:      []Param{usernameParam},
		call: func(ctx context.Context, c ghub.Client, args map[string]string) (any, error) {
			return ghub.ListUserRepos(ctx, c, args["username"])
		},
	},
	{
		Name:        "github_user_summary",
		Kind:        KindPrompt,
		Description: "Generate a structured summary of a GitHub user including user details and top repositories.",
		Params:      []Param{usernameParam},
		call: func(ctx context.Context, c ghub.Client, args map[string]string) (any, error) {
			return ghub.Summarize(ctx, c, args["username"]), nil
		},
	},
}

// All returns every definition, tools first.
func All() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

// Tools returns the tool definitions.
func Tools() []Definition {
	return byKind(KindTool)
}

// Prompts returns the prompt definitions.
func Prompts() []Definition {
	return byKind(KindPrompt)
}

func byKind(k Kind) []Definition {
	var out []Definition
	for _, d := range definitions {
		if d.Kind == k {
			out = append(out, d)
		}
	}
	return out
}

// Lookup finds a tool or prompt by name.
func Lookup(name string) (Definition, bool) {
	for _, d := range definitions {
		if d.Name == name {
			return d, true
		}
	}
	return Definition{}, false
}

// Invoke runs the named tool or prompt. The returned error covers host-level
// mistakes only (unknown name, missing argument); upstream failures come back
// inside the Outcome so the caller always has a value to hand on.
func Invoke(ctx context.Context, client ghub.Client, name string, args map[string]string) (ghub.Outcome[any], error) {
	d, ok := Lookup(name)
	if !ok {
		return ghub.Outcome[any]{}, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	for _, p := range d.Params {
		if strings.TrimSpace(args[p.Name]) == "" {
			return ghub.Outcome[any]{}, fmt.Errorf("%s: %w: %s", name, ErrMissingArgument, p.Name)
		}
	}

	v, err := d.call(ctx, client, args)
	return ghub.Outcome[any]{Value: v, Err: err}, nil
}
