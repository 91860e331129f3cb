// Package mcpserver exposes the tool set over the Model Context Protocol.
package mcpserver

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/stahnma/gh-mcp/internal/format"
	ghub "github.com/stahnma/gh-mcp/internal/github"
	"github.com/stahnma/gh-mcp/internal/toolset"
)

const serverName = "github_project"

// New builds an MCP server advertising every tool and prompt in the tool set.
func New(client ghub.Client, version string, logger *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer(serverName, version,
		server.WithToolCapabilities(false),
		server.WithPromptCapabilities(false),
		server.WithRecovery(),
	)

	for _, d := range toolset.Tools() {
		s.AddTool(newTool(d), toolHandler(client, d, logger))
	}
	for _, d := range toolset.Prompts() {
		s.AddPrompt(newPrompt(d), promptHandler(client, d, logger))
	}
	return s
}

// ServeStdio runs s over the given streams until ctx is done or in closes.
func ServeStdio(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer, logger *slog.Logger) error {
	stdio := server.NewStdioServer(s)
	stdio.SetErrorLogger(slog.NewLogLogger(logger.Handler(), slog.LevelError))
	return stdio.Listen(ctx, in, out)
}

func newTool(d toolset.Definition) mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(d.Description),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{ReadOnlyHint: mcp.ToBoolPtr(true)}),
	}
	for _, p := range d.Params {
		opts = append(opts, mcp.WithString(p.Name, mcp.Required(), mcp.Description(p.Description)))
	}
	return mcp.NewTool(d.Name, opts...)
}

func newPrompt(d toolset.Definition) mcp.Prompt {
	opts := []mcp.PromptOption{mcp.WithPromptDescription(d.Description)}
	for _, p := range d.Params {
		opts = append(opts, mcp.WithArgument(p.Name, mcp.ArgumentDescription(p.Description), mcp.RequiredArgument()))
	}
	return mcp.NewPrompt(d.Name, opts...)
}

func toolHandler(client ghub.Client, d toolset.Definition, logger *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := make(map[string]string, len(d.Params))
		for _, p := range d.Params {
			v, err := req.RequireString(p.Name)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			args[p.Name] = v
		}
		logger.Debug("tool call", "tool", d.Name, "args", args)

		out, err := toolset.Invoke(ctx, client, d.Name, args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		text, err := format.Marshal(out, false)
		if err != nil {
			return nil, fmt.Errorf("encoding %s result: %w", d.Name, err)
		}
		if out.Err != nil {
			logger.Warn("upstream failure", "tool", d.Name, "error", out.Err)
			return mcp.NewToolResultError(text), nil
		}
		return mcp.NewToolResultText(text), nil
	}
}

func promptHandler(client ghub.Client, d toolset.Definition, logger *slog.Logger) server.PromptHandlerFunc {
	return func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		logger.Debug("prompt request", "prompt", d.Name, "args", req.Params.Arguments)

		out, err := toolset.Invoke(ctx, client, d.Name, req.Params.Arguments)
		if err != nil {
			return nil, err
		}
		text, err := format.Marshal(out, false)
		if err != nil {
			return nil, fmt.Errorf("encoding %s result: %w", d.Name, err)
		}
		return mcp.NewGetPromptResult(d.Description, []mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
		}), nil
	}
}
