package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/stahnma/gh-mcp/internal/config"
	ghub "github.com/stahnma/gh-mcp/internal/github"
	"github.com/stahnma/gh-mcp/internal/toolset"
)

// App holds shared application state.
type App struct {
	Config   config.Config
	Client   ghub.Client
	Logger   *slog.Logger
	Compact  bool
	GitSHA   string
	GitDirty string
}

// NewApp creates a new App from the given configuration.
func NewApp(cfg config.Config, gitSHA, gitDirty string) (*App, error) {
	logger, err := NewLogger(os.Stderr, cfg)
	if err != nil {
		return nil, fmt.Errorf("configuring logger: %w", err)
	}
	return &App{
		Config:   cfg,
		Logger:   logger,
		GitSHA:   gitSHA,
		GitDirty: gitDirty,
	}, nil
}

// NewLogger builds the structured logger. Output never goes to stdout,
// which belongs to the MCP transport.
func NewLogger(w io.Writer, cfg config.Config) (*slog.Logger, error) {
	level := slog.LevelInfo
	if cfg.DebugMode {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	switch cfg.LogFormat {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown LOG_FORMAT %q", cfg.LogFormat)
	}
}

// ensureClient creates the GitHub client if it doesn't exist.
func (a *App) ensureClient() error {
	if a.Client != nil {
		return nil
	}
	client, err := ghub.NewClient(a.Config.BaseURL)
	if err != nil {
		return fmt.Errorf("creating GitHub client: %w", err)
	}
	a.Client = client
	return nil
}

// Invoke runs a tool or prompt by name against the App's client.
func (a *App) Invoke(ctx context.Context, name string, args map[string]string) (ghub.Outcome[any], error) {
	if err := a.ensureClient(); err != nil {
		return ghub.Outcome[any]{}, err
	}
	out, err := toolset.Invoke(ctx, a.Client, name, args)
	if err != nil {
		return out, err
	}
	if out.Err != nil {
		a.Logger.Debug("upstream failure", "tool", name, "error", out.Err)
	}
	return out, nil
}

// Version returns the build identifier reported to hosts.
func (a *App) Version() string {
	if a.GitSHA == "" {
		return "dev"
	}
	if a.GitDirty != "" {
		return a.GitSHA + "-dirty"
	}
	return a.GitSHA
}

// NewRootCommand creates the root cobra command with all subcommands.
func (a *App) NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gh-mcp",
		Short: "GitHub user and repository lookups for MCP hosts.",
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	rootCmd.PersistentFlags().BoolVar(&a.Compact, "compact", false, "Print single-line JSON")

	rootCmd.AddCommand(a.newServeCommand())
	for _, tc := range toolCommands {
		rootCmd.AddCommand(a.newToolCommand(tc.use, tc.tool))
	}
	rootCmd.AddCommand(a.newToolsCommand())
	rootCmd.AddCommand(a.newVersionCommand())

	return rootCmd
}
