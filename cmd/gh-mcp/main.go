package main

import (
	"fmt"
	"log"
	"os"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/stahnma/gh-mcp/internal/commands"
	"github.com/stahnma/gh-mcp/internal/config"
	lambdapkg "github.com/stahnma/gh-mcp/internal/lambda"
)

var (
	GitSHA   string
	GitDirty string
)

func main() {
	cfg := config.FromEnvironment()

	app, err := commands.NewApp(cfg, GitSHA, GitDirty)
	if err != nil {
		log.Fatalf("Error initializing application: %v", err)
	}

	if os.Getenv("LAMBDA_TASK_ROOT") != "" {
		awslambda.Start(lambdapkg.NewHandler(app))
	} else {
		rootCmd := app.NewRootCommand()
		if err := rootCmd.Execute(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
