package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	ghub "github.com/stahnma/gh-mcp/internal/github"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	BaseURL     string
	DebugMode   bool
	LogFormat   string
	S3Bucket    string
	S3ObjectKey string
	AWSRegion   string
}

// FromEnvironment creates a Config from environment variables. A .env file
// in the working directory is loaded first when present; variables already
// set in the environment win.
func FromEnvironment() Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("GH_MCP_BASE_URL", ghub.DefaultBaseURL)
	v.SetDefault("LOG_FORMAT", "text")

	return Config{
		BaseURL:     v.GetString("GH_MCP_BASE_URL"),
		DebugMode:   truthy(v.GetString("DEBUG")),
		LogFormat:   strings.ToLower(v.GetString("LOG_FORMAT")),
		S3Bucket:    v.GetString("S3_BUCKET_NAME"),
		S3ObjectKey: v.GetString("S3_OBJECT_KEY"),
		AWSRegion:   v.GetString("AWS_REGION"),
	}
}

// ArchiveEnabled reports whether Lambda results should be copied to S3.
func (c Config) ArchiveEnabled() bool {
	return c.S3Bucket != "" && c.S3ObjectKey != ""
}

func truthy(s string) bool {
	return s != "" && s != "0" && strings.ToLower(s) != "false"
}
