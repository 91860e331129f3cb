package lambda

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/stahnma/gh-mcp/internal/commands"
	"github.com/stahnma/gh-mcp/internal/format"
)

// Event is a single tool or prompt invocation.
type Event struct {
	Tool      string            `json:"tool"`
	Arguments map[string]string `json:"arguments"`
}

// uploadFunc stores body under bucket/key.
type uploadFunc func(ctx context.Context, region, bucket, key string, body []byte) error

// NewHandler returns a Lambda handler that runs one tool per invocation and,
// when configured, archives the result to S3.
func NewHandler(app *commands.App) func(context.Context, Event) (json.RawMessage, error) {
	return newHandler(app, uploadToS3, time.Now)
}

func newHandler(app *commands.App, upload uploadFunc, now func() time.Time) func(context.Context, Event) (json.RawMessage, error) {
	return func(ctx context.Context, event Event) (json.RawMessage, error) {
		if event.Tool == "" {
			return nil, fmt.Errorf("event has no tool name")
		}

		out, err := app.Invoke(ctx, event.Tool, event.Arguments)
		if err != nil {
			return nil, err
		}
		body, err := format.Marshal(out, true)
		if err != nil {
			return nil, fmt.Errorf("encoding %s result: %w", event.Tool, err)
		}

		cfg := app.Config
		if cfg.ArchiveEnabled() {
			key := objectKey(cfg.S3ObjectKey, now())
			if err := upload(ctx, cfg.AWSRegion, cfg.S3Bucket, key, []byte(body)); err != nil {
				return nil, fmt.Errorf("failed to upload result to S3: %w", err)
			}
			app.Logger.Info("archived result", "tool", event.Tool, "bucket", cfg.S3Bucket, "key", key)
		}

		return json.RawMessage(body), nil
	}
}

// objectKey substitutes the date for a %s placeholder in the configured key.
func objectKey(pattern string, t time.Time) string {
	return strings.ReplaceAll(pattern, "%s", t.Format("2006-Jan-02"))
}

func uploadToS3(ctx context.Context, region, bucket, key string, body []byte) error {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}

	svc := s3.NewFromConfig(cfg)
	_, err = svc.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	return err
}
