package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v68/github"
)

const (
	// DefaultBaseURL is the public GitHub REST origin.
	DefaultBaseURL = "https://api.github.com/"

	mediaTypeV3    = "application/vnd.github.v3+json"
	userAgent      = "gh-mcp-client"
	requestTimeout = 5 * time.Second
)

// Client defines the GitHub API access used by the tool operations.
type Client interface {
	// Get issues a GET for endpoint, relative to the base URL, and decodes
	// the JSON body into v. Failures are returned as *APIError.
	Get(ctx context.Context, endpoint string, v any) error
}

// realClient wraps the go-github client to implement Client.
type realClient struct {
	inner *gh.Client
}

// NewClient creates an unauthenticated GitHub API client rooted at baseURL.
// An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL string) (Client, error) {
	return newClient(baseURL, &http.Client{Timeout: requestTimeout})
}

func newClient(baseURL string, httpClient *http.Client) (*realClient, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}

	inner := gh.NewClient(httpClient)
	inner.BaseURL = u
	inner.UserAgent = userAgent
	return &realClient{inner: inner}, nil
}

func (c *realClient) Get(ctx context.Context, endpoint string, v any) error {
	req, err := c.inner.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return &APIError{Kind: KindNetwork, Message: err.Error(), Err: err}
	}
	req.Header.Set("Accept", mediaTypeV3)

	resp, err := c.inner.Do(ctx, req, v)
	if err != nil {
		return classify(resp, err)
	}
	return nil
}
