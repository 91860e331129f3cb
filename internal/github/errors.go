package github

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	gh "github.com/google/go-github/v68/github"
)

const (
	msgTimeout     = "Request timed out. Check your internet connection."
	msgRateLimited = "GitHub API rate limit exceeded. Try again later."

	headerRateRemaining = "X-RateLimit-Remaining"
)

// ErrorKind classifies a failed GitHub request.
type ErrorKind int

const (
	// KindNetwork covers transport failures, undecodable bodies and non-2xx statuses.
	KindNetwork ErrorKind = iota
	KindTimeout
	KindRateLimited
)

func (k ErrorKind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindRateLimited:
		return "rate_limited"
	default:
		return "network"
	}
}

// APIError is the only error the tool operations return for upstream failures.
// Message is the human-readable text handed to the host.
type APIError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// ErrorObject is the wire form of a failed call.
type ErrorObject struct {
	Error string `json:"error"`
}

// ErrorValue converts err into its wire form.
func ErrorValue(err error) ErrorObject {
	return ErrorObject{Error: err.Error()}
}

// classify maps a go-github failure onto an APIError. The rate-limit check
// runs before the generic status check so a 403 carrying rate-limit headers
// is never reported as a plain client error.
func classify(resp *gh.Response, err error) *APIError {
	var rateErr *gh.RateLimitError
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &rateErr) || errors.As(err, &abuseErr) || rateLimited(resp) {
		return &APIError{Kind: KindRateLimited, Message: msgRateLimited, Err: err}
	}
	if isTimeout(err) {
		return &APIError{Kind: KindTimeout, Message: msgTimeout, Err: err}
	}
	if resp != nil && resp.Response != nil && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		return &APIError{Kind: KindNetwork, Message: statusMessage(resp.Response), Err: err}
	}
	return &APIError{Kind: KindNetwork, Message: err.Error(), Err: err}
}

// rateLimited reports a 429, or a 403 carrying a rate-limit header.
func rateLimited(resp *gh.Response) bool {
	if resp == nil || resp.Response == nil {
		return false
	}
	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return true
	case http.StatusForbidden:
		return len(resp.Header.Values(headerRateRemaining)) > 0
	}
	return false
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// statusMessage renders e.g. "404 Client Error: Not Found for url: https://...".
func statusMessage(r *http.Response) string {
	class := "Client"
	if r.StatusCode >= 500 {
		class = "Server"
	}
	var target string
	if r.Request != nil && r.Request.URL != nil {
		target = r.Request.URL.String()
	}
	return fmt.Sprintf("%d %s Error: %s for url: %s", r.StatusCode, class, http.StatusText(r.StatusCode), target)
}
