package github

import (
	"context"
	"encoding/json"
	"testing"
)

func TestSummarize(t *testing.T) {
	client := newFixtureClient(t, map[string]string{
		"users/torvalds":                  torvaldsUser,
		"users/torvalds/repos?per_page=5": torvaldsRepos,
	})

	s := Summarize(context.Background(), client, "torvalds")
	if s.UserInfo.Err != nil {
		t.Fatalf("user_info error: %v", s.UserInfo.Err)
	}
	if s.TopRepositories.Err != nil {
		t.Fatalf("top_repositories error: %v", s.TopRepositories.Err)
	}
	if *s.UserInfo.Value.Username != "torvalds" {
		t.Errorf("username = %q", *s.UserInfo.Value.Username)
	}
	if n := len(s.TopRepositories.Value); n == 0 || n > 5 {
		t.Errorf("got %d repos, want 1..5", n)
	}
	assertKeys(t, s, "user_info", "top_repositories")
}

func TestSummarize_PartialFailure(t *testing.T) {
	client := newFixtureClient(t, map[string]string{
		"users/torvalds/repos?per_page=5": torvaldsRepos,
	})
	client.errs["users/torvalds"] = &APIError{Kind: KindRateLimited, Message: msgRateLimited}

	s := Summarize(context.Background(), client, "torvalds")
	if s.UserInfo.Err == nil {
		t.Fatal("expected user_info to carry the error")
	}
	if s.TopRepositories.Err != nil {
		t.Fatalf("top_repositories should succeed, got %v", s.TopRepositories.Err)
	}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	var decoded struct {
		UserInfo        map[string]any   `json:"user_info"`
		TopRepositories []map[string]any `json:"top_repositories"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode %s: %v", data, err)
	}
	if decoded.UserInfo["error"] != msgRateLimited || len(decoded.UserInfo) != 1 {
		t.Errorf("user_info = %v, want only the error object", decoded.UserInfo)
	}
	if len(decoded.TopRepositories) != 5 {
		t.Errorf("got %d repos, want 5", len(decoded.TopRepositories))
	}
}

func TestSummarize_BothFail(t *testing.T) {
	client := newFixtureClient(t, nil)
	client.errs["users/ghost"] = &APIError{Kind: KindNetwork, Message: "404 Client Error: Not Found for url: x"}
	client.errs["users/ghost/repos?per_page=5"] = &APIError{Kind: KindNetwork, Message: "404 Client Error: Not Found for url: y"}

	s := Summarize(context.Background(), client, "ghost")
	if s.UserInfo.Err == nil || s.TopRepositories.Err == nil {
		t.Errorf("expected both fields to carry errors, got %+v", s)
	}
}
