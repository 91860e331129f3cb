package github

import (
	"context"
	"fmt"
	"net/url"

	gh "github.com/google/go-github/v68/github"
)

// perPage is the fixed page size for every list request.
const perPage = 5

// SearchUsers searches GitHub users by name and returns login/id pairs.
func SearchUsers(ctx context.Context, client Client, username string) ([]SearchHit, error) {
	endpoint := fmt.Sprintf("search/users?q=%s&per_page=%d", url.QueryEscape(username), perPage)
	var result gh.UsersSearchResult
	if err := client.Get(ctx, endpoint, &result); err != nil {
		return nil, err
	}

	hits := make([]SearchHit, 0, len(result.Users))
	for _, u := range capped(result.Users) {
		if u == nil {
			continue
		}
		hits = append(hits, SearchHit{Username: u.Login, ID: u.ID})
	}
	return hits, nil
}

// GetUserDetails fetches a single user.
func GetUserDetails(ctx context.Context, client Client, username string) (UserSummary, error) {
	var user gh.User
	if err := client.Get(ctx, "users/"+pathSegment(username), &user); err != nil {
		return UserSummary{}, err
	}
	return NormalizeUser(&user), nil
}

// SearchRepositories searches repositories by name.
func SearchRepositories(ctx context.Context, client Client, repoName string) ([]RepoSummary, error) {
	endpoint := fmt.Sprintf("search/repositories?q=%s&per_page=%d", url.QueryEscape(repoName), perPage)
	var result gh.RepositoriesSearchResult
	if err := client.Get(ctx, endpoint, &result); err != nil {
		return nil, err
	}
	return normalizeRepos(result.Repositories), nil
}

// GetRepositoryDetails fetches a single repository.
func GetRepositoryDetails(ctx context.Context, client Client, owner, repo string) (RepoSummary, error) {
	endpoint := fmt.Sprintf("repos/%s/%s", pathSegment(owner), pathSegment(repo))
	var repository gh.Repository
	if err := client.Get(ctx, endpoint, &repository); err != nil {
		return RepoSummary{}, err
	}
	return NormalizeRepo(&repository), nil
}

// ListUserRepos lists the first page of a user's public repositories.
func ListUserRepos(ctx context.Context, client Client, username string) ([]RepoSummary, error) {
	endpoint := fmt.Sprintf("users/%s/repos?per_page=%d", pathSegment(username), perPage)
	var repos []*gh.Repository
	if err := client.Get(ctx, endpoint, &repos); err != nil {
		return nil, err
	}
	return normalizeRepos(repos), nil
}

// pathSegment escapes s as a single path segment. Dot segments are
// percent-encoded so URL resolution cannot walk out of the endpoint template.
func pathSegment(s string) string {
	switch s {
	case ".":
		return "%2E"
	case "..":
		return "%2E%2E"
	}
	return url.PathEscape(s)
}

func normalizeRepos(repos []*gh.Repository) []RepoSummary {
	out := make([]RepoSummary, 0, len(repos))
	for _, r := range capped(repos) {
		if r == nil {
			continue
		}
		out = append(out, NormalizeRepo(r))
	}
	return out
}

// capped trims upstream lists that ignore per_page.
func capped[T any](items []T) []T {
	if len(items) > perPage {
		return items[:perPage]
	}
	return items
}
