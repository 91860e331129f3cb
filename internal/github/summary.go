package github

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Summarize combines a user's details with their top repositories. A failed
// lookup occupies its own field and never aborts the other.
func Summarize(ctx context.Context, client Client, username string) Summary {
	var s Summary
	var g errgroup.Group

	g.Go(func() error {
		user, err := GetUserDetails(ctx, client, username)
		s.UserInfo = Outcome[UserSummary]{Value: user, Err: err}
		return nil
	})
	g.Go(func() error {
		repos, err := ListUserRepos(ctx, client, username)
		s.TopRepositories = Outcome[[]RepoSummary]{Value: repos, Err: err}
		return nil
	})

	// Neither goroutine returns an error; failures are recorded in s.
	_ = g.Wait()
	return s
}
