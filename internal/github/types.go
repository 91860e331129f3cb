package github

import "encoding/json"

// UserSummary is the reduced form of a GitHub user. Fields absent upstream
// encode as null; Bio falls back to a placeholder.
type UserSummary struct {
	Username  *string `json:"username"`
	ID        *int64  `json:"id"`
	Followers *int    `json:"followers"`
	Repos     *int    `json:"repos"`
	Bio       string  `json:"bio"`
}

// RepoSummary is the reduced form of a GitHub repository.
type RepoSummary struct {
	Name     *string `json:"name"`
	Owner    *string `json:"owner"`
	Stars    *int    `json:"stars"`
	Forks    *int    `json:"forks"`
	Language string  `json:"language"`
}

// SearchHit is one user search result.
type SearchHit struct {
	Username *string `json:"username"`
	ID       *int64  `json:"id"`
}

// Outcome holds either a value or the error that replaced it.
type Outcome[T any] struct {
	Value T
	Err   error
}

// MarshalJSON encodes the value, or the error object when Err is set.
func (o Outcome[T]) MarshalJSON() ([]byte, error) {
	if o.Err != nil {
		return json.Marshal(ErrorValue(o.Err))
	}
	return json.Marshal(o.Value)
}

// Summary aggregates a user's details and top repositories.
type Summary struct {
	UserInfo        Outcome[UserSummary]   `json:"user_info"`
	TopRepositories Outcome[[]RepoSummary] `json:"top_repositories"`
}
