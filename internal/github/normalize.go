package github

import gh "github.com/google/go-github/v68/github"

const (
	defaultBio      = "No bio"
	defaultLanguage = "Unknown"
)

// NormalizeUser keeps only the user fields exposed to the host.
func NormalizeUser(u *gh.User) UserSummary {
	if u == nil {
		return UserSummary{Bio: defaultBio}
	}
	s := UserSummary{
		Username:  u.Login,
		ID:        u.ID,
		Followers: u.Followers,
		Repos:     u.PublicRepos,
		Bio:       u.GetBio(),
	}
	if s.Bio == "" {
		s.Bio = defaultBio
	}
	return s
}

// NormalizeRepo keeps only the repository fields exposed to the host.
func NormalizeRepo(r *gh.Repository) RepoSummary {
	if r == nil {
		return RepoSummary{Language: defaultLanguage}
	}
	s := RepoSummary{
		Name:     r.Name,
		Stars:    r.StargazersCount,
		Forks:    r.ForksCount,
		Language: r.GetLanguage(),
	}
	if r.Owner != nil {
		s.Owner = r.Owner.Login
	}
	if s.Language == "" {
		s.Language = defaultLanguage
	}
	return s
}
