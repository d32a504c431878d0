package github

import "strconv"

// Profile is the subset of a GitHub user document the tool displays.
// Name and Bio are nullable on the remote side and stay nil when absent.
type Profile struct {
	Login       string  `json:"login"`
	Name        *string `json:"name"`
	Bio         *string `json:"bio"`
	PublicRepos int     `json:"public_repos"`
	AvatarURL   string  `json:"avatar_url"`
	HTMLURL     string  `json:"html_url"`
}

// DisplayLabel returns the display name, falling back to the login handle.
func (p Profile) DisplayLabel() string {
	if p.Name != nil && *p.Name != "" {
		return *p.Name
	}
	return p.Login
}

// Biography returns the bio text, or "" when the user has none.
func (p Profile) Biography() string {
	if p.Bio == nil {
		return ""
	}
	return *p.Bio
}

// RepoCount returns the public repository count formatted for display.
func (p Profile) RepoCount() string {
	return strconv.Itoa(p.PublicRepos)
}
