package format

import (
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/agbru/ghlookup/internal/github"
)

// NoBiography is shown when a profile has no bio.
const NoBiography = "No biography"

// Biography returns the profile bio or NoBiography.
func Biography(p github.Profile) string {
	if bio := p.Biography(); bio != "" {
		return bio
	}
	return NoBiography
}

// RepoCount renders a repository count with thousands separators and the
// right plural.
func RepoCount(n int) string {
	noun := "repositories"
	if n == 1 {
		noun = "repository"
	}
	return groupThousands(n) + " public " + noun
}

func groupThousands(n int) string {
	s := strconv.Itoa(n)
	neg := ""
	if n < 0 {
		neg, s = "-", s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return neg + s
}

// ResetHint describes when a rate limit resets, relative to now. It returns
// "" when the reset time is unknown.
func ResetHint(rl *github.RateLimit, now time.Time) string {
	if rl == nil {
		return ""
	}
	at, ok := rl.ResetTime()
	if !ok {
		return ""
	}
	wait := at.Sub(now).Round(time.Second)
	if wait <= 0 {
		return "rate limit has reset, try again"
	}
	return fmt.Sprintf("rate limit resets at %s (in %s)", at.Local().Format("15:04:05"), wait)
}

// Truncate shortens s to at most width runes, ending with an ellipsis when
// cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
