package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/ghlookup/internal/format"
	"github.com/agbru/ghlookup/internal/github"
	"github.com/agbru/ghlookup/internal/orchestration"
)

// Empty-state copy.
const (
	EmptyTitle = "Search users"
	EmptyBody  = "Enter a GitHub username."
)

// renderProfileCard renders p inside a bordered panel of the given width.
func renderProfileCard(p github.Profile, width int) string {
	inner := cardInnerWidth(width)

	header := nameStyle.Render(format.Truncate(p.DisplayLabel(), inner))
	if p.DisplayLabel() != p.Login {
		header += loginStyle.Render(" @" + p.Login)
	}

	lines := []string{
		header,
		"",
		bioStyle.Render(lipgloss.NewStyle().Width(inner).Render(format.Biography(p))),
		"",
		statsStyle.Render(format.RepoCount(p.PublicRepos)),
		linkStyle.Render(format.Truncate(p.HTMLURL, inner)),
	}
	if p.AvatarURL != "" {
		lines = append(lines, loginStyle.Render("avatar "+format.Truncate(p.AvatarURL, inner-7)))
	}
	return panelStyle.Width(inner + 2).Render(strings.Join(lines, "\n"))
}

// renderEmptyState renders the placeholder shown when there is no profile.
func renderEmptyState(width int) string {
	inner := cardInnerWidth(width)
	body := emptyTitleStyle.Render(EmptyTitle) + "\n" + emptyBodyStyle.Render(EmptyBody)
	return panelStyle.Width(inner + 2).Render(body)
}

// renderMessage renders a status line styled by kind. KindNone renders
// nothing.
func renderMessage(msg orchestration.Message) string {
	if msg.Kind == orchestration.KindNone || msg.Text == "" {
		return ""
	}
	switch msg.Kind {
	case orchestration.KindError:
		return errorStyle.Render("✗ " + msg.Text)
	case orchestration.KindSuccess:
		return successStyle.Render("✓ " + msg.Text)
	default:
		return infoStyle.Render(msg.Text)
	}
}

// renderRateLimitHint describes when a rate-limited lookup can be retried.
// It returns "" for every other state.
func renderRateLimitHint(state orchestration.PresentationState, now time.Time) string {
	hf, ok := state.Failure.(github.HTTPFailure)
	if !ok || hf.RateLimit == nil {
		return ""
	}
	hint := format.ResetHint(hf.RateLimit, now)
	if hint == "" {
		return ""
	}
	return hintStyle.Render(hint)
}

// renderButton renders the action label for the current input state.
func renderButton(s *screen) string {
	label := s.buttonLabel()
	switch {
	case s.busy:
		return buttonBusyStyle.Render(label)
	case !s.submitEnabled:
		return buttonOffStyle.Render(label)
	default:
		return buttonStyle.Render(label)
	}
}

func cardInnerWidth(width int) int {
	const (
		minWidth = 24
		maxWidth = 72
	)
	w := width - 4
	if w < minWidth {
		w = minWidth
	}
	if w > maxWidth {
		w = maxWidth
	}
	return w
}
