package tui

import (
	"github.com/agbru/ghlookup/internal/github"
	"github.com/agbru/ghlookup/internal/orchestration"
)

// screen is the orchestrator's view of the terminal. It records what the
// orchestrator asks to display; Model.View renders it. All calls happen on
// the bubbletea event-loop goroutine, inside Update.
type screen struct {
	loading       bool
	profile       *github.Profile
	message       orchestration.Message
	busy          bool
	submitEnabled bool
	focus         bool
}

var (
	_ orchestration.Presenter = (*screen)(nil)
	_ orchestration.Input     = (*screen)(nil)
)

func newScreen() *screen {
	return &screen{}
}

// ShowLoading implements orchestration.Presenter.
func (s *screen) ShowLoading(loading bool) { s.loading = loading }

// ShowProfile implements orchestration.Presenter.
func (s *screen) ShowProfile(p *github.Profile) {
	if p == nil {
		s.profile = nil
		return
	}
	cp := *p
	s.profile = &cp
}

// ShowMessage implements orchestration.Presenter.
func (s *screen) ShowMessage(msg orchestration.Message) { s.message = msg }

// SetBusy implements orchestration.Input.
func (s *screen) SetBusy(busy bool) { s.busy = busy }

// SetSubmitEnabled implements orchestration.Input.
func (s *screen) SetSubmitEnabled(enabled bool) { s.submitEnabled = enabled }

// Focus implements orchestration.Input. The request is consumed by the
// model, which owns the text input.
func (s *screen) Focus() { s.focus = true }

// takeFocus reports and clears a pending focus request.
func (s *screen) takeFocus() bool {
	f := s.focus
	s.focus = false
	return f
}

// buttonLabel is the action label next to the input.
func (s *screen) buttonLabel() string {
	if s.busy {
		return "Searching..."
	}
	return "Search"
}

// showEmptyState reports whether the placeholder panel should be visible.
func (s *screen) showEmptyState() bool {
	return !s.loading && s.profile == nil
}
