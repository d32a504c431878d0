package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/ghlookup/internal/format"
)

// HeaderModel renders the top bar: title, version, session counters.
type HeaderModel struct {
	startTime time.Time
	version   string
	width     int
	found     int
	failed    int
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version string) HeaderModel {
	return HeaderModel{
		startTime: time.Now(),
		version:   version,
	}
}

// SetCounts updates the session counters.
func (h *HeaderModel) SetCounts(found, failed int) {
	h.found = found
	h.failed = failed
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "GitHub User Lookup"
	title := titleStyle.Render(titleText)
	if h.version != "" && h.version != "dev" {
		title += versionStyle.Render(" " + h.version)
	}

	session := format.FormatExecutionDuration(time.Since(h.startTime).Truncate(time.Second))
	stats := statsStyle.Render(fmt.Sprintf("%d found · %d failed · %s", h.found, h.failed, session))

	innerWidth := h.width - 2
	if innerWidth < 0 {
		innerWidth = 0
	}

	gap := innerWidth - lipgloss.Width(title) - lipgloss.Width(stats)
	if gap < 1 {
		gap = 1
	}

	return headerStyle.Render(title + spaces(gap) + stats)
}

// spaces returns a string of n space characters.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
