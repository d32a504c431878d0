package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/agbru/ghlookup/internal/format"
	"github.com/agbru/ghlookup/internal/orchestration"
)

const maxHistoryEntries = 100

// historyEntry is one settled lookup in the event log.
type historyEntry struct {
	at      time.Time
	handle  string
	text    string
	failed  bool
	elapsed time.Duration
}

// HistoryModel is the scrollable log of settled lookups. It is fed by an
// orchestration.Listener subscription, so cancelled and stale lookups
// never appear.
type HistoryModel struct {
	entries []historyEntry
	offset  int
	height  int
	found   int
	failed  int
}

// NewHistoryModel creates an empty event log showing height rows.
func NewHistoryModel(height int) *HistoryModel {
	return &HistoryModel{height: height}
}

// Listener returns the orchestration listener that appends to the log.
func (h *HistoryModel) Listener() orchestration.Listener {
	return orchestration.ListenerFuncs{
		Success: func(e orchestration.SuccessEvent) {
			h.add(historyEntry{
				at:      time.Now(),
				handle:  e.Handle,
				text:    fmt.Sprintf("%s · %s", e.Profile.DisplayLabel(), format.RepoCount(e.Profile.PublicRepos)),
				elapsed: e.Elapsed,
			})
		},
		Error: func(e orchestration.ErrorEvent) {
			h.add(historyEntry{
				at:      time.Now(),
				handle:  e.Handle,
				text:    e.Failure.Summary(),
				failed:  true,
				elapsed: e.Elapsed,
			})
		},
	}
}

func (h *HistoryModel) add(e historyEntry) {
	if e.failed {
		h.failed++
	} else {
		h.found++
	}
	h.entries = append(h.entries, e)
	if len(h.entries) > maxHistoryEntries {
		h.entries = h.entries[len(h.entries)-maxHistoryEntries:]
	}
	h.offset = 0
}

// Len returns the number of entries.
func (h *HistoryModel) Len() int { return len(h.entries) }

// Counts returns the number of successful and failed lookups recorded,
// including entries that have been trimmed from the log.
func (h *HistoryModel) Counts() (found, failed int) { return h.found, h.failed }

// ScrollUp shows older entries.
func (h *HistoryModel) ScrollUp() {
	if h.offset < h.maxOffset() {
		h.offset++
	}
}

// ScrollDown shows newer entries.
func (h *HistoryModel) ScrollDown() {
	if h.offset > 0 {
		h.offset--
	}
}

// SetHeight changes the number of visible rows.
func (h *HistoryModel) SetHeight(rows int) {
	if rows < 1 {
		rows = 1
	}
	h.height = rows
	if h.offset > h.maxOffset() {
		h.offset = h.maxOffset()
	}
}

func (h *HistoryModel) maxOffset() int {
	if n := len(h.entries) - h.height; n > 0 {
		return n
	}
	return 0
}

// View renders the visible window, newest entry last.
func (h *HistoryModel) View(width int) string {
	if len(h.entries) == 0 {
		return ""
	}
	end := len(h.entries) - h.offset
	start := end - h.height
	if start < 0 {
		start = 0
	}

	var b strings.Builder
	for i, e := range h.entries[start:end] {
		if i > 0 {
			b.WriteByte('\n')
		}
		style := logSuccessStyle
		if e.failed {
			style = logErrorStyle
		}
		prefix := logTimeStyle.Render(e.at.Format("15:04:05")) + " "
		line := fmt.Sprintf("%-20s %s (%s)", e.handle, e.text, format.FormatExecutionDuration(e.elapsed))
		b.WriteString(prefix + style.Render(format.Truncate(line, width-9)))
	}
	return b.String()
}
