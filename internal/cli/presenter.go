package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/briandowns/spinner"

	"github.com/agbru/ghlookup/internal/github"
	"github.com/agbru/ghlookup/internal/orchestration"
	"github.com/agbru/ghlookup/internal/ui"
)

// LinePresenter renders orchestrator state as terminal lines. It
// implements orchestration.Presenter and orchestration.Input: the loading
// indicator is a spinner, profiles print as text cards and errors print in
// color. Input calls only track state, since a line terminal has no
// control to disable.
type LinePresenter struct {
	out     io.Writer
	animate bool

	mu      sync.Mutex
	spinner Spinner
	busy    bool
}

var (
	_ orchestration.Presenter = (*LinePresenter)(nil)
	_ orchestration.Input     = (*LinePresenter)(nil)
)

// NewLinePresenter creates a presenter writing to out. When animate is
// false no spinner is drawn, which suits pipes and tests.
func NewLinePresenter(out io.Writer, animate bool) *LinePresenter {
	return &LinePresenter{out: out, animate: animate}
}

// ShowLoading starts or stops the spinner.
func (p *LinePresenter) ShowLoading(loading bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.animate {
		return
	}
	if loading && p.spinner == nil {
		p.spinner = newSpinner(spinner.WithWriter(p.out))
		p.spinner.Start()
		return
	}
	if !loading && p.spinner != nil {
		p.spinner.Stop()
		p.spinner = nil
	}
}

// ShowProfile prints the profile card. A nil profile prints nothing.
func (p *LinePresenter) ShowProfile(profile *github.Profile) {
	if profile == nil {
		return
	}
	DisplayProfile(p.out, *profile)
}

// ShowMessage prints errors in color and routes info messages to the
// spinner suffix.
func (p *LinePresenter) ShowMessage(msg orchestration.Message) {
	switch msg.Kind {
	case orchestration.KindError:
		fmt.Fprintf(p.out, "%s✗ %s%s\n", ui.ColorRed(), msg.Text, ui.ColorReset())
	case orchestration.KindSuccess:
		fmt.Fprintf(p.out, "%s✓ %s%s\n", ui.ColorGreen(), msg.Text, ui.ColorReset())
	case orchestration.KindInfo:
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.spinner != nil {
			p.spinner.UpdateSuffix(" " + msg.Text)
		}
	}
}

// SetBusy records whether a lookup is in flight.
func (p *LinePresenter) SetBusy(busy bool) {
	p.mu.Lock()
	p.busy = busy
	p.mu.Unlock()
}

// SetSubmitEnabled is a no-op for line terminals.
func (p *LinePresenter) SetSubmitEnabled(bool) {}

// Focus is a no-op for line terminals.
func (p *LinePresenter) Focus() {}

// Busy reports whether a lookup is in flight.
func (p *LinePresenter) Busy() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.busy
}

// DisplayBatchTable displays the batch summary table with handles,
// statuses, repository counts and durations in a formatted tabular layout.
// Uses manual padding to correctly handle ANSI color codes.
func DisplayBatchTable(records []LookupRecord, out io.Writer) {
	fmt.Fprintf(out, "\n--- Lookup Summary ---\n")

	maxHandleLen := 6   // "Handle" header length
	maxDurationLen := 8 // "Duration" header length
	for _, rec := range records {
		if len(rec.Handle) > maxHandleLen {
			maxHandleLen = len(rec.Handle)
		}
		if d := recordDuration(rec); len(d) > maxDurationLen {
			maxDurationLen = len(d)
		}
	}

	fmt.Fprintf(out, "%sHandle%s%s   %sDuration%s%s   %sResult%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxHandleLen-6),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-8),
		ui.ColorUnderline(), ui.ColorReset())

	for _, rec := range records {
		var status string
		if rec.Profile != nil {
			status = fmt.Sprintf("%s✅ %s (%s)%s", ui.ColorGreen(), rec.Profile.DisplayLabel(), RepoSummary(*rec.Profile), ui.ColorReset())
		} else {
			status = fmt.Sprintf("%s❌ %s%s", ui.ColorRed(), rec.Error, ui.ColorReset())
		}
		duration := recordDuration(rec)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorBlue(), rec.Handle, ui.ColorReset(), padRight("", maxHandleLen-len(rec.Handle)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight("", maxDurationLen-len(duration)),
			status)
	}
}

// padRight returns a string of spaces with the given length.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}
