package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/ghlookup/internal/config"
	apperrors "github.com/agbru/ghlookup/internal/errors"
	"github.com/agbru/ghlookup/internal/format"
	"github.com/agbru/ghlookup/internal/github"
	"github.com/agbru/ghlookup/internal/logging"
	"github.com/agbru/ghlookup/internal/orchestration"
	"github.com/agbru/ghlookup/internal/ui"
)

// Record outcomes beyond the github.Outcome values.
const (
	OutcomeInvalid = "invalid"
)

// LookupRecord is the settled result of one non-interactive lookup.
type LookupRecord struct {
	Handle     string          `json:"handle"`
	Outcome    string          `json:"outcome"`
	Profile    *github.Profile `json:"profile,omitempty"`
	StatusCode int             `json:"status_code,omitempty"`
	Error      string          `json:"error,omitempty"`
	Hint       string          `json:"hint,omitempty"`
	ElapsedMS  int64           `json:"elapsed_ms"`
	Elapsed    time.Duration   `json:"-"`

	// message is the bare classifier message behind Error.
	message string
}

// Failed reports whether the lookup did not produce a profile.
func (r LookupRecord) Failed() bool { return r.Profile == nil }

// LookupOptions configures RunLookups.
type LookupOptions struct {
	// Concurrency bounds the number of lookups in flight.
	Concurrency int
	// Recorder receives lifecycle metrics. May be nil.
	Recorder orchestration.Recorder
	// Logger receives lookup logs. May be nil.
	Logger logging.Logger
}

// PrintLookupConfig displays the lookup configuration to the user.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintLookupConfig(cfg config.AppConfig, out io.Writer) {
	auth := "anonymous"
	if cfg.Token != "" {
		auth = "token"
	}
	fmt.Fprintf(out, "--- Lookup Configuration ---\n")
	fmt.Fprintf(out, "Looking up %s%d%s user(s) on %s%s%s with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), len(cfg.Users), ui.ColorReset(),
		ui.ColorCyan(), cfg.BaseURL, ui.ColorReset(),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Concurrency: %s%d%s, rate: %s%g/s%s (burst %d), auth: %s.\n",
		ui.ColorCyan(), cfg.Concurrency, ui.ColorReset(),
		ui.ColorCyan(), cfg.RequestsPerSecond, ui.ColorReset(), cfg.Burst, auth)
}

// RunLookups looks up every handle, at most opts.Concurrency at a time,
// and returns the records in input order. Each lookup runs through its own
// orchestrator so that validation, classification and metrics match the
// interactive modes.
func RunLookups(ctx context.Context, fetcher orchestration.Fetcher, handles []string, opts LookupOptions) []LookupRecord {
	limit := opts.Concurrency
	if limit < 1 {
		limit = 1
	}

	records := make([]LookupRecord, len(handles))
	var g errgroup.Group
	g.SetLimit(limit)
	for i, handle := range handles {
		g.Go(func() error {
			records[i] = lookupOne(ctx, fetcher, handle, opts)
			return nil
		})
	}
	_ = g.Wait()
	return records
}

func lookupOne(ctx context.Context, fetcher orchestration.Fetcher, handle string, opts LookupOptions) LookupRecord {
	orchOpts := []orchestration.Option{orchestration.WithContext(ctx)}
	if opts.Recorder != nil {
		orchOpts = append(orchOpts, orchestration.WithRecorder(opts.Recorder))
	}
	if opts.Logger != nil {
		orchOpts = append(orchOpts, orchestration.WithLogger(opts.Logger))
	}
	orch := orchestration.New(fetcher, orchOpts...)
	defer orch.Dispose()

	start := time.Now()
	state := orch.Lookup(handle)
	elapsed := time.Since(start)

	return recordFromState(handle, state, elapsed, time.Now())
}

// recordFromState converts a settled presentation state into a record.
func recordFromState(handle string, state orchestration.PresentationState, elapsed time.Duration, now time.Time) LookupRecord {
	rec := LookupRecord{
		Handle:    handle,
		Elapsed:   elapsed,
		ElapsedMS: elapsed.Milliseconds(),
	}
	if state.Handle != "" {
		rec.Handle = state.Handle
	}

	switch state.Kind {
	case orchestration.StateSuccess:
		rec.Outcome = string(github.OutcomeSuccess)
		rec.Profile = state.Profile
	case orchestration.StateInvalid:
		rec.Outcome = OutcomeInvalid
		rec.Error = state.Message
		rec.Elapsed, rec.ElapsedMS = 0, 0
	case orchestration.StateError:
		rec.Outcome = string(state.Failure.Outcome())
		rec.Error = state.Failure.Summary()
		rec.message = state.Message
		if hf, ok := state.Failure.(github.HTTPFailure); ok {
			rec.StatusCode = hf.StatusCode
			rec.Hint = format.ResetHint(hf.RateLimit, now)
		}
	default:
		// A lookup that ends Idle was cancelled before it settled.
		rec.Outcome = string(github.OutcomeCancelled)
		rec.Error = github.MessageCancelled
		rec.message = github.MessageCancelled
	}
	return rec
}

// ResultsError summarises a batch into the error that decides the exit
// code: a timeout or cancellation of ctx wins, then the first failed
// record. It returns nil when every lookup succeeded.
func ResultsError(ctx context.Context, records []LookupRecord, timeout time.Duration) error {
	if err := ctx.Err(); apperrors.IsContextError(err) {
		if errors.Is(err, context.DeadlineExceeded) {
			return apperrors.TimeoutError{Operation: "lookup", Limit: timeout}
		}
		return apperrors.WrapError(err, "lookup of %d user(s) interrupted", len(records))
	}
	for _, rec := range records {
		if !rec.Failed() {
			continue
		}
		if rec.Outcome == OutcomeInvalid {
			return apperrors.ValidationError{Field: "username", Message: fmt.Sprintf("%s: %s", rec.Handle, rec.Error)}
		}
		msg := rec.message
		if msg == "" {
			msg = rec.Error
		}
		return apperrors.LookupError{
			Handle:     rec.Handle,
			StatusCode: rec.StatusCode,
			Message:    msg,
			Cancelled:  rec.Outcome == string(github.OutcomeCancelled),
		}
	}
	return nil
}
