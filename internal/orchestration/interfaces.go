package orchestration

import (
	"context"
	"time"

	"github.com/agbru/ghlookup/internal/github"
)

//go:generate mockgen -destination=mocks/mock_interfaces.go -package=mocks github.com/agbru/ghlookup/internal/orchestration Fetcher,Presenter,Input,Listener,Recorder

// Fetcher performs one lookup. Implementations must honour ctx
// cancellation and must return a cancelled github.NetworkFailure when ctx
// is cancelled mid-flight. Fetch never returns nil.
type Fetcher interface {
	Fetch(ctx context.Context, handle string) github.LookupResult
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, handle string) github.LookupResult

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context, handle string) github.LookupResult {
	return f(ctx, handle)
}

// MessageKind selects the styling of a status message.
type MessageKind int

const (
	// KindNone clears the message area.
	KindNone MessageKind = iota
	KindInfo
	KindSuccess
	KindError
)

func (k MessageKind) String() string {
	switch k {
	case KindInfo:
		return "info"
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	default:
		return "none"
	}
}

// Live is the assistive-technology announcement priority of a message.
type Live int

const (
	LivePolite Live = iota
	LiveAssertive
)

func (l Live) String() string {
	if l == LiveAssertive {
		return "assertive"
	}
	return "polite"
}

// Message is one status line handed to the Presenter.
type Message struct {
	Kind MessageKind
	Text string
	Live Live
}

// Presenter renders orchestrator state. Calls are made from the goroutine
// that owns the Orchestrator.
type Presenter interface {
	ShowLoading(loading bool)
	ShowProfile(profile *github.Profile)
	ShowMessage(msg Message)
}

// Input is the user-input control. SetBusy disables the control and
// switches the action label while a lookup is in flight.
type Input interface {
	SetBusy(busy bool)
	SetSubmitEnabled(enabled bool)
	Focus()
}

// SuccessEvent is emitted when a lookup settles with a profile.
type SuccessEvent struct {
	RequestID string
	Handle    string
	Profile   github.Profile
	Elapsed   time.Duration
}

// ErrorEvent is emitted when a lookup settles with a non-cancelled failure.
type ErrorEvent struct {
	RequestID string
	Handle    string
	Failure   github.Failure
	Elapsed   time.Duration
}

// Listener receives lookup notifications. Cancellations are never emitted.
type Listener interface {
	OnLookupSuccess(SuccessEvent)
	OnLookupError(ErrorEvent)
}

// ListenerFuncs adapts optional callbacks to the Listener interface.
type ListenerFuncs struct {
	Success func(SuccessEvent)
	Error   func(ErrorEvent)
}

// OnLookupSuccess implements Listener.
func (l ListenerFuncs) OnLookupSuccess(e SuccessEvent) {
	if l.Success != nil {
		l.Success(e)
	}
}

// OnLookupError implements Listener.
func (l ListenerFuncs) OnLookupError(e ErrorEvent) {
	if l.Error != nil {
		l.Error(e)
	}
}

// AbortReason labels why an in-flight lookup was cancelled.
type AbortReason string

const (
	AbortSuperseded AbortReason = "superseded"
	AbortCleared    AbortReason = "cleared"
	AbortDisposed   AbortReason = "disposed"
)

// Recorder receives lifecycle counters. internal/metrics provides the
// Prometheus implementation.
type Recorder interface {
	LookupStarted()
	LookupFinished(outcome github.Outcome, elapsed time.Duration)
	LookupAborted(reason AbortReason)
	StaleResultDiscarded()
	ValidationRejected(reason string)
}

// NullPresenter discards all presentation calls.
type NullPresenter struct{}

func (NullPresenter) ShowLoading(bool)            {}
func (NullPresenter) ShowProfile(*github.Profile) {}
func (NullPresenter) ShowMessage(Message)         {}

// NullInput ignores all input-control calls.
type NullInput struct{}

func (NullInput) SetBusy(bool)          {}
func (NullInput) SetSubmitEnabled(bool) {}
func (NullInput) Focus()                {}

// NullRecorder drops all metrics.
type NullRecorder struct{}

func (NullRecorder) LookupStarted()                               {}
func (NullRecorder) LookupFinished(github.Outcome, time.Duration) {}
func (NullRecorder) LookupAborted(AbortReason)                    {}
func (NullRecorder) StaleResultDiscarded()                        {}
func (NullRecorder) ValidationRejected(string)                    {}
