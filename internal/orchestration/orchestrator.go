package orchestration

import (
	"context"
	"errors"

	apperrors "github.com/agbru/ghlookup/internal/errors"
	"github.com/agbru/ghlookup/internal/github"
	"github.com/agbru/ghlookup/internal/logging"
)

// MsgSearching is the informational message shown while a lookup is in flight.
const MsgSearching = "searching..."

// Phase is the lifecycle phase of the orchestrator.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseValidating
	PhaseLoading
	PhaseSettled
)

func (p Phase) String() string {
	switch p {
	case PhaseValidating:
		return "validating"
	case PhaseLoading:
		return "loading"
	case PhaseSettled:
		return "settled"
	default:
		return "idle"
	}
}

// StateKind discriminates PresentationState.
type StateKind int

const (
	StateIdle StateKind = iota
	StateLoading
	StateSuccess
	StateError
	StateInvalid
)

func (k StateKind) String() string {
	switch k {
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	case StateInvalid:
		return "invalid"
	default:
		return "idle"
	}
}

// PresentationState is what the user currently sees. Message holds the
// validation reason for StateInvalid and the bare failure message for
// StateError. Profile is set only for StateSuccess.
type PresentationState struct {
	Kind    StateKind
	Handle  string
	Profile *github.Profile
	Message string
	Failure github.Failure
}

// IsError reports whether the state shows an error to the user.
func (s PresentationState) IsError() bool {
	return s.Kind == StateError || s.Kind == StateInvalid
}

// Completion pairs a lookup result with the token of the attempt that
// produced it.
type Completion struct {
	Token  *RequestToken
	Result github.LookupResult
}

// Call performs the network part of a lookup. It is safe to run on any
// goroutine; its Completion must be handed back to OnResult on the
// goroutine that owns the Orchestrator.
type Call func() Completion

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithPresenter sets the presenter. Defaults to NullPresenter.
func WithPresenter(p Presenter) Option {
	return func(o *Orchestrator) { o.presenter = p }
}

// WithInput sets the input control. Defaults to NullInput.
func WithInput(in Input) Option {
	return func(o *Orchestrator) { o.input = in }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l logging.Logger) Option {
	return func(o *Orchestrator) { o.logger = l }
}

// WithRecorder sets the metrics recorder. Defaults to NullRecorder.
func WithRecorder(r Recorder) Option {
	return func(o *Orchestrator) { o.recorder = r }
}

// WithContext sets the parent context of every request token. Cancelling
// it aborts any in-flight lookup.
func WithContext(ctx context.Context) Option {
	return func(o *Orchestrator) { o.parent = ctx }
}

// Orchestrator is the lookup state machine. It validates input, issues at
// most one effective lookup at a time, and applies only the result whose
// token is still active.
//
// An Orchestrator is owned by a single goroutine: Submit, OnResult,
// OnInputChanged, Subscribe and Dispose must all be called from it. Only
// the Call returned by Submit may run elsewhere.
type Orchestrator struct {
	fetcher   Fetcher
	presenter Presenter
	input     Input
	logger    logging.Logger
	recorder  Recorder
	parent    context.Context

	listeners []*subscription
	phase     Phase
	state     PresentationState
	active    *RequestToken
	disposed  bool
}

type subscription struct {
	listener Listener
}

// New creates an Orchestrator in the Idle phase.
func New(fetcher Fetcher, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		fetcher:   fetcher,
		presenter: NullPresenter{},
		input:     NullInput{},
		logger:    logging.NewNopLogger(),
		recorder:  NullRecorder{},
		parent:    context.Background(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Phase returns the current lifecycle phase.
func (o *Orchestrator) Phase() Phase { return o.phase }

// State returns the current presentation state.
func (o *Orchestrator) State() PresentationState { return o.state }

// Active returns the token of the in-flight lookup, or nil.
func (o *Orchestrator) Active() *RequestToken { return o.active }

// Disposed reports whether Dispose has been called.
func (o *Orchestrator) Disposed() bool { return o.disposed }

// Subscribe registers l for lookup notifications and returns a function
// that removes it.
func (o *Orchestrator) Subscribe(l Listener) (unsubscribe func()) {
	if o.disposed || l == nil {
		return func() {}
	}
	sub := &subscription{listener: l}
	o.listeners = append(o.listeners, sub)
	return func() {
		for i, s := range o.listeners {
			if s == sub {
				o.listeners = append(o.listeners[:i:i], o.listeners[i+1:]...)
				return
			}
		}
	}
}

// Submit validates raw and, if it names a well-formed handle, cancels any
// in-flight lookup and starts a new one. It returns the Call that performs
// the network request, or nil when no request is needed. Validation
// failures settle immediately with an error state.
func (o *Orchestrator) Submit(raw string) Call {
	if o.disposed {
		return nil
	}
	handle := NormalizeInput(raw)

	o.abortActive(AbortSuperseded)
	o.phase = PhaseValidating

	if err := ValidateUsername(handle); err != nil {
		o.settleInvalid(handle, err)
		return nil
	}

	token := newRequestToken(o.parent, handle)
	o.active = token
	o.phase = PhaseLoading
	o.state = PresentationState{Kind: StateLoading, Handle: handle}
	o.recorder.LookupStarted()
	o.logger.Debug("lookup started",
		logging.String("request_id", token.ID()),
		logging.String("handle", handle),
	)

	o.input.SetBusy(true)
	o.presenter.ShowProfile(nil)
	o.presenter.ShowLoading(true)
	o.presenter.ShowMessage(Message{Kind: KindInfo, Text: MsgSearching, Live: LivePolite})

	fetcher := o.fetcher
	return func() Completion {
		return Completion{Token: token, Result: fetcher.Fetch(token.Context(), handle)}
	}
}

// OnResult applies a completed lookup. Results whose token is not the
// active one are discarded without touching state.
func (o *Orchestrator) OnResult(c Completion) {
	if o.disposed || c.Token == nil || c.Token != o.active {
		if c.Token != nil {
			o.recorder.StaleResultDiscarded()
			o.logger.Debug("stale lookup result discarded",
				logging.String("request_id", c.Token.ID()),
				logging.String("handle", c.Token.Handle()),
			)
		}
		return
	}

	token := c.Token
	aborted := token.Cancelled()
	o.active = nil
	token.Cancel()

	result := c.Result
	if result == nil {
		result = github.NetworkFailure{Message: github.MessageFailed}
	}
	// Only an abort of this request's own context stays silent.
	if github.IsCancelled(result) && !aborted {
		result = github.NetworkFailure{Message: github.MessageFailed}
	}
	elapsed := token.Elapsed()
	o.recorder.LookupFinished(result.Outcome(), elapsed)

	o.presenter.ShowLoading(false)
	o.input.SetBusy(false)

	switch r := result.(type) {
	case github.Success:
		profile := r.Profile
		o.phase = PhaseSettled
		o.state = PresentationState{Kind: StateSuccess, Handle: token.Handle(), Profile: &profile}
		o.presenter.ShowMessage(Message{Kind: KindNone})
		o.presenter.ShowProfile(&profile)
		o.logger.Info("lookup succeeded",
			logging.String("request_id", token.ID()),
			logging.String("handle", token.Handle()),
			logging.Duration("elapsed", elapsed),
		)
		o.emitSuccess(SuccessEvent{RequestID: token.ID(), Handle: token.Handle(), Profile: profile, Elapsed: elapsed})

	case github.Failure:
		if github.IsCancelled(r) {
			o.phase = PhaseIdle
			o.state = PresentationState{Kind: StateIdle}
			o.presenter.ShowMessage(Message{Kind: KindNone})
			o.presenter.ShowProfile(nil)
			o.logger.Debug("lookup cancelled", logging.String("request_id", token.ID()))
			return
		}
		o.phase = PhaseSettled
		o.state = PresentationState{Kind: StateError, Handle: token.Handle(), Message: failureMessage(r), Failure: r}
		o.presenter.ShowProfile(nil)
		o.presenter.ShowMessage(Message{Kind: KindError, Text: r.Summary(), Live: LiveAssertive})
		o.logger.Warn("lookup failed",
			logging.String("request_id", token.ID()),
			logging.String("handle", token.Handle()),
			logging.String("outcome", string(r.Outcome())),
			logging.Err(r),
		)
		o.emitError(ErrorEvent{RequestID: token.ID(), Handle: token.Handle(), Failure: r, Elapsed: elapsed})
	}
}

// OnInputChanged reacts to edits of the input field. Clearing the field
// cancels any in-flight lookup and resets to Idle; other edits only
// update whether submission is enabled.
func (o *Orchestrator) OnInputChanged(raw string) {
	if o.disposed {
		return
	}
	if NormalizeInput(raw) != "" {
		o.input.SetSubmitEnabled(o.phase != PhaseLoading)
		return
	}
	if o.abortActive(AbortCleared) {
		o.presenter.ShowLoading(false)
		o.input.SetBusy(false)
	}
	o.phase = PhaseIdle
	o.state = PresentationState{Kind: StateIdle}
	o.presenter.ShowProfile(nil)
	o.presenter.ShowMessage(Message{Kind: KindNone})
	o.input.SetSubmitEnabled(false)
}

// Dispose cancels any in-flight lookup and detaches all listeners.
// Subsequent calls on the Orchestrator are no-ops. Dispose is idempotent.
func (o *Orchestrator) Dispose() {
	if o.disposed {
		return
	}
	o.abortActive(AbortDisposed)
	o.disposed = true
	o.listeners = nil
	o.logger.Debug("orchestrator disposed")
}

func (o *Orchestrator) abortActive(reason AbortReason) bool {
	if o.active == nil {
		return false
	}
	token := o.active
	o.active = nil
	token.Cancel()
	o.recorder.LookupAborted(reason)
	o.logger.Debug("lookup aborted",
		logging.String("request_id", token.ID()),
		logging.String("reason", string(reason)),
	)
	return true
}

func (o *Orchestrator) settleInvalid(handle string, err error) {
	reason := err.Error()
	var verr apperrors.ValidationError
	if errors.As(err, &verr) {
		reason = verr.Message
	}
	o.phase = PhaseSettled
	o.state = PresentationState{Kind: StateInvalid, Handle: handle, Message: reason}
	o.recorder.ValidationRejected(reason)

	o.presenter.ShowLoading(false)
	o.input.SetBusy(false)
	o.presenter.ShowProfile(nil)
	o.presenter.ShowMessage(Message{Kind: KindError, Text: reason, Live: LiveAssertive})
	o.input.Focus()
}

func (o *Orchestrator) emitSuccess(e SuccessEvent) {
	for _, s := range o.snapshot() {
		s.listener.OnLookupSuccess(e)
	}
}

func (o *Orchestrator) emitError(e ErrorEvent) {
	for _, s := range o.snapshot() {
		s.listener.OnLookupError(e)
	}
}

// snapshot lets listeners unsubscribe while being notified.
func (o *Orchestrator) snapshot() []*subscription {
	return append([]*subscription(nil), o.listeners...)
}

func failureMessage(f github.Failure) string {
	switch r := f.(type) {
	case github.HTTPFailure:
		return r.Message
	case github.NetworkFailure:
		return r.Message
	default:
		return f.Error()
	}
}
