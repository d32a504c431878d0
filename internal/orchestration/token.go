package orchestration

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RequestToken is the cancellation handle of one lookup attempt.
// Tokens are compared by pointer identity; a token is never reused.
type RequestToken struct {
	id      string
	handle  string
	started time.Time
	ctx     context.Context
	cancel  context.CancelFunc
}

func newRequestToken(parent context.Context, handle string) *RequestToken {
	ctx, cancel := context.WithCancel(parent)
	return &RequestToken{
		id:      uuid.NewString(),
		handle:  handle,
		started: time.Now(),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// ID returns a unique identifier used to correlate logs and events.
func (t *RequestToken) ID() string { return t.id }

// Handle returns the username this attempt looks up.
func (t *RequestToken) Handle() string { return t.handle }

// Context is the context the network call must be bound to.
func (t *RequestToken) Context() context.Context { return t.ctx }

// Cancel signals the transport to abort. Safe to call more than once.
func (t *RequestToken) Cancel() { t.cancel() }

// Cancelled reports whether Cancel was called or the parent context ended.
func (t *RequestToken) Cancelled() bool { return t.ctx.Err() != nil }

// Elapsed returns the time since the attempt started.
func (t *RequestToken) Elapsed() time.Duration { return time.Since(t.started) }
