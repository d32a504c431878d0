package github

import (
	"fmt"
	"strconv"
	"time"
)

// Failure messages produced by the classifier.
const (
	MessageNotFound    = "user not found"
	MessageRateLimited = "rate limit exceeded"
	MessageFailed      = "lookup failed"
	MessageCancelled   = "lookup cancelled"
)

// Outcome is a short, stable label for a LookupResult, used for metrics and logs.
type Outcome string

const (
	OutcomeSuccess   Outcome = "success"
	OutcomeHTTP      Outcome = "http_error"
	OutcomeNetwork   Outcome = "network_error"
	OutcomeCancelled Outcome = "cancelled"
)

// LookupResult is the closed set of outcomes of one lookup attempt:
// Success, HTTPFailure or NetworkFailure. Values are immutable.
type LookupResult interface {
	Outcome() Outcome
	isLookupResult()
}

// Failure is implemented by the two failure variants.
type Failure interface {
	LookupResult
	error
	// Summary is the user-facing description of the failure.
	Summary() string
}

// Success carries the decoded profile.
type Success struct {
	Profile Profile
}

// RateLimit holds the raw rate-limit header values returned with a 403.
type RateLimit struct {
	Remaining  string
	ResetEpoch string
}

// ResetTime parses ResetEpoch as unix seconds.
func (r RateLimit) ResetTime() (time.Time, bool) {
	secs, err := strconv.ParseInt(r.ResetEpoch, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.Unix(secs, 0), true
}

// HTTPFailure is a non-success response from the remote.
type HTTPFailure struct {
	StatusCode int
	Message    string
	RateLimit  *RateLimit
}

// NetworkFailure is a transport-level failure or a cancellation.
type NetworkFailure struct {
	Message   string
	Cancelled bool
}

var (
	_ LookupResult = Success{}
	_ Failure      = HTTPFailure{}
	_ Failure      = NetworkFailure{}
)

func (Success) isLookupResult()        {}
func (HTTPFailure) isLookupResult()    {}
func (NetworkFailure) isLookupResult() {}

// Outcome implements LookupResult.
func (Success) Outcome() Outcome { return OutcomeSuccess }

// Outcome implements LookupResult.
func (HTTPFailure) Outcome() Outcome { return OutcomeHTTP }

// Outcome implements LookupResult.
func (f NetworkFailure) Outcome() Outcome {
	if f.Cancelled {
		return OutcomeCancelled
	}
	return OutcomeNetwork
}

func (f HTTPFailure) Error() string {
	return fmt.Sprintf("github: status %d: %s", f.StatusCode, f.Message)
}

// Summary implements Failure.
func (f HTTPFailure) Summary() string {
	return fmt.Sprintf("HTTP error %d: %s", f.StatusCode, f.Message)
}

func (f NetworkFailure) Error() string {
	return "github: " + f.Message
}

// Summary implements Failure.
func (f NetworkFailure) Summary() string {
	return "network error: " + f.Message
}

// IsCancelled reports whether r is a cancelled NetworkFailure.
func IsCancelled(r LookupResult) bool {
	nf, ok := r.(NetworkFailure)
	return ok && nf.Cancelled
}
