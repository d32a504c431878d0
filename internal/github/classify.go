package github

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// Rate-limit headers read from 403 responses.
const (
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderRateLimitReset     = "X-RateLimit-Reset"
)

// maxProfileBytes bounds how much of a success body is decoded.
const maxProfileBytes = 1 << 20

// Classify maps the raw outcome of one request to exactly one LookupResult.
// resp and err are what the HTTP client returned; ctx is the request context,
// consulted because some transports surface an abort as a generic error.
// The response body, when present, is consumed and closed. Classify never panics
// on malformed input and never returns an error.
func Classify(ctx context.Context, resp *http.Response, err error) LookupResult {
	if err != nil {
		if resp != nil && resp.Body != nil {
			resp.Body.Close()
		}
		if isCancellation(ctx, err) {
			return NetworkFailure{Message: MessageCancelled, Cancelled: true}
		}
		return NetworkFailure{Message: MessageFailed}
	}
	if resp == nil {
		return NetworkFailure{Message: MessageFailed}
	}
	if resp.Body != nil {
		defer resp.Body.Close()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return classifyStatus(resp)
	}

	if resp.Body == nil {
		return NetworkFailure{Message: MessageFailed}
	}
	var profile Profile
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxProfileBytes)).Decode(&profile); err != nil {
		// A body read aborted by cancellation is still a cancellation.
		if isCancellation(ctx, err) {
			return NetworkFailure{Message: MessageCancelled, Cancelled: true}
		}
		return NetworkFailure{Message: MessageFailed}
	}
	// null, {} or any document without a login is not a profile.
	if profile.Login == "" {
		return NetworkFailure{Message: MessageFailed}
	}
	return Success{Profile: profile}
}

// classifyStatus dispatches a non-success response by status code.
func classifyStatus(resp *http.Response) LookupResult {
	switch resp.StatusCode {
	case http.StatusNotFound:
		return HTTPFailure{StatusCode: http.StatusNotFound, Message: MessageNotFound}
	case http.StatusForbidden:
		return HTTPFailure{
			StatusCode: http.StatusForbidden,
			Message:    MessageRateLimited,
			RateLimit:  readRateLimit(resp.Header),
		}
	case http.StatusTooManyRequests:
		return HTTPFailure{StatusCode: http.StatusTooManyRequests, Message: MessageRateLimited}
	default:
		return HTTPFailure{StatusCode: resp.StatusCode, Message: MessageFailed}
	}
}

// readRateLimit returns nil when neither rate-limit header is present.
func readRateLimit(h http.Header) *RateLimit {
	remaining := h.Get(HeaderRateLimitRemaining)
	reset := h.Get(HeaderRateLimitReset)
	if remaining == "" && reset == "" {
		return nil
	}
	return &RateLimit{Remaining: remaining, ResetEpoch: reset}
}

// isCancellation reports whether err comes from aborting the request. A
// deadline hit by the transport itself, such as http.Client.Timeout, is a
// failure and not a cancellation.
func isCancellation(ctx context.Context, err error) bool {
	if ctx != nil && ctx.Err() != nil {
		return true
	}
	return errors.Is(err, context.Canceled)
}
