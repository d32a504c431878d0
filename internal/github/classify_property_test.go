package github

import (
	"context"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestClassifyStatus_PropertyBased checks the status dispatch over the whole
// non-success range: the status code is always preserved and the message is
// fixed by the dispatch table.
func TestClassifyStatus_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	nonSuccess := gen.OneGenOf(gen.IntRange(100, 199), gen.IntRange(300, 599))

	properties.Property("non-2xx yields HTTPFailure with the same code", prop.ForAll(
		func(status int) bool {
			got, ok := Classify(context.Background(), response(status, "", nil), nil).(HTTPFailure)
			if !ok || got.StatusCode != status {
				return false
			}
			switch status {
			case 404:
				return got.Message == MessageNotFound
			case 403, 429:
				return got.Message == MessageRateLimited
			default:
				return got.Message == MessageFailed && got.RateLimit == nil
			}
		},
		nonSuccess,
	))

	properties.Property("403 rate-limit headers pass through verbatim", prop.ForAll(
		func(remaining, reset string) bool {
			resp := response(403, "", nil)
			resp.Header.Set(HeaderRateLimitRemaining, remaining)
			resp.Header.Set(HeaderRateLimitReset, reset)
			got, ok := Classify(context.Background(), resp, nil).(HTTPFailure)
			if !ok || got.RateLimit == nil {
				return false
			}
			return got.RateLimit.Remaining == remaining && got.RateLimit.ResetEpoch == reset
		},
		gen.NumString().SuchThat(func(s string) bool { return s != "" }),
		gen.NumString().SuchThat(func(s string) bool { return s != "" }),
	))

	properties.TestingRun(t)
}
