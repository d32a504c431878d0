package orchestration_test

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/agbru/ghlookup/internal/orchestration"
)

// TestLatestRequestWins_PropertyBased interleaves submissions and
// out-of-order completions. Whatever the order, the only results that
// reach the view or the listeners are those of the submission that was
// current when they arrived, and the final view shows the last handle.
func TestLatestRequestWins_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	properties.Property("only the latest submission is applied", prop.ForAll(
		func(ops []int) bool {
			o, v := newWithView(staticFetcher)

			latest := ""
			ok := true
			o.Subscribe(orchestration.ListenerFuncs{
				Success: func(e orchestration.SuccessEvent) {
					if e.Handle != latest {
						ok = false
					}
				},
			})

			var pending []orchestration.Completion
			submit := func(i int) {
				latest = fmt.Sprintf("user-%d", i)
				pending = append(pending, o.Submit(latest)())
			}
			deliver := func(i int) {
				c := pending[i]
				pending = append(pending[:i], pending[i+1:]...)
				o.OnResult(c)
			}

			submit(0)
			for i, op := range ops {
				if op < 5 || len(pending) == 0 {
					submit(i + 1)
					continue
				}
				deliver(op % len(pending))
			}
			for len(pending) > 0 {
				deliver(len(pending) - 1)
			}

			return ok &&
				o.Phase() == orchestration.PhaseSettled &&
				v.profile != nil && v.profile.Login == latest &&
				o.State().Handle == latest
		},
		gen.SliceOf(gen.IntRange(0, 9)),
	))

	properties.TestingRun(t)
}
