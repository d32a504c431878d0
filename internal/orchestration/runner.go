package orchestration

import "sync"

// Lookup runs a complete lookup on the calling goroutine: it submits raw,
// performs the request if one was issued and applies the result.
func (o *Orchestrator) Lookup(raw string) PresentationState {
	if call := o.Submit(raw); call != nil {
		o.OnResult(call())
	}
	return o.State()
}

// Runner hosts an Orchestrator on a dedicated goroutine. Requests run on
// their own goroutines and their results are posted back to the loop, so a
// new Submit can supersede a lookup that is still in flight.
type Runner struct {
	orch  *Orchestrator
	ops   chan func()
	stop  chan struct{}
	done  chan struct{}
	calls sync.WaitGroup
	once  sync.Once
}

// NewRunner starts the loop goroutine for o. Close must be called to stop it.
func NewRunner(o *Orchestrator) *Runner {
	r := &Runner{
		orch: o,
		ops:  make(chan func()),
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go r.loop()
	return r
}

func (r *Runner) loop() {
	defer close(r.done)
	for {
		select {
		case op := <-r.ops:
			op()
		case <-r.stop:
			return
		}
	}
}

// do runs op on the loop goroutine and waits for it. It returns false if
// the loop has stopped.
func (r *Runner) do(op func()) bool {
	ran := make(chan struct{})
	select {
	case r.ops <- func() { op(); close(ran) }:
	case <-r.done:
		return false
	}
	<-ran
	return true
}

// Do runs fn with exclusive access to the orchestrator.
func (r *Runner) Do(fn func(*Orchestrator)) bool {
	return r.do(func() { fn(r.orch) })
}

// Submit forwards raw to the orchestrator and starts the resulting
// request, if any, in the background.
func (r *Runner) Submit(raw string) {
	r.do(func() {
		call := r.orch.Submit(raw)
		if call == nil {
			return
		}
		r.calls.Add(1)
		go func() {
			defer r.calls.Done()
			c := call()
			r.do(func() { r.orch.OnResult(c) })
		}()
	})
}

// InputChanged forwards an input edit to the orchestrator.
func (r *Runner) InputChanged(raw string) {
	r.do(func() { r.orch.OnInputChanged(raw) })
}

// State returns the orchestrator's current presentation state.
func (r *Runner) State() PresentationState {
	var s PresentationState
	r.do(func() { s = r.orch.State() })
	return s
}

// Wait blocks until every request started by Submit has been applied or
// discarded. Submit and Wait must not be called concurrently.
func (r *Runner) Wait() {
	r.calls.Wait()
}

// Close disposes the orchestrator, stops the loop and waits for
// outstanding requests to return. It is safe to call more than once.
func (r *Runner) Close() {
	r.once.Do(func() {
		r.do(r.orch.Dispose)
		close(r.stop)
		<-r.done
		r.calls.Wait()
	})
}
