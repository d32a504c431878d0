// Package orchestration implements the lookup state machine that sits
// between user input and the GitHub client. It validates handles, issues
// at most one effective request at a time, and guarantees that only the
// most recent request can change what the user sees.
//
// The Orchestrator is single-owner: one goroutine drives it, and the Call
// returned by Submit carries the network work off that goroutine. Runner
// provides such an owner goroutine for callers without an event loop of
// their own. Runner methods must not be called from Listener callbacks.
package orchestration
