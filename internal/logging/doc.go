// Package logging provides a unified logging interface for the lookup tool.
// It abstracts the underlying logging implementation (zerolog by default),
// so the orchestrator, transport and front ends log through one contract.
package logging
