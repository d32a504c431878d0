// Package github talks to the GitHub users endpoint and turns every possible
// outcome of a request (decoded profile, non-2xx status, transport error or
// cancellation) into one member of the closed LookupResult type.
//
// Classification is a pure value mapping: nothing in this package returns an
// error for a failed lookup, and nothing retries or caches.
package github
