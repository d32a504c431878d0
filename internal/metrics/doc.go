// Package metrics exports lookup lifecycle counters to Prometheus and reads
// runtime statistics for the health endpoint.
package metrics
