// Package server runs the optional HTTP listener that exposes Prometheus
// metrics and a health probe while ghlookup is running.
package server
