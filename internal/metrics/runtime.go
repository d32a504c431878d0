package metrics

import (
	"runtime"
	"time"
)

// RuntimeSnapshot holds a point-in-time reading of process health.
type RuntimeSnapshot struct {
	Uptime     time.Duration `json:"-"`
	UptimeText string        `json:"uptime"`
	HeapAlloc  uint64        `json:"heap_alloc_bytes"`
	Sys        uint64        `json:"sys_bytes"`
	NumGC      uint32        `json:"num_gc"`
	Goroutines int           `json:"goroutines"`
}

// RuntimeCollector reads runtime statistics for the health endpoint.
type RuntimeCollector struct {
	started time.Time
}

// NewRuntimeCollector creates a collector whose uptime starts now.
func NewRuntimeCollector() *RuntimeCollector {
	return &RuntimeCollector{started: time.Now()}
}

// Snapshot reads current runtime statistics.
func (rc *RuntimeCollector) Snapshot() RuntimeSnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	uptime := time.Since(rc.started).Truncate(time.Second)
	return RuntimeSnapshot{
		Uptime:     uptime,
		UptimeText: uptime.String(),
		HeapAlloc:  m.HeapAlloc,
		Sys:        m.Sys,
		NumGC:      m.NumGC,
		Goroutines: runtime.NumGoroutine(),
	}
}
