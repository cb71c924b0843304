// Package monitor tracks in-process usage counters. The service has no
// external dependencies to health-check, so the monitor observes only the
// process itself: request volume and uptime.
package monitor

import (
	"sync/atomic"
	"time"
)

type Monitor struct {
	started  time.Time
	requests atomic.Int64
}

func New() *Monitor {
	return &Monitor{started: time.Now()}
}

// CountRequest records one handled API request.
func (m *Monitor) CountRequest() {
	m.requests.Add(1)
}

// Uptime reports how long the process has been serving.
func (m *Monitor) Uptime() time.Duration {
	return time.Since(m.started)
}

// Snapshot returns the current counters.
func (m *Monitor) Snapshot() Status {
	uptime := m.Uptime()
	total := m.requests.Load()

	perMinute := int64(0)
	if minutes := uptime.Minutes(); minutes > 0 {
		perMinute = int64(float64(total)/minutes + 0.5)
	}

	return Status{
		TotalRequests:     total,
		RequestsPerMinute: perMinute,
		UptimeSeconds:     int64(uptime.Seconds()),
		StartedAt:         m.started,
	}
}
