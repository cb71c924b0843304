package monitor

import "time"

type Status struct {
	TotalRequests     int64     `json:"total_requests"`
	RequestsPerMinute int64     `json:"requests_per_minute"`
	UptimeSeconds     int64     `json:"server_uptime_seconds"`
	StartedAt         time.Time `json:"started_at"`
}
