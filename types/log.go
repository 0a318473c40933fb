package types

import "time"

// LogEntry is a request log record on its way to the database.
type LogEntry struct {
	Method     string
	Path       string
	IP         string
	StatusCode int
	LatencyMS  int64
	CreatedAt  time.Time
}
