package logger

import (
	"log"

	log_model "aircnc-booking/models/log"
	"aircnc-booking/types"

	"gorm.io/gorm"
)

// AsyncLogger persists request log entries off the hot path. Handlers push
// into a buffered channel; a single goroutine drains it into the database.
type AsyncLogger struct {
	db      *gorm.DB
	channel chan types.LogEntry
}

func NewAsyncLogger(db *gorm.DB) *AsyncLogger {
	return &AsyncLogger{
		db:      db,
		channel: make(chan types.LogEntry, 100), // Buffered channel to hold log entries
	}
}

func (logger *AsyncLogger) ProcessLog() {
	log.Println("Starting asynchronous request logger...")

	for logEntry := range logger.channel {
		dbLog := log_model.Log{
			Method:     logEntry.Method,
			Path:       logEntry.Path,
			IP:         logEntry.IP,
			StatusCode: logEntry.StatusCode,
			LatencyMS:  logEntry.LatencyMS,
			CreatedAt:  logEntry.CreatedAt,
		}

		if err := logger.db.Create(&dbLog).Error; err != nil {
			log.Printf("Failed to insert request log entry: %v", err)
		}
	}
}

// Log pushes a log entry into the channel. Drops the entry when the buffer
// is full rather than blocking a request handler.
func (logger *AsyncLogger) Log(entry types.LogEntry) {
	select {
	case logger.channel <- entry:
	default:
	}
}
