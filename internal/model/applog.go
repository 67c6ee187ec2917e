package model

import "time"

// AppLog is an append-only application log entry persisted to the logging sink.
// RequestID is always recorded as 0 - request correlation was never wired up
// in the source system and the column is kept for schema compatibility.
type AppLog struct {
	AppName     string
	Level       string
	Logger      string
	Message     string
	Exception   string
	StackTrace  string
	MachineName string
	RequestID   int64
	CreatedAt   time.Time
}
