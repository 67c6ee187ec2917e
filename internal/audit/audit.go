// Package audit records operational errors and informational events to the
// persistent application log. Writes are best-effort: a failed insert is
// reported by logrus to the local diagnostic stream and never escalated.
package audit

import (
	"context"
	"os"
	"runtime/debug"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/erp-crm/internal/model"
)

// Sink persists application log entries
type Sink interface {
	Insert(ctx context.Context, entry model.AppLog) error
}

// Logger is logrus-backed audit logger with a hook writing every error and
// informational event to the logging sink
type Logger struct {
	log *logrus.Logger
}

// New builds audit Logger for the given application name
func New(appName string, sink Sink) *Logger {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}

	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.AddHook(&sinkHook{appName: appName, host: host, sink: sink})

	return &Logger{log: l}
}

// Error records an operational error raised by source
func (a *Logger) Error(source, message string, err error) {
	fields := logrus.Fields{fieldSource: source}
	if err != nil {
		fields[fieldException] = err.Error()
		fields[fieldStack] = string(debug.Stack())
	}
	a.log.WithFields(fields).Error(message)
}

// Info records an informational event raised by source
func (a *Logger) Info(source, message string) {
	a.log.WithFields(logrus.Fields{fieldSource: source}).Info(message)
}

const (
	fieldSource    = "source"
	fieldException = "exception"
	fieldStack     = "stack"
)

type sinkHook struct {
	appName string
	host    string
	sink    Sink
}

func (h *sinkHook) Levels() []logrus.Level {
	return []logrus.Level{logrus.ErrorLevel, logrus.InfoLevel}
}

// Fire persists the entry. Returned errors are printed by logrus to stderr
// and are not propagated to the code being logged.
func (h *sinkHook) Fire(e *logrus.Entry) error {
	ctx := e.Context
	if ctx == nil {
		ctx = context.Background()
	}

	field := func(name string) string {
		if v, ok := e.Data[name].(string); ok {
			return v
		}
		return ""
	}

	return h.sink.Insert(ctx, model.AppLog{
		AppName:     h.appName,
		Level:       e.Level.String(),
		Logger:      field(fieldSource),
		Message:     e.Message,
		Exception:   field(fieldException),
		StackTrace:  field(fieldStack),
		MachineName: h.host,
		RequestID:   0, // correlation id is not propagated, column kept for schema compatibility
		CreatedAt:   e.Time,
	})
}
