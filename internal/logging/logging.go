package logging

import (
	"encoding/json"
	"log"
	"os"
	"time"
)

// Level is the severity of a log entry.
type Level string

const (
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"
)

// Fields carries the key/value pairs of a structured log entry.
type Fields map[string]any

// Logger is the structured logging interface used throughout hopgate.
// Implementations emit one JSON object per line to stdout, which keeps
// them easy to ship to any log aggregator without a dedicated client.
type Logger interface {
	Debug(msg string, fields Fields)
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, fields Fields)

	// With returns a child logger that always includes the given fields.
	With(fields Fields) Logger
}

// stdLogger wraps a standard log.Logger.
type stdLogger struct {
	l      *log.Logger
	fields Fields
}

func (s *stdLogger) log(level Level, msg string, fields Fields) {
	entry := map[string]any{
		"ts":    time.Now().UTC().Format(time.RFC3339Nano),
		"level": level,
		"msg":   msg,
	}

	for k, v := range s.fields {
		entry[k] = v
	}
	for k, v := range fields {
		entry[k] = v
	}

	b, err := json.Marshal(entry)
	if err != nil {
		s.l.Printf("level=%s msg=%s marshal_error=%v", level, msg, err)
		return
	}
	s.l.Println(string(b))
}

func (s *stdLogger) Debug(msg string, fields Fields) { s.log(DebugLevel, msg, fields) }
func (s *stdLogger) Info(msg string, fields Fields)  { s.log(InfoLevel, msg, fields) }
func (s *stdLogger) Warn(msg string, fields Fields)  { s.log(WarnLevel, msg, fields) }
func (s *stdLogger) Error(msg string, fields Fields) { s.log(ErrorLevel, msg, fields) }

func (s *stdLogger) With(fields Fields) Logger {
	merged := Fields{}
	for k, v := range s.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &stdLogger{
		l:      s.l,
		fields: merged,
	}
}

// NewStdJSONLogger creates a Logger that writes single-line JSON to stdout.
// component is attached to every entry emitted by the returned logger.
func NewStdJSONLogger(component string) Logger {
	return &stdLogger{
		l:      log.New(os.Stdout, "", 0),
		fields: Fields{"component": component},
	}
}
