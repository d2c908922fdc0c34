package client

import (
	"encoding/json"
	"io"
	"sync"
	"time"
)

// Logger records each request/response exchange for debugging.
// Implementations must be safe for concurrent use.
type Logger interface {
	LogRequest(e Entry)
}

// Entry describes one exchange with the backend.
type Entry struct {
	Op        string
	Route     string
	RequestID string
	Status    int
	Body      string
	Error     string
	Elapsed   time.Duration
}

// NopLogger discards all log output. This is the default when debug
// logging is not enabled.
type NopLogger struct{}

// LogRequest is a no-op.
func (NopLogger) LogRequest(Entry) {}

// logLine is the JSON structure written by FileLogger.
type logLine struct {
	Timestamp string `json:"ts"`
	Op        string `json:"op"`
	Route     string `json:"route"`
	RequestID string `json:"request_id"`
	Status    int    `json:"status,omitempty"`
	Body      string `json:"body,omitempty"`
	Error     string `json:"error,omitempty"`
	ElapsedMS int64  `json:"elapsed_ms"`
}

// FileLogger writes structured JSON debug output to an io.Writer.
// Each line is a complete JSON object (JSONL format).
type FileLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewFileLogger creates a FileLogger that writes to the given writer.
func NewFileLogger(w io.Writer) *FileLogger {
	return &FileLogger{w: w}
}

// LogRequest writes a JSON line for one backend exchange.
func (l *FileLogger) LogRequest(e Entry) {
	line := logLine{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Op:        e.Op,
		Route:     e.Route,
		RequestID: e.RequestID,
		Status:    e.Status,
		Body:      e.Body,
		Error:     e.Error,
		ElapsedMS: e.Elapsed.Milliseconds(),
	}

	data, err := json.Marshal(line)
	if err != nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(data)
	l.w.Write([]byte("\n"))
}
