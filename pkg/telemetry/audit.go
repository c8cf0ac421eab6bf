package telemetry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// AuditEvent is a single audit record: one resource operation with its
// configuration context at the time of the operation.
type AuditEvent struct {
	// ID is the unique identifier for this event.
	ID string `json:"id"`

	// Timestamp is when the operation happened.
	Timestamp time.Time `json:"timestamp"`

	// ResourceType is the resource type name (AppService, StorageAccount, ...).
	ResourceType string `json:"resource_type"`

	// Message describes the operation (created, started in X, stopped, ...).
	Message string `json:"message"`

	// Config is the resource's configuration view at the time of the event.
	// Secret fields arrive already masked.
	Config map[string]any `json:"config,omitempty"`
}

// Sink receives audit events. Sinks must not mutate the event.
type Sink interface {
	Write(event AuditEvent) error
}

// Recorder fans audit events out to its sinks. It satisfies the core's
// audit collaborator contract: a Log call always returns, synchronously,
// and never fails the operation being recorded. Sink errors are reported
// to the structured logger and swallowed.
type Recorder struct {
	logger *Logger
	sinks  []Sink
}

// NewRecorder creates a recorder writing to the given sinks.
func NewRecorder(logger *Logger, sinks ...Sink) *Recorder {
	if logger == nil {
		logger, _ = NewLogger(LoggingConfig{Level: "info", Output: "stderr"})
	}
	return &Recorder{
		logger: logger.NewComponentLogger("audit"),
		sinks:  sinks,
	}
}

// Log records one resource operation. It implements the audit collaborator
// interface the resource package expects.
func (r *Recorder) Log(resourceType, message string, config map[string]any) {
	event := AuditEvent{
		ID:           uuid.NewString(),
		Timestamp:    time.Now(),
		ResourceType: resourceType,
		Message:      message,
		Config:       config,
	}

	for _, sink := range r.sinks {
		if err := sink.Write(event); err != nil {
			r.logger.WithError(err).Warnf("audit sink failed for %s: %s", resourceType, message)
		}
	}
}

// ConsoleSink mirrors audit events to the structured logger at info level.
type ConsoleSink struct {
	logger *Logger
}

// NewConsoleSink creates a sink writing to the given logger.
func NewConsoleSink(logger *Logger) *ConsoleSink {
	return &ConsoleSink{logger: logger}
}

// Write implements Sink.
func (s *ConsoleSink) Write(event AuditEvent) error {
	s.logger.zlog.Info().
		Str("resource_type", event.ResourceType).
		Interface("config", event.Config).
		Msg(event.Message)
	return nil
}

// FileSink appends audit events to one log file per resource type, in a
// plain human-readable format:
//
//	[10:42 AM] AppService: started in WestEurope (region=WestEurope, runtime=python, replicas=2)
type FileSink struct {
	mu  sync.Mutex
	dir string
}

// NewFileSink creates a sink writing under dir, creating it if needed.
func NewFileSink(dir string) (*FileSink, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create audit log directory: %w", err)
	}
	return &FileSink{dir: dir}, nil
}

// Write implements Sink.
func (s *FileSink) Write(event AuditEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, strings.ToLower(event.ResourceType)+".log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open audit log file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(FormatAuditLine(event) + "\n"); err != nil {
		return fmt.Errorf("failed to append audit record: %w", err)
	}
	return nil
}

// Tail returns up to n recent lines from the audit file of one resource
// type. n <= 0 returns all lines. A missing file yields no lines.
func (s *FileSink) Tail(resourceType string, n int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, strings.ToLower(resourceType)+".log")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read audit log file: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil, nil
	}
	if n > 0 && len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines, nil
}

// FormatAuditLine renders an event in the per-type file format.
func FormatAuditLine(event AuditEvent) string {
	line := fmt.Sprintf("[%s] %s: %s",
		event.Timestamp.Format("03:04 PM"),
		event.ResourceType,
		event.Message,
	)
	if ctx := formatConfigContext(event.Config); ctx != "" {
		line += " (" + ctx + ")"
	}
	return line
}

// formatConfigContext renders the configuration context portion of a file
// line. Keys are sorted for stable output; replica_count is shortened to
// "replicas" for readability.
func formatConfigContext(config map[string]any) string {
	if len(config) == 0 {
		return ""
	}

	keys := make([]string, 0, len(config))
	for k := range config {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		label := k
		if k == "replica_count" {
			label = "replicas"
		}
		parts = append(parts, fmt.Sprintf("%s=%v", label, config[k]))
	}
	return strings.Join(parts, ", ")
}
