package audit

import (
	"context"
	"log/slog"
	"sync"

	"github.com/BruksfildServices01/dental-admin/internal/models"
)

// Sink stores one diagnostic entry.
type Sink interface {
	Write(ctx context.Context, entry models.AuditLog) error
}

// Logger writes diagnostic entries as structured log records.
type Logger struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Logger {
	if log == nil {
		log = slog.Default()
	}
	return &Logger{log: log.With("component", "audit")}
}

func (l *Logger) Write(ctx context.Context, entry models.AuditLog) error {
	attrs := []any{
		"action", entry.Action,
		"entity", entry.Entity,
	}
	if entry.EntityID != "" {
		attrs = append(attrs, "entity_id", entry.EntityID)
	}
	if entry.RequestID != "" {
		attrs = append(attrs, "request_id", entry.RequestID)
	}
	if entry.Payload != nil {
		attrs = append(attrs, "payload", entry.Payload)
	}

	l.log.InfoContext(ctx, "form activity", attrs...)
	return nil
}

// Recorder keeps entries in memory, oldest first. With a limit it keeps only
// the newest limit entries; the zero value is unbounded.
type Recorder struct {
	mu      sync.Mutex
	entries []models.AuditLog
	limit   int
}

func NewRecorder(limit int) *Recorder {
	return &Recorder{limit: limit}
}

func (r *Recorder) Write(_ context.Context, entry models.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	if over := len(r.entries) - r.limit; r.limit > 0 && over > 0 {
		r.entries = append([]models.AuditLog(nil), r.entries[over:]...)
	}
	return nil
}

func (r *Recorder) Entries() []models.AuditLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.AuditLog(nil), r.entries...)
}

// Tee fans an entry out to several sinks and returns the first error.
type Tee []Sink

func (t Tee) Write(ctx context.Context, entry models.AuditLog) error {
	var first error
	for _, s := range t {
		if err := s.Write(ctx, entry); err != nil && first == nil {
			first = err
		}
	}
	return first
}
