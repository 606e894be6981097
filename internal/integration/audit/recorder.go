// Package audit persists audit log entries off the request path.
package audit

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
)

// RecorderConfig holds configuration for the audit recorder.
type RecorderConfig struct {
	BufferSize   int
	WriteTimeout time.Duration
}

// DefaultRecorderConfig returns the default recorder configuration.
func DefaultRecorderConfig() RecorderConfig {
	return RecorderConfig{
		BufferSize:   256,
		WriteTimeout: 5 * time.Second,
	}
}

// Recorder queues audit entries on a buffered channel and writes them from a
// single goroutine. Record never blocks: when the buffer is full the entry is
// dropped and counted.
type Recorder struct {
	repo         adapter.AuditLogRepository
	entries      chan *entity.AuditLogEntry
	writeTimeout time.Duration
	logger       *slog.Logger

	mu      sync.RWMutex
	closed  bool
	done    chan struct{}
	dropped atomic.Int64
}

// NewRecorder creates a new audit recorder.
func NewRecorder(repo adapter.AuditLogRepository, config RecorderConfig) *Recorder {
	if config.BufferSize <= 0 {
		config.BufferSize = DefaultRecorderConfig().BufferSize
	}
	if config.WriteTimeout <= 0 {
		config.WriteTimeout = DefaultRecorderConfig().WriteTimeout
	}
	return &Recorder{
		repo:         repo,
		entries:      make(chan *entity.AuditLogEntry, config.BufferSize),
		writeTimeout: config.WriteTimeout,
		logger:       slog.With("component", "audit_recorder"),
		done:         make(chan struct{}),
	}
}

// Record enqueues entry for persistence.
func (r *Recorder) Record(entry *entity.AuditLogEntry) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		r.dropped.Add(1)
		r.logger.Warn("Audit recorder closed, dropping entry", "action", entry.Action, "resource", entry.Resource)
		return
	}

	select {
	case r.entries <- entry:
	default:
		r.dropped.Add(1)
		r.logger.Warn("Audit buffer full, dropping entry", "action", entry.Action, "resource", entry.Resource)
	}
}

// Start writes queued entries until Close is called and the buffer is
// drained. It blocks, so run it in its own goroutine. Writes outlive ctx
// cancellation so that shutdown can flush the buffer.
func (r *Recorder) Start(ctx context.Context) {
	defer close(r.done)
	r.logger.Info("Audit recorder started", "buffer_size", cap(r.entries))

	base := context.WithoutCancel(ctx)
	for entry := range r.entries {
		r.write(base, entry)
	}

	r.logger.Info("Audit recorder stopped", "dropped", r.dropped.Load())
}

func (r *Recorder) write(ctx context.Context, entry *entity.AuditLogEntry) {
	ctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()

	if err := r.repo.Create(ctx, entry); err != nil {
		r.logger.Error("Failed to persist audit entry",
			"action", entry.Action,
			"resource", entry.Resource,
			"error", err,
		)
	}
}

// Close stops accepting entries and waits for the buffer to drain or ctx to
// expire. Start must be running for the drain to complete.
func (r *Recorder) Close(ctx context.Context) error {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.entries)
	}
	r.mu.Unlock()

	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Dropped returns how many entries were discarded.
func (r *Recorder) Dropped() int64 {
	return r.dropped.Load()
}
