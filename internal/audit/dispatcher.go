package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/BruksfildServices01/dental-admin/internal/models"
)

type Event struct {
	Action    string
	Entity    string
	EntityID  string
	RequestID string
	Payload   any
}

// Dispatcher hands events to a background worker so that writing the
// diagnostic log never delays a form.
type Dispatcher struct {
	sink  Sink
	log   *slog.Logger
	queue chan Event
	done  chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(sink Sink, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	d := &Dispatcher{
		sink:  sink,
		log:   log,
		queue: make(chan Event, 100),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		entry := models.AuditLog{
			Action:    ev.Action,
			Entity:    ev.Entity,
			EntityID:  ev.EntityID,
			RequestID: ev.RequestID,
			Payload:   ev.Payload,
			CreatedAt: time.Now().UTC(),
		}
		if err := d.sink.Write(context.Background(), entry); err != nil {
			d.log.Error("audit write failed", "action", ev.Action, "error", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.log.Warn("audit dispatcher closed, dropping event", "action", ev.Action)
		return
	}

	select {
	case d.queue <- ev:
	default:
		// queue full: drop rather than block the caller
		d.log.Warn("audit queue full, dropping event", "action", ev.Action)
	}
}

// Close stops accepting events and waits until the queue is drained or ctx
// expires. Events dispatched afterwards are dropped.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
