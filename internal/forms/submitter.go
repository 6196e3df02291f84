package forms

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/dental-admin/internal/audit"
	"github.com/BruksfildServices01/dental-admin/internal/notify"
)

// DefaultLatency is the artificial delay of a simulated save.
const DefaultLatency = time.Second

// AuditDispatcher receives the submitted payloads.
type AuditDispatcher interface {
	Dispatch(ev audit.Event)
}

// Observer is told about every form outcome.
type Observer interface {
	ObserveForm(entity, outcome string)
}

const (
	OutcomeInvalid   = "invalid"
	OutcomeBusy      = "busy"
	OutcomeAccepted  = "accepted"
	OutcomeCompleted = "completed"
	OutcomeCancelled = "cancelled"
)

// Deps are the capabilities every form needs.
type Deps struct {
	Notifier notify.Notifier
	Audit    AuditDispatcher
	Logger   *slog.Logger
	Observer Observer
	// Latency of the simulated save. Zero completes on the next tick.
	Latency time.Duration
}

// Callbacks are invoked by the form; both are optional.
type Callbacks struct {
	OnSuccess func()
	OnCancel  func()
}

// Submission is a pending simulated save. It always ends in success.
type Submission struct {
	ID           string
	Notification notify.Notification
	done         chan struct{}
}

// Done is closed once the success callback has returned.
func (s *Submission) Done() <-chan struct{} {
	return s.done
}

// Wait blocks until the submission completes or ctx ends. An expired ctx does
// not stop the submission.
func (s *Submission) Wait(ctx context.Context) error {
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type job struct {
	entity       string
	entityID     string
	payload      any
	notification notify.Notification
}

// submitter owns the submitting flag of one form instance.
type submitter struct {
	deps   Deps
	cb     Callbacks
	entity string

	mu         sync.Mutex
	submitting bool
}

func newSubmitter(entity string, deps Deps, cb Callbacks) *submitter {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Notifier == nil {
		deps.Notifier = notify.NotifierFunc(func(context.Context, notify.Notification) error { return nil })
	}
	return &submitter{deps: deps, cb: cb, entity: entity}
}

func (s *submitter) Submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitting
}

func (s *submitter) observe(outcome string) {
	if s.deps.Observer != nil {
		s.deps.Observer.ObserveForm(s.entity, outcome)
	}
}

func (s *submitter) dispatch(ev audit.Event) {
	if s.deps.Audit != nil {
		s.deps.Audit.Dispatch(ev)
	}
}

// begin flips the submitting flag or reports that a save is already pending.
func (s *submitter) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting {
		s.observe(OutcomeBusy)
		return ErrSubmitting
	}
	s.submitting = true
	return nil
}

// start schedules the simulated save. The caller must have called begin.
func (s *submitter) start(ctx context.Context, j job) *Submission {
	sub := &Submission{
		ID:           uuid.NewString(),
		Notification: j.notification,
		done:         make(chan struct{}),
	}
	requestID := RequestIDFrom(ctx)
	ctx = context.WithoutCancel(ctx)

	s.observe(OutcomeAccepted)
	s.deps.Logger.Debug("form submission accepted",
		"entity", s.entity, "submission_id", sub.ID, "latency", s.deps.Latency)

	time.AfterFunc(s.deps.Latency, func() {
		defer close(sub.done)

		s.dispatch(audit.Event{
			Action:    s.entity + "_submitted",
			Entity:    s.entity,
			EntityID:  j.entityID,
			RequestID: requestID,
			Payload:   j.payload,
		})

		if err := s.deps.Notifier.Notify(ctx, j.notification); err != nil {
			s.deps.Logger.Error("failed to publish notification",
				"entity", s.entity, "submission_id", sub.ID, "error", err)
		}

		s.mu.Lock()
		s.submitting = false
		s.mu.Unlock()

		s.observe(OutcomeCompleted)
		if s.cb.OnSuccess != nil {
			s.cb.OnSuccess()
		}
	})

	return sub
}

// cancel runs the cancel callback without looking at any field.
func (s *submitter) cancel(ctx context.Context, entityID string) {
	s.dispatch(audit.Event{
		Action:    "form_cancelled",
		Entity:    s.entity,
		EntityID:  entityID,
		RequestID: RequestIDFrom(ctx),
	})
	s.observe(OutcomeCancelled)
	if s.cb.OnCancel != nil {
		s.cb.OnCancel()
	}
}

type requestIDKey struct{}

// WithRequestID tags ctx so diagnostic entries can be correlated.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// release clears the submitting flag when a save could not be started.
func (s *submitter) release() {
	s.mu.Lock()
	s.submitting = false
	s.mu.Unlock()
}
