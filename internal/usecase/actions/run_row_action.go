package actions

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/dental-admin/internal/audit"
	"github.com/BruksfildServices01/dental-admin/internal/domain"
	"github.com/BruksfildServices01/dental-admin/internal/forms"
	"github.com/BruksfildServices01/dental-admin/internal/notify"
)

// AuditDispatcher receives one event per executed action.
type AuditDispatcher interface {
	Dispatch(ev audit.Event)
}

type Observer interface {
	ObserveAction(entity, action, result string)
}

const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultNotFound = "not_found"
)

// Result of a row action. Record is set for actions that hand the record to
// the edit callback; Notification for the others.
type Result struct {
	Entity       domain.Entity        `json:"entity"`
	Action       domain.Action        `json:"action"`
	Record       any                  `json:"record,omitempty"`
	Notification *notify.Notification `json:"notification,omitempty"`
}

// RunRowAction executes a row menu entry. It never changes the datasets: the
// list keeps showing the record exactly as before.
type RunRowAction struct {
	repo     domain.Repository
	notifier notify.Notifier
	audit    AuditDispatcher
	observer Observer
}

func NewRunRowAction(
	repo domain.Repository,
	notifier notify.Notifier,
	audit AuditDispatcher,
	observer Observer,
) *RunRowAction {
	return &RunRowAction{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
		observer: observer,
	}
}

func (uc *RunRowAction) Execute(
	ctx context.Context,
	entity domain.Entity,
	id string,
	action domain.Action,
) (*Result, error) {

	outcome, err := domain.ResolveAction(entity, action)
	if err != nil {
		uc.observe(entity, action, ResultRejected)
		return nil, err
	}

	record, err := uc.load(ctx, entity, id, action)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.observe(entity, action, ResultNotFound)
		} else {
			uc.observe(entity, action, ResultRejected)
		}
		return nil, err
	}

	res := &Result{Entity: entity, Action: action}
	if outcome.ReturnsRecord {
		res.Record = record
		uc.observe(entity, action, ResultOK)
		return res, nil
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			Action:    string(entity) + "_" + pastTense(action),
			Entity:    string(entity),
			EntityID:  id,
			RequestID: forms.RequestIDFrom(ctx),
		})
	}

	n := notify.Success(outcome.Title, outcome.Description)
	if uc.notifier != nil {
		if err := uc.notifier.Notify(ctx, n); err != nil {
			return nil, err
		}
	}
	res.Notification = &n

	uc.observe(entity, action, ResultOK)
	return res, nil
}

// load fetches the record and checks the action is allowed for its state.
func (uc *RunRowAction) load(
	ctx context.Context,
	entity domain.Entity,
	id string,
	action domain.Action,
) (any, error) {

	switch entity {
	case domain.EntityAppointment:
		ap, err := uc.repo.GetAppointment(ctx, id)
		if err != nil {
			return nil, err
		}
		if action == domain.ActionCancel {
			if err := domain.CanCancel(ap.Status); err != nil {
				return nil, err
			}
		}
		return ap, nil

	case domain.EntityDentist:
		d, err := uc.repo.GetDentist(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := domain.CanChangeStatus(d.Status, action); err != nil {
			return nil, err
		}
		return d, nil

	case domain.EntityUser:
		u, err := uc.repo.GetUser(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := domain.CanChangeStatus(u.Status, action); err != nil {
			return nil, err
		}
		return u, nil
	}

	return nil, domain.ErrNotFound
}

func (uc *RunRowAction) observe(entity domain.Entity, action domain.Action, result string) {
	if uc.observer != nil {
		uc.observer.ObserveAction(string(entity), string(action), result)
	}
}

func pastTense(a domain.Action) string {
	switch a {
	case domain.ActionCancel:
		return "cancelled"
	case domain.ActionDelete:
		return "deleted"
	case domain.ActionActivate:
		return "activated"
	case domain.ActionDeactivate:
		return "deactivated"
	}
	return string(a)
}
