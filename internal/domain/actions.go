package domain

import (
	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/models"
)

type Entity string

const (
	EntityAppointment Entity = "appointment"
	EntityDentist     Entity = "dentist"
	EntityUser        Entity = "user"
)

// Action is a row menu entry.
type Action string

const (
	ActionView       Action = "view"
	ActionEdit       Action = "edit"
	ActionReschedule Action = "reschedule"
	ActionCancel     Action = "cancel"
	ActionDelete     Action = "delete"
	ActionActivate   Action = "activate"
	ActionDeactivate Action = "deactivate"
)

// Outcome describes what a row action shows. Actions that hand the record
// back to the caller (the edit callback) carry no notification.
type Outcome struct {
	ReturnsRecord bool
	Title         string
	Description   string
}

var outcomes = map[Entity]map[Action]Outcome{
	EntityAppointment: {
		ActionView:       {ReturnsRecord: true},
		ActionEdit:       {ReturnsRecord: true},
		ActionReschedule: {ReturnsRecord: true},
		ActionCancel:     {Title: "Appointment cancelled successfully", Description: "The appointment has been cancelled."},
	},
	EntityDentist: {
		ActionEdit:       {ReturnsRecord: true},
		ActionDelete:     {Title: "Dentist deleted successfully", Description: "The dentist has been removed from the system."},
		ActionActivate:   {Title: "Dentist activated successfully"},
		ActionDeactivate: {Title: "Dentist deactivated successfully"},
	},
	EntityUser: {
		ActionEdit:       {ReturnsRecord: true},
		ActionDelete:     {Title: "User deleted successfully", Description: "The user has been removed from the system."},
		ActionActivate:   {Title: "User activated successfully"},
		ActionDeactivate: {Title: "User deactivated successfully"},
	},
}

// ===============================
// Validations
// ===============================

// ResolveAction returns the outcome of action on entity.
func ResolveAction(entity Entity, action Action) (Outcome, error) {
	byAction, ok := outcomes[entity]
	if !ok {
		return Outcome{}, httperr.ErrBusiness("unknown_entity")
	}
	out, ok := byAction[action]
	if !ok {
		return Outcome{}, httperr.ErrBusiness("unknown_action")
	}
	return out, nil
}

// CanCancel rejects cancelling an appointment that is already cancelled.
func CanCancel(current models.AppointmentStatus) error {
	if current == models.AppointmentCancelled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanChangeStatus rejects activating an active account and deactivating an
// inactive one; the menu only ever offers the opposite state.
func CanChangeStatus(current models.AccountStatus, action Action) error {
	switch action {
	case ActionActivate:
		if current == models.StatusActive {
			return httperr.ErrBusiness("invalid_state")
		}
	case ActionDeactivate:
		if current == models.StatusInactive {
			return httperr.ErrBusiness("invalid_state")
		}
	}
	return nil
}
