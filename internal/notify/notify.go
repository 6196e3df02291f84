// Package notify carries the toast notifications shown to the user. Forms and
// row actions receive a Notifier; pages read the same feed back.
package notify

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

type Notification struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"kind"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Success builds a success notification with a fresh id.
func Success(title, description string) Notification {
	return newNotification(KindSuccess, title, description)
}

// Error builds an error notification with a fresh id.
func Error(title, description string) Notification {
	return newNotification(KindError, title, description)
}

func newNotification(kind Kind, title, description string) Notification {
	return Notification{
		ID:          uuid.NewString(),
		Kind:        kind,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}

var ErrNotFound = errors.New("notification not found")

type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// Feed is a Notifier that can be read back and dismissed.
type Feed interface {
	Notifier
	List(ctx context.Context) ([]Notification, error)
	Dismiss(ctx context.Context, id string) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, n Notification) error

func (f NotifierFunc) Notify(ctx context.Context, n Notification) error {
	return f(ctx, n)
}
