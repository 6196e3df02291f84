package models

import "time"

// AuditLog is one entry of the diagnostic log. Payload carries the submitted
// values as they were validated.
type AuditLog struct {
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  string    `json:"entity_id,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
	Payload   any       `json:"payload,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
