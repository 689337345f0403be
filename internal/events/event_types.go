package events

import (
	"time"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserApproved EventType = "user_approved"
	EventUserRejected EventType = "user_rejected"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID   string    `json:"id"`
	Type EventType `json:"type"`
	// UserID identifies the account the decision was made about.
	UserID int64 `json:"user_id"`
	// ActorID identifies the owner who made the decision.
	ActorID   int64       `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserModeratedPayload carries the recipient details the notifier needs, so
// handlers never have to go back to the store.
type UserModeratedPayload struct {
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Reason    string `json:"reason,omitempty"`
}
