package domain

import "time"

// Role classifies an account at registration time and never changes afterwards.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
	RoleParent  Role = "parent"
	RoleOwner   Role = "owner"
)

// IsValid reports whether the role is one of the known values.
func (r Role) IsValid() bool {
	switch r {
	case RoleTeacher, RoleStudent, RoleParent, RoleOwner:
		return true
	}
	return false
}

// Status tracks the registration lifecycle of a user. Every account starts out
// pending and is moved exactly once to approved or rejected by an owner. Both
// outcomes are terminal.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// IsValid reports whether the status is one of the known values.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether the status permits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// User is the sole entity of the system: an academy account awaiting or past
// owner review. PasswordHash is never serialized outward.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        string
	BirthDate    *time.Time
	Role         Role
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
