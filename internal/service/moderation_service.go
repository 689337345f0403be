package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/iqoooow/TERRA-ACADEMY/internal/domain"
	"github.com/iqoooow/TERRA-ACADEMY/internal/events"
	"github.com/iqoooow/TERRA-ACADEMY/internal/repository"
	apperrors "github.com/iqoooow/TERRA-ACADEMY/pkg/util"
)

// Moderation actions accepted by Decide.
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

// Decision is the confirmation returned after a moderation call.
type Decision struct {
	UserID int64
	Action string
	Status domain.Status
	Reason string
	Detail string
}

// ModerationService lets owners review pending registrations. Caller identity
// is passed explicitly into every operation.
type ModerationService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewModerationService builds the service.
func NewModerationService(users repository.UserRepository, dispatcher events.Dispatcher, logger *zap.Logger) *ModerationService {
	return &ModerationService{users: users, dispatcher: dispatcher, logger: logger}
}

// ListPending returns all accounts awaiting review, ordered by creation.
//
// A non-owner caller receives an empty slice rather than an error. This masks
// the permission failure as "no results" on purpose, mirroring how the admin
// listing has always behaved; Decide is where the explicit forbidden answer
// lives.
func (s *ModerationService) ListPending(ctx context.Context, caller *domain.User) ([]*domain.User, error) {
	if caller.Role != domain.RoleOwner {
		return []*domain.User{}, nil
	}
	return s.users.ListByStatus(ctx, domain.StatusPending)
}

// Decide transitions a pending account to approved or rejected and hands the
// notification off to the event queue. Approved and rejected are terminal: a
// second decision on the same account fails.
func (s *ModerationService) Decide(ctx context.Context, caller *domain.User, userID int64, action, reason string) (*Decision, error) {
	if caller.Role != domain.RoleOwner {
		return nil, apperrors.NewForbidden("Permission denied.")
	}

	var next domain.Status
	switch action {
	case ActionApprove:
		next = domain.StatusApproved
	case ActionReject:
		next = domain.StatusRejected
	default:
		return nil, apperrors.NewValidationError("Invalid action.", map[string]any{"field": "action"})
	}

	target, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("user", map[string]any{"id": userID})
		}
		return nil, err
	}

	// Compare-and-set on status: concurrent decisions on the same account
	// race here and exactly one wins.
	updated, err := s.users.UpdateStatusFromPending(ctx, userID, next)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, apperrors.NewInvalidState("Registration has already been decided.", map[string]any{"id": userID})
	}

	s.publishDecision(ctx, caller, target, next, reason)

	decision := &Decision{
		UserID: userID,
		Action: action,
		Status: next,
		Reason: reason,
	}
	if next == domain.StatusApproved {
		decision.Detail = "User approved successfully."
	} else {
		decision.Detail = fmt.Sprintf("User rejected. Reason: %s", reason)
	}
	return decision, nil
}

func (s *ModerationService) publishDecision(ctx context.Context, caller, target *domain.User, next domain.Status, reason string) {
	eventType := events.EventUserApproved
	if next == domain.StatusRejected {
		eventType = events.EventUserRejected
	}

	err := s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    target.ID,
		ActorID:   caller.ID,
		Timestamp: time.Now(),
		Payload: events.UserModeratedPayload{
			Email:     target.Email,
			Phone:     target.Phone,
			FirstName: target.FirstName,
			LastName:  target.LastName,
			Reason:    reason,
		},
	})
	if err != nil {
		// Notification is best-effort and never fails the decision.
		s.logger.Error("failed to publish moderation event",
			zap.Int64("user_id", target.ID),
			zap.String("event_type", string(eventType)),
			zap.Error(err))
	}
}
