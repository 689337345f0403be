package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/iqoooow/TERRA-ACADEMY/internal/config"
	"github.com/iqoooow/TERRA-ACADEMY/internal/events"
)

// NotificationService informs applicants about moderation decisions. Delivery
// is stubbed: real SMS/email transport is an external collaborator and the
// stubs only log what would be sent.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to moderation events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventUserApproved, n.handleUserApproved)
	n.dispatcher.Subscribe(events.EventUserRejected, n.handleUserRejected)
}

func (n *NotificationService) handleUserApproved(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.UserModeratedPayload)
	if !ok {
		return fmt.Errorf("unexpected payload for %s", event.Type)
	}
	message := "Congratulations! Your TERRA ACADEMY application has been approved. You can now log in."
	n.sendSMSStub(ctx, payload.Phone, message)
	n.sendEmailStub(ctx, payload.Email, message)
	return nil
}

func (n *NotificationService) handleUserRejected(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.UserModeratedPayload)
	if !ok {
		return fmt.Errorf("unexpected payload for %s", event.Type)
	}
	message := fmt.Sprintf("Unfortunately, your TERRA ACADEMY application was rejected. Reason: %s", payload.Reason)
	n.sendSMSStub(ctx, payload.Phone, message)
	n.sendEmailStub(ctx, payload.Email, message)
	return nil
}

func (n *NotificationService) sendSMSStub(_ context.Context, phone, message string) {
	if strings.TrimSpace(n.cfg.SMSSenderID) == "" || strings.TrimSpace(phone) == "" {
		return
	}
	n.logger.Info("sendSMSStub",
		zap.String("sender", n.cfg.SMSSenderID),
		zap.String("to", phone),
		zap.String("message", message))
}

func (n *NotificationService) sendEmailStub(_ context.Context, email, message string) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Info("sendEmailStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("to", email),
		zap.String("message", message))
}
