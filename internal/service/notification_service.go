package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/school-admin-service/internal/config"
	"github.com/spec-kit/school-admin-service/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotifyConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotifyConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventAccountProvisioned, n.handleAccountProvisioned)
	n.dispatcher.Subscribe(events.EventAccountDeleted, n.handleAccountDeleted)
	n.dispatcher.Subscribe(events.EventStudentDeleted, n.handleStudentDeleted)
	n.dispatcher.Subscribe(events.EventFeeRecorded, n.handleFeeRecorded)
	n.dispatcher.Subscribe(events.EventLoanUpdated, n.handleLoanUpdated)
}

func (n *NotificationService) handleAccountProvisioned(ctx context.Context, event events.Event) error {
	n.logger.Info("AccountProvisioned", zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleAccountDeleted(ctx context.Context, event events.Event) error {
	n.logger.Info("AccountDeleted", zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleStudentDeleted(ctx context.Context, event events.Event) error {
	n.logger.Info("StudentDeleted", zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleFeeRecorded(ctx context.Context, event events.Event) error {
	n.logger.Info("FeeRecorded", zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleLoanUpdated(ctx context.Context, event events.Event) error {
	n.logger.Info("LoanUpdated", zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_type", string(event.Type)))
}
