package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/aidrp-service/internal/domain"
	"github.com/spec-kit/aidrp-service/internal/events"
	"github.com/spec-kit/aidrp-service/internal/mailer"
	"github.com/spec-kit/aidrp-service/internal/repository"
	apperrors "github.com/spec-kit/aidrp-service/pkg/util/errorutil"
)

// NotificationService stores notifications and handles their email
// delivery through domain events.
type NotificationService struct {
	notifications repository.NotificationRepository
	users         repository.UserRepository
	dispatcher    events.Dispatcher
	mail          mailer.Mailer
	logger        *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(notifications repository.NotificationRepository, users repository.UserRepository, dispatcher events.Dispatcher, mail mailer.Mailer, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		users:         users,
		dispatcher:    dispatcher,
		mail:          mail,
		logger:        logger,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventIncidentReported, n.handleIncidentReported)
	n.dispatcher.Subscribe(events.EventUserEnrolled, n.handleUserEnrolled)
	n.dispatcher.Subscribe(events.EventNotificationQueued, n.handleNotificationQueued)
}

// Create stores a notification addressed to the recipient email and
// queues it for delivery. The dispatcher is synchronous, so on return the
// sent flag reflects the delivery attempt.
func (n *NotificationService) Create(ctx context.Context, createdBy, recipientEmail, title, message string) (*domain.Notification, error) {
	recipient, err := n.users.GetByEmail(ctx, recipientEmail)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("recipient user", nil)
		}
		return nil, err
	}

	notification := &domain.Notification{
		Title:        title,
		Message:      message,
		TargetUserID: recipient.ID,
		CreatedBy:    createdBy,
		Sent:         false,
	}
	if err := n.notifications.Create(ctx, notification); err != nil {
		return nil, err
	}

	_ = n.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventNotificationQueued,
		ActorID:   createdBy,
		Timestamp: time.Now(),
		Payload: events.NotificationQueuedPayload{
			NotificationID: notification.ID,
			RecipientEmail: recipient.Email,
			Title:          title,
			Message:        message,
		},
	})

	if updated, err := n.notifications.GetByID(ctx, notification.ID); err == nil {
		notification = updated
	}
	return notification, nil
}

// List returns all notifications, newest first.
func (n *NotificationService) List(ctx context.Context) ([]domain.Notification, error) {
	return n.notifications.List(ctx)
}

// Delete removes a notification.
func (n *NotificationService) Delete(ctx context.Context, id string) error {
	if err := n.notifications.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("notification", nil)
		}
		return err
	}
	return nil
}

func (n *NotificationService) handleIncidentReported(_ context.Context, event events.Event) error {
	n.logger.Info("IncidentReported", zap.String("event_id", event.ID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleUserEnrolled(_ context.Context, event events.Event) error {
	n.logger.Info("UserEnrolled", zap.String("event_id", event.ID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleNotificationQueued(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.NotificationQueuedPayload)
	if !ok {
		return nil
	}

	if err := n.mail.Send(ctx, payload.RecipientEmail, payload.Title, payload.Message); err != nil {
		n.logger.Error("email delivery failed",
			zap.String("notification_id", payload.NotificationID),
			zap.Error(err))
		return err
	}
	if err := n.notifications.MarkSent(ctx, payload.NotificationID); err != nil {
		n.logger.Error("failed to mark notification sent",
			zap.String("notification_id", payload.NotificationID),
			zap.Error(err))
		return err
	}
	return nil
}
