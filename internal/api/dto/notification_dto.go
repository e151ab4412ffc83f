package dto

import (
	"time"

	"github.com/spec-kit/aidrp-service/internal/domain"
)

// NotificationCreateRequest payload for dispatching a notification.
type NotificationCreateRequest struct {
	Title     string `json:"title"`
	Message   string `json:"message"`
	Recipient string `json:"recipient"`
}

// NotificationResponse is the public view of a notification.
type NotificationResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	TargetUserID string    `json:"target_user_id"`
	CreatedBy    string    `json:"created_by"`
	Sent         bool      `json:"sent"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewNotificationResponse maps a domain notification.
func NewNotificationResponse(notification *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:           notification.ID,
		Title:        notification.Title,
		Message:      notification.Message,
		TargetUserID: notification.TargetUserID,
		CreatedBy:    notification.CreatedBy,
		Sent:         notification.Sent,
		CreatedAt:    notification.CreatedAt,
	}
}
