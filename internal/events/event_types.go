package events

import (
	"time"

	"github.com/spec-kit/aidrp-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventIncidentReported   EventType = "incident_reported"
	EventUserEnrolled       EventType = "user_enrolled"
	EventNotificationQueued EventType = "notification_queued"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// IncidentReportedPayload payload.
type IncidentReportedPayload struct {
	IncidentID string                  `json:"incident_id"`
	Title      string                  `json:"title"`
	Severity   domain.IncidentSeverity `json:"severity"`
	Location   string                  `json:"location"`
}

// UserEnrolledPayload payload.
type UserEnrolledPayload struct {
	EnrollmentID string `json:"enrollment_id"`
	UserID       string `json:"user_id"`
	CourseID     string `json:"course_id"`
	CourseTitle  string `json:"course_title"`
}

// NotificationQueuedPayload payload.
type NotificationQueuedPayload struct {
	NotificationID string `json:"notification_id"`
	RecipientEmail string `json:"recipient_email"`
	Title          string `json:"title"`
	Message        string `json:"message"`
}
