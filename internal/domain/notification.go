package domain

import "time"

// Notification is a message addressed to a user, delivered by email.
// Sent flips to true once delivery succeeds.
type Notification struct {
	ID           string
	Title        string
	Message      string
	TargetUserID string
	CreatedBy    string
	Sent         bool
	CreatedAt    time.Time
}
