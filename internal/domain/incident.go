package domain

import "time"

// IncidentSeverity grades how serious an incident is.
type IncidentSeverity string

const (
	SeverityLow      IncidentSeverity = "LOW"
	SeverityMedium   IncidentSeverity = "MEDIUM"
	SeverityHigh     IncidentSeverity = "HIGH"
	SeverityCritical IncidentSeverity = "CRITICAL"
)

// Incident is a reported field incident, optionally assigned to a responder.
type Incident struct {
	ID          string
	Title       string
	Description *string
	Severity    IncidentSeverity
	Location    string
	AssignedTo  *string
	ReportedAt  time.Time
}
