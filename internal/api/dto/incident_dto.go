package dto

import (
	"time"

	"github.com/spec-kit/aidrp-service/internal/domain"
)

// IncidentCreateRequest payload for reporting an incident.
type IncidentCreateRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Severity    string  `json:"severity"`
	Location    string  `json:"location"`
	AssignedTo  *string `json:"assigned_to"`
}

// IncidentAssignRequest payload for assigning a responder.
type IncidentAssignRequest struct {
	UserID string `json:"user_id"`
}

// IncidentResponse is the public view of an incident.
type IncidentResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Severity    string    `json:"severity"`
	Location    string    `json:"location"`
	AssignedTo  *string   `json:"assigned_to"`
	ReportedAt  time.Time `json:"reported_at"`
}

// NewIncidentResponse maps a domain incident.
func NewIncidentResponse(incident *domain.Incident) IncidentResponse {
	return IncidentResponse{
		ID:          incident.ID,
		Title:       incident.Title,
		Description: incident.Description,
		Severity:    string(incident.Severity),
		Location:    incident.Location,
		AssignedTo:  incident.AssignedTo,
		ReportedAt:  incident.ReportedAt,
	}
}
