package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/aidrp-service/internal/domain"
	"github.com/spec-kit/aidrp-service/internal/events"
	"github.com/spec-kit/aidrp-service/internal/repository"
	apperrors "github.com/spec-kit/aidrp-service/pkg/util/errorutil"
)

// IncidentCreateInput carries a new incident report.
type IncidentCreateInput struct {
	Title       string
	Description *string
	Severity    string
	Location    string
	AssignedTo  *string
}

// IncidentService manages incident records and responder assignment.
type IncidentService struct {
	incidents  repository.IncidentRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// NewIncidentService builds the service.
func NewIncidentService(incidents repository.IncidentRepository, users repository.UserRepository, dispatcher events.Dispatcher) *IncidentService {
	return &IncidentService{incidents: incidents, users: users, dispatcher: dispatcher}
}

// Report stores a new incident and announces it.
func (s *IncidentService) Report(ctx context.Context, actorID string, input IncidentCreateInput) (*domain.Incident, error) {
	severity, err := parseSeverity(input.Severity)
	if err != nil {
		return nil, err
	}
	if input.AssignedTo != nil {
		if err := s.ensureAssignable(ctx, *input.AssignedTo); err != nil {
			return nil, err
		}
	}

	incident := &domain.Incident{
		Title:       input.Title,
		Description: input.Description,
		Severity:    severity,
		Location:    input.Location,
		AssignedTo:  input.AssignedTo,
	}
	if err := s.incidents.Create(ctx, incident); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventIncidentReported,
		ActorID:   actorID,
		Timestamp: time.Now(),
		Payload: events.IncidentReportedPayload{
			IncidentID: incident.ID,
			Title:      incident.Title,
			Severity:   incident.Severity,
			Location:   incident.Location,
		},
	})
	return incident, nil
}

// List returns incidents matching the filter.
func (s *IncidentService) List(ctx context.Context, filter repository.IncidentFilter) ([]domain.Incident, error) {
	return s.incidents.List(ctx, filter)
}

// Get fetches a single incident.
func (s *IncidentService) Get(ctx context.Context, id string) (*domain.Incident, error) {
	incident, err := s.incidents.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("incident", nil)
		}
		return nil, err
	}
	return incident, nil
}

// Assign hands an incident to an active responder.
func (s *IncidentService) Assign(ctx context.Context, incidentID, userID string) (*domain.Incident, error) {
	incident, err := s.Get(ctx, incidentID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureAssignable(ctx, userID); err != nil {
		return nil, err
	}

	incident.AssignedTo = &userID
	if err := s.incidents.Update(ctx, incident); err != nil {
		return nil, err
	}
	return incident, nil
}

// Delete removes an incident.
func (s *IncidentService) Delete(ctx context.Context, id string) error {
	if err := s.incidents.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("incident", nil)
		}
		return err
	}
	return nil
}

func (s *IncidentService) ensureAssignable(ctx context.Context, userID string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("assignee", nil)
		}
		return err
	}
	if !user.Active {
		return apperrors.NewValidationError("assignee account is suspended", nil)
	}
	return nil
}

func parseSeverity(raw string) (domain.IncidentSeverity, error) {
	switch domain.IncidentSeverity(raw) {
	case domain.SeverityLow, domain.SeverityMedium, domain.SeverityHigh, domain.SeverityCritical:
		return domain.IncidentSeverity(raw), nil
	}
	return "", apperrors.NewValidationError("unknown severity", map[string]any{"severity": raw})
}
