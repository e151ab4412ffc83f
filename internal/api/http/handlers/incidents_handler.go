package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/aidrp-service/internal/api/dto"
	"github.com/spec-kit/aidrp-service/internal/auth"
	"github.com/spec-kit/aidrp-service/internal/domain"
	"github.com/spec-kit/aidrp-service/internal/repository"
	"github.com/spec-kit/aidrp-service/internal/service"
	apperrors "github.com/spec-kit/aidrp-service/pkg/util/errorutil"
)

// IncidentsHandler manages incident report endpoints.
type IncidentsHandler struct {
	service *service.IncidentService
}

// NewIncidentsHandler constructs handler.
func NewIncidentsHandler(incidentService *service.IncidentService) *IncidentsHandler {
	return &IncidentsHandler{service: incidentService}
}

// Create POST /incidents.
func (h *IncidentsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("could not validate credentials")
	}
	var req dto.IncidentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Location) == "" {
		return apperrors.NewValidationError("title and location required", nil)
	}

	input := service.IncidentCreateInput{
		Title:       req.Title,
		Description: req.Description,
		Severity:    req.Severity,
		Location:    req.Location,
		AssignedTo:  req.AssignedTo,
	}
	incident, err := h.service.Report(c.Context(), principal.User.ID, input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewIncidentResponse(incident)})
}

// List GET /incidents.
func (h *IncidentsHandler) List(c *fiber.Ctx) error {
	incidents, err := h.service.List(c.Context(), parseIncidentQuery(c))
	if err != nil {
		return err
	}
	items := make([]dto.IncidentResponse, 0, len(incidents))
	for i := range incidents {
		items = append(items, dto.NewIncidentResponse(&incidents[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /incidents/:id.
func (h *IncidentsHandler) Get(c *fiber.Ctx) error {
	incident, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewIncidentResponse(incident)})
}

// Assign POST /incidents/:id/assign.
func (h *IncidentsHandler) Assign(c *fiber.Ctx) error {
	var req dto.IncidentAssignRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.UserID == "" {
		return apperrors.NewValidationError("user_id required", nil)
	}

	incident, err := h.service.Assign(c.Context(), c.Params("id"), req.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewIncidentResponse(incident)})
}

// Delete DELETE /incidents/:id.
func (h *IncidentsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "incident deleted"}})
}

func parseIncidentQuery(c *fiber.Ctx) repository.IncidentFilter {
	filter := repository.IncidentFilter{}
	if severityStr := c.Query("severity"); severityStr != "" {
		severity := domain.IncidentSeverity(strings.TrimSpace(severityStr))
		filter.Severity = &severity
	}
	if assignedTo := c.Query("assigned_to"); assignedTo != "" {
		filter.AssignedTo = &assignedTo
	}
	if location := c.Query("location"); location != "" {
		filter.Location = &location
	}
	filter.Limit = parseIntQuery(c.Query("limit"), 100)
	filter.Offset = parseIntQuery(c.Query("offset"), 0)
	return filter
}
