package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/aidrp-service/internal/api/dto"
	"github.com/spec-kit/aidrp-service/internal/service"
	apperrors "github.com/spec-kit/aidrp-service/pkg/util/errorutil"
)

// SensorsHandler manages field sensor endpoints.
type SensorsHandler struct {
	service *service.SensorService
}

// NewSensorsHandler constructs handler.
func NewSensorsHandler(sensorService *service.SensorService) *SensorsHandler {
	return &SensorsHandler{service: sensorService}
}

// Create POST /sensors.
func (h *SensorsHandler) Create(c *fiber.Ctx) error {
	var req dto.SensorCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Type) == "" || strings.TrimSpace(req.Location) == "" {
		return apperrors.NewValidationError("type and location required", nil)
	}

	sensor, err := h.service.Create(c.Context(), req.Type, req.Location)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewSensorResponse(sensor)})
}

// List GET /sensors.
func (h *SensorsHandler) List(c *fiber.Ctx) error {
	sensors, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.SensorResponse, 0, len(sensors))
	for i := range sensors {
		items = append(items, dto.NewSensorResponse(&sensors[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /sensors/:id.
func (h *SensorsHandler) Get(c *fiber.Ctx) error {
	sensor, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSensorResponse(sensor)})
}

// Heartbeat POST /sensors/:id/heartbeat.
func (h *SensorsHandler) Heartbeat(c *fiber.Ctx) error {
	sensor, err := h.service.Heartbeat(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSensorResponse(sensor)})
}

// Delete DELETE /sensors/:id.
func (h *SensorsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "sensor deleted"}})
}
