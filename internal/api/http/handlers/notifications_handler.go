package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/aidrp-service/internal/api/dto"
	"github.com/spec-kit/aidrp-service/internal/auth"
	"github.com/spec-kit/aidrp-service/internal/service"
	apperrors "github.com/spec-kit/aidrp-service/pkg/util/errorutil"
)

// NotificationsHandler manages administrative notification endpoints.
type NotificationsHandler struct {
	service *service.NotificationService
}

// NewNotificationsHandler constructs handler.
func NewNotificationsHandler(notificationService *service.NotificationService) *NotificationsHandler {
	return &NotificationsHandler{service: notificationService}
}

// Create POST /admin/notifications.
func (h *NotificationsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("could not validate credentials")
	}
	var req dto.NotificationCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Message) == "" || strings.TrimSpace(req.Recipient) == "" {
		return apperrors.NewValidationError("title, message, recipient required", nil)
	}

	notification, err := h.service.Create(c.Context(), principal.User.ID, req.Recipient, req.Title, req.Message)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewNotificationResponse(notification)})
}

// List GET /admin/notifications.
func (h *NotificationsHandler) List(c *fiber.Ctx) error {
	notifications, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		items = append(items, dto.NewNotificationResponse(&notifications[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Delete DELETE /admin/notifications/:id.
func (h *NotificationsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "notification deleted"}})
}
