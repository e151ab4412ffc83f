package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/aidrp-service/internal/api/dto"
	"github.com/spec-kit/aidrp-service/internal/service"
	apperrors "github.com/spec-kit/aidrp-service/pkg/util/errorutil"
)

// LessonsHandler manages lesson endpoints scoped to a module.
type LessonsHandler struct {
	service *service.CourseService
}

// NewLessonsHandler constructs handler.
func NewLessonsHandler(courseService *service.CourseService) *LessonsHandler {
	return &LessonsHandler{service: courseService}
}

// Create POST /lessons/modules/:moduleID.
func (h *LessonsHandler) Create(c *fiber.Ctx) error {
	var req dto.LessonCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Title) == "" {
		return apperrors.NewValidationError("title required", nil)
	}

	lesson, err := h.service.AddLesson(c.Context(), c.Params("moduleID"), req.Title, req.Description, req.VideoURL)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewLessonResponse(lesson)})
}

// List GET /lessons/modules/:moduleID.
func (h *LessonsHandler) List(c *fiber.Ctx) error {
	lessons, err := h.service.ListLessons(c.Context(), c.Params("moduleID"))
	if err != nil {
		return err
	}
	items := make([]dto.LessonResponse, 0, len(lessons))
	for i := range lessons {
		items = append(items, dto.NewLessonResponse(&lessons[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}
