package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/aidrp-service/internal/api/dto"
	"github.com/spec-kit/aidrp-service/internal/auth"
	"github.com/spec-kit/aidrp-service/internal/service"
	apperrors "github.com/spec-kit/aidrp-service/pkg/util/errorutil"
)

// CoursesHandler manages the course catalog and enrollments.
type CoursesHandler struct {
	service *service.CourseService
}

// NewCoursesHandler constructs handler.
func NewCoursesHandler(courseService *service.CourseService) *CoursesHandler {
	return &CoursesHandler{service: courseService}
}

// List GET /courses.
func (h *CoursesHandler) List(c *fiber.Ctx) error {
	limit := parseIntQuery(c.Query("limit"), 0)
	offset := parseIntQuery(c.Query("offset"), 0)
	courses, err := h.service.ListCourses(c.Context(), limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		items = append(items, dto.NewCourseResponse(&courses[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Create POST /courses.
func (h *CoursesHandler) Create(c *fiber.Ctx) error {
	var req dto.CourseCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Title) == "" {
		return apperrors.NewValidationError("title required", nil)
	}

	course, err := h.service.CreateCourse(c.Context(), req.Title, req.Description)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewCourseResponse(course)})
}

// Update PUT /courses/:id.
func (h *CoursesHandler) Update(c *fiber.Ctx) error {
	var req dto.CourseCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Title) == "" {
		return apperrors.NewValidationError("title required", nil)
	}

	course, err := h.service.UpdateCourse(c.Context(), c.Params("id"), req.Title, req.Description)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCourseResponse(course)})
}

// Delete DELETE /courses/:id.
func (h *CoursesHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.DeleteCourse(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "course deleted"}})
}

// AddModule POST /courses/:id/modules.
func (h *CoursesHandler) AddModule(c *fiber.Ctx) error {
	var req dto.ModuleCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Title) == "" {
		return apperrors.NewValidationError("title required", nil)
	}

	module, err := h.service.AddModule(c.Context(), c.Params("id"), req.Title, req.Content)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewModuleResponse(module)})
}

// Enroll POST /courses/:id/enroll.
func (h *CoursesHandler) Enroll(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("could not validate credentials")
	}
	enrollment, err := h.service.Enroll(c.Context(), principal.User.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewEnrollmentResponse(enrollment)})
}

// Enrolled GET /courses/enrolled.
func (h *CoursesHandler) Enrolled(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("could not validate credentials")
	}
	items, err := h.service.ListEnrolledCourses(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewEnrolledCoursesResponse(principal.User.ID, items)})
}
