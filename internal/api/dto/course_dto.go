package dto

import (
	"time"

	"github.com/spec-kit/aidrp-service/internal/domain"
	"github.com/spec-kit/aidrp-service/internal/repository"
)

// CourseCreateRequest payload for creating or updating a course.
type CourseCreateRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// ModuleCreateRequest payload for adding a module to a course.
type ModuleCreateRequest struct {
	Title   string  `json:"title"`
	Content *string `json:"content"`
}

// LessonCreateRequest payload for adding a lesson to a module.
type LessonCreateRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	VideoURL    *string `json:"video_url"`
}

// CourseResponse is the public view of a course.
type CourseResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// ModuleResponse is the public view of a module.
type ModuleResponse struct {
	ID        string    `json:"id"`
	CourseID  string    `json:"course_id"`
	Title     string    `json:"title"`
	Content   *string   `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// LessonResponse is the public view of a lesson.
type LessonResponse struct {
	ID          string    `json:"id"`
	ModuleID    string    `json:"module_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	VideoURL    *string   `json:"video_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// EnrollmentResponse is returned after enrolling.
type EnrollmentResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CourseID  string    `json:"course_id"`
	Progress  int       `json:"progress"`
	CreatedAt time.Time `json:"created_at"`
}

// EnrolledCourseResponse pairs an enrollment with its course.
type EnrolledCourseResponse struct {
	CourseID    string  `json:"course_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Progress    int     `json:"progress"`
}

// EnrolledCoursesResponse lists the caller's enrollments.
type EnrolledCoursesResponse struct {
	UserID          string                   `json:"user_id"`
	EnrolledCourses []EnrolledCourseResponse `json:"enrolled_courses"`
}

// NewCourseResponse maps a domain course.
func NewCourseResponse(course *domain.Course) CourseResponse {
	return CourseResponse{
		ID:          course.ID,
		Title:       course.Title,
		Description: course.Description,
		CreatedAt:   course.CreatedAt,
	}
}

// NewModuleResponse maps a domain module.
func NewModuleResponse(module *domain.Module) ModuleResponse {
	return ModuleResponse{
		ID:        module.ID,
		CourseID:  module.CourseID,
		Title:     module.Title,
		Content:   module.Content,
		CreatedAt: module.CreatedAt,
	}
}

// NewLessonResponse maps a domain lesson.
func NewLessonResponse(lesson *domain.Lesson) LessonResponse {
	return LessonResponse{
		ID:          lesson.ID,
		ModuleID:    lesson.ModuleID,
		Title:       lesson.Title,
		Description: lesson.Description,
		VideoURL:    lesson.VideoURL,
		CreatedAt:   lesson.CreatedAt,
	}
}

// NewEnrollmentResponse maps a domain enrollment.
func NewEnrollmentResponse(enrollment *domain.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:        enrollment.ID,
		UserID:    enrollment.UserID,
		CourseID:  enrollment.CourseID,
		Progress:  enrollment.Progress,
		CreatedAt: enrollment.CreatedAt,
	}
}

// NewEnrolledCoursesResponse maps an enrollment listing.
func NewEnrolledCoursesResponse(userID string, items []repository.EnrolledCourse) EnrolledCoursesResponse {
	courses := make([]EnrolledCourseResponse, 0, len(items))
	for _, item := range items {
		courses = append(courses, EnrolledCourseResponse{
			CourseID:    item.Course.ID,
			Title:       item.Course.Title,
			Description: item.Course.Description,
			Progress:    item.Enrollment.Progress,
		})
	}
	return EnrolledCoursesResponse{UserID: userID, EnrolledCourses: courses}
}
