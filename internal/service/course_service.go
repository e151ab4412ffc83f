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

// CourseService covers course, module and lesson management plus
// enrollments.
type CourseService struct {
	courses     repository.CourseRepository
	modules     repository.ModuleRepository
	lessons     repository.LessonRepository
	enrollments repository.EnrollmentRepository
	cache       CatalogCache
	dispatcher  events.Dispatcher
}

// CourseDependencies encapsulates repo requirements for the course service.
type CourseDependencies struct {
	CourseRepo     repository.CourseRepository
	ModuleRepo     repository.ModuleRepository
	LessonRepo     repository.LessonRepository
	EnrollmentRepo repository.EnrollmentRepository
	Cache          CatalogCache
	Dispatcher     events.Dispatcher
}

// NewCourseService builds the service.
func NewCourseService(deps CourseDependencies) *CourseService {
	return &CourseService{
		courses:     deps.CourseRepo,
		modules:     deps.ModuleRepo,
		lessons:     deps.LessonRepo,
		enrollments: deps.EnrollmentRepo,
		cache:       deps.Cache,
		dispatcher:  deps.Dispatcher,
	}
}

// ListCourses returns the catalog. The default window (no offset, no
// explicit limit) is served from the Redis cache when warm.
func (s *CourseService) ListCourses(ctx context.Context, limit, offset int) ([]domain.Course, error) {
	cacheable := limit <= 0 && offset <= 0
	if cacheable && s.cache != nil {
		if courses, ok := s.cache.Get(ctx); ok {
			return courses, nil
		}
	}

	courses, err := s.courses.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	if cacheable && s.cache != nil {
		s.cache.Set(ctx, courses)
	}
	return courses, nil
}

// CreateCourse stores a new course and invalidates the catalog cache.
func (s *CourseService) CreateCourse(ctx context.Context, title string, description *string) (*domain.Course, error) {
	course := &domain.Course{Title: title, Description: description}
	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return course, nil
}

// UpdateCourse replaces title and description.
func (s *CourseService) UpdateCourse(ctx context.Context, id, title string, description *string) (*domain.Course, error) {
	course, err := s.getCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	course.Title = title
	course.Description = description
	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return course, nil
}

// DeleteCourse removes a course; modules, lessons and enrollments cascade
// in the database.
func (s *CourseService) DeleteCourse(ctx context.Context, id string) error {
	if err := s.courses.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("course", nil)
		}
		return err
	}
	s.invalidate(ctx)
	return nil
}

// AddModule attaches a module to an existing course.
func (s *CourseService) AddModule(ctx context.Context, courseID, title string, content *string) (*domain.Module, error) {
	if _, err := s.getCourse(ctx, courseID); err != nil {
		return nil, err
	}
	module := &domain.Module{CourseID: courseID, Title: title, Content: content}
	if err := s.modules.Create(ctx, module); err != nil {
		return nil, err
	}
	return module, nil
}

// AddLesson attaches a lesson to an existing module.
func (s *CourseService) AddLesson(ctx context.Context, moduleID, title string, description, videoURL *string) (*domain.Lesson, error) {
	if _, err := s.modules.GetByID(ctx, moduleID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("module", nil)
		}
		return nil, err
	}
	lesson := &domain.Lesson{ModuleID: moduleID, Title: title, Description: description, VideoURL: videoURL}
	if err := s.lessons.Create(ctx, lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

// ListLessons returns lessons for one module.
func (s *CourseService) ListLessons(ctx context.Context, moduleID string) ([]domain.Lesson, error) {
	lessons, err := s.lessons.ListByModule(ctx, moduleID)
	if err != nil {
		return nil, err
	}
	if len(lessons) == 0 {
		return nil, apperrors.NewNotFound("lessons for module", nil)
	}
	return lessons, nil
}

// Enroll registers a user on a course. Double enrollment is a conflict.
func (s *CourseService) Enroll(ctx context.Context, userID, courseID string) (*domain.Enrollment, error) {
	course, err := s.getCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if _, err := s.enrollments.Get(ctx, userID, courseID); err == nil {
		return nil, apperrors.NewConflict("already enrolled in this course", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	enrollment := &domain.Enrollment{UserID: userID, CourseID: courseID, Progress: 0}
	if err := s.enrollments.Create(ctx, enrollment); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventUserEnrolled,
		ActorID:   userID,
		Timestamp: time.Now(),
		Payload: events.UserEnrolledPayload{
			EnrollmentID: enrollment.ID,
			UserID:       userID,
			CourseID:     courseID,
			CourseTitle:  course.Title,
		},
	})
	return enrollment, nil
}

// ListEnrolledCourses returns the courses the user is enrolled in.
func (s *CourseService) ListEnrolledCourses(ctx context.Context, userID string) ([]repository.EnrolledCourse, error) {
	return s.enrollments.ListByUser(ctx, userID)
}

func (s *CourseService) getCourse(ctx context.Context, id string) (*domain.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("course", nil)
		}
		return nil, err
	}
	return course, nil
}

func (s *CourseService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
