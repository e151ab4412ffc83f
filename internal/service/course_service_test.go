package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/aidrp-service/internal/domain"
	"github.com/spec-kit/aidrp-service/internal/events"
	"github.com/spec-kit/aidrp-service/internal/repository"
	apperrors "github.com/spec-kit/aidrp-service/pkg/util/errorutil"
)

type fakeCourseRepo struct {
	seq       int
	courses   map[string]*domain.Course
	listCalls int
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: map[string]*domain.Course{}}
}

func (f *fakeCourseRepo) Create(_ context.Context, course *domain.Course) error {
	f.seq++
	course.ID = fmt.Sprintf("course-%d", f.seq)
	stored := *course
	f.courses[course.ID] = &stored
	return nil
}

func (f *fakeCourseRepo) Update(_ context.Context, course *domain.Course) error {
	if _, ok := f.courses[course.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *course
	f.courses[course.ID] = &stored
	return nil
}

func (f *fakeCourseRepo) GetByID(_ context.Context, id string) (*domain.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *course
	return &clone, nil
}

func (f *fakeCourseRepo) List(_ context.Context, _, _ int) ([]domain.Course, error) {
	f.listCalls++
	out := make([]domain.Course, 0, len(f.courses))
	for _, course := range f.courses {
		out = append(out, *course)
	}
	return out, nil
}

func (f *fakeCourseRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.courses[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.courses, id)
	return nil
}

type fakeModuleRepo struct {
	seq     int
	modules map[string]*domain.Module
}

func newFakeModuleRepo() *fakeModuleRepo {
	return &fakeModuleRepo{modules: map[string]*domain.Module{}}
}

func (f *fakeModuleRepo) Create(_ context.Context, module *domain.Module) error {
	f.seq++
	module.ID = fmt.Sprintf("module-%d", f.seq)
	stored := *module
	f.modules[module.ID] = &stored
	return nil
}

func (f *fakeModuleRepo) Update(_ context.Context, module *domain.Module) error {
	if _, ok := f.modules[module.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *module
	f.modules[module.ID] = &stored
	return nil
}

func (f *fakeModuleRepo) GetByID(_ context.Context, id string) (*domain.Module, error) {
	module, ok := f.modules[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *module
	return &clone, nil
}

func (f *fakeModuleRepo) ListByCourse(_ context.Context, courseID string) ([]domain.Module, error) {
	out := []domain.Module{}
	for _, module := range f.modules {
		if module.CourseID == courseID {
			out = append(out, *module)
		}
	}
	return out, nil
}

func (f *fakeModuleRepo) Delete(_ context.Context, id string) error {
	delete(f.modules, id)
	return nil
}

type fakeLessonRepo struct {
	seq     int
	lessons []domain.Lesson
}

func (f *fakeLessonRepo) Create(_ context.Context, lesson *domain.Lesson) error {
	f.seq++
	lesson.ID = fmt.Sprintf("lesson-%d", f.seq)
	f.lessons = append(f.lessons, *lesson)
	return nil
}

func (f *fakeLessonRepo) ListByModule(_ context.Context, moduleID string) ([]domain.Lesson, error) {
	out := []domain.Lesson{}
	for _, lesson := range f.lessons {
		if lesson.ModuleID == moduleID {
			out = append(out, lesson)
		}
	}
	return out, nil
}

type fakeEnrollmentRepo struct {
	seq         int
	enrollments []domain.Enrollment
}

func (f *fakeEnrollmentRepo) Create(_ context.Context, enrollment *domain.Enrollment) error {
	for _, existing := range f.enrollments {
		if existing.UserID == enrollment.UserID && existing.CourseID == enrollment.CourseID {
			return apperrors.NewConflict("already enrolled in this course", nil)
		}
	}
	f.seq++
	enrollment.ID = fmt.Sprintf("enrollment-%d", f.seq)
	f.enrollments = append(f.enrollments, *enrollment)
	return nil
}

func (f *fakeEnrollmentRepo) Get(_ context.Context, userID, courseID string) (*domain.Enrollment, error) {
	for _, existing := range f.enrollments {
		if existing.UserID == userID && existing.CourseID == courseID {
			clone := existing
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeEnrollmentRepo) ListByUser(_ context.Context, userID string) ([]repository.EnrolledCourse, error) {
	out := []repository.EnrolledCourse{}
	for _, existing := range f.enrollments {
		if existing.UserID == userID {
			out = append(out, repository.EnrolledCourse{Enrollment: existing})
		}
	}
	return out, nil
}

type fakeCatalogCache struct {
	courses     []domain.Course
	warm        bool
	sets        int
	invalidates int
}

func (f *fakeCatalogCache) Get(context.Context) ([]domain.Course, bool) {
	if !f.warm {
		return nil, false
	}
	return f.courses, true
}

func (f *fakeCatalogCache) Set(_ context.Context, courses []domain.Course) {
	f.courses = courses
	f.warm = true
	f.sets++
}

func (f *fakeCatalogCache) Invalidate(context.Context) {
	f.courses = nil
	f.warm = false
	f.invalidates++
}

type recordingDispatcher struct {
	published []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func newCourseFixture() (*CourseService, *fakeCourseRepo, *fakeModuleRepo, *fakeCatalogCache, *recordingDispatcher) {
	courses := newFakeCourseRepo()
	modules := newFakeModuleRepo()
	cache := &fakeCatalogCache{}
	dispatcher := &recordingDispatcher{}
	svc := NewCourseService(CourseDependencies{
		CourseRepo:     courses,
		ModuleRepo:     modules,
		LessonRepo:     &fakeLessonRepo{},
		EnrollmentRepo: &fakeEnrollmentRepo{},
		Cache:          cache,
		Dispatcher:     dispatcher,
	})
	return svc, courses, modules, cache, dispatcher
}

func TestListCoursesWarmsAndServesCache(t *testing.T) {
	t.Parallel()

	svc, courses, _, cache, _ := newCourseFixture()
	ctx := context.Background()

	_, err := svc.CreateCourse(ctx, "Flood Response Basics", nil)
	require.NoError(t, err)

	first, err := svc.ListCourses(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, first, 1)
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, 1, courses.listCalls)

	// Second default-window read is served from cache.
	second, err := svc.ListCourses(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, second, 1)
	assert.Equal(t, 1, courses.listCalls)
}

func TestListCoursesPagedSkipsCache(t *testing.T) {
	t.Parallel()

	svc, courses, _, cache, _ := newCourseFixture()
	ctx := context.Background()

	cache.Set(ctx, []domain.Course{{ID: "stale"}})

	_, err := svc.ListCourses(ctx, 10, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, courses.listCalls)
}

func TestCourseWritesInvalidateCache(t *testing.T) {
	t.Parallel()

	svc, _, _, cache, _ := newCourseFixture()
	ctx := context.Background()

	course, err := svc.CreateCourse(ctx, "Earthquake Drill", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.invalidates)

	_, err = svc.UpdateCourse(ctx, course.ID, "Earthquake Drill v2", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, cache.invalidates)

	require.NoError(t, svc.DeleteCourse(ctx, course.ID))
	assert.Equal(t, 3, cache.invalidates)
}

func TestAddModuleRequiresCourse(t *testing.T) {
	t.Parallel()

	svc, _, _, _, _ := newCourseFixture()
	_, err := svc.AddModule(context.Background(), "missing-course", "Module 1", nil)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestAddLessonRequiresModule(t *testing.T) {
	t.Parallel()

	svc, _, _, _, _ := newCourseFixture()
	_, err := svc.AddLesson(context.Background(), "missing-module", "Lesson 1", nil, nil)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestListLessonsEmptyModuleIsNotFound(t *testing.T) {
	t.Parallel()

	svc, _, _, _, _ := newCourseFixture()
	ctx := context.Background()

	course, err := svc.CreateCourse(ctx, "Course", nil)
	require.NoError(t, err)
	module, err := svc.AddModule(ctx, course.ID, "Module", nil)
	require.NoError(t, err)

	_, err = svc.ListLessons(ctx, module.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)

	_, err = svc.AddLesson(ctx, module.ID, "Lesson", nil, nil)
	require.NoError(t, err)

	lessons, err := svc.ListLessons(ctx, module.ID)
	require.NoError(t, err)
	assert.Len(t, lessons, 1)
}

func TestEnrollOnceThenConflict(t *testing.T) {
	t.Parallel()

	svc, _, _, _, dispatcher := newCourseFixture()
	ctx := context.Background()

	course, err := svc.CreateCourse(ctx, "Wildfire Awareness", nil)
	require.NoError(t, err)

	enrollment, err := svc.Enroll(ctx, "user-1", course.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, enrollment.Progress)

	require.Len(t, dispatcher.published, 1)
	assert.Equal(t, events.EventUserEnrolled, dispatcher.published[0].Type)
	payload, ok := dispatcher.published[0].Payload.(events.UserEnrolledPayload)
	require.True(t, ok)
	assert.Equal(t, course.ID, payload.CourseID)
	assert.Equal(t, "Wildfire Awareness", payload.CourseTitle)

	_, err = svc.Enroll(ctx, "user-1", course.ID)
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)
	assert.Len(t, dispatcher.published, 1)
}

func TestEnrollUnknownCourse(t *testing.T) {
	t.Parallel()

	svc, _, _, _, _ := newCourseFixture()
	_, err := svc.Enroll(context.Background(), "user-1", "missing")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}
