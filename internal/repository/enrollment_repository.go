package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/aidrp-service/internal/domain"
	apperrors "github.com/spec-kit/aidrp-service/pkg/util/errorutil"
)

// EnrolledCourse joins an enrollment with its course for listing.
type EnrolledCourse struct {
	Enrollment domain.Enrollment
	Course     domain.Course
}

// EnrollmentRepository manages enrollment persistence.
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *domain.Enrollment) error
	Get(ctx context.Context, userID, courseID string) (*domain.Enrollment, error)
	ListByUser(ctx context.Context, userID string) ([]EnrolledCourse, error)
}

type enrollmentRepository struct {
	pool *pgxpool.Pool
}

// NewEnrollmentRepository builds the repository.
func NewEnrollmentRepository(pool *pgxpool.Pool) EnrollmentRepository {
	return &enrollmentRepository{pool: pool}
}

func (r *enrollmentRepository) Create(ctx context.Context, enrollment *domain.Enrollment) error {
	const query = `
        INSERT INTO enrollments (user_id, course_id, progress)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`
	err := r.pool.QueryRow(ctx, query,
		enrollment.UserID,
		enrollment.CourseID,
		enrollment.Progress,
	).Scan(&enrollment.ID, &enrollment.CreatedAt)
	if isUniqueViolation(err) {
		return apperrors.NewConflict("already enrolled in this course", nil)
	}
	return err
}

func (r *enrollmentRepository) Get(ctx context.Context, userID, courseID string) (*domain.Enrollment, error) {
	const query = `
        SELECT id, user_id, course_id, progress, created_at
        FROM enrollments WHERE user_id=$1 AND course_id=$2`
	var enrollment domain.Enrollment
	if err := r.pool.QueryRow(ctx, query, userID, courseID).Scan(
		&enrollment.ID,
		&enrollment.UserID,
		&enrollment.CourseID,
		&enrollment.Progress,
		&enrollment.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *enrollmentRepository) ListByUser(ctx context.Context, userID string) ([]EnrolledCourse, error) {
	const query = `
        SELECT e.id, e.user_id, e.course_id, e.progress, e.created_at,
               c.id, c.title, c.description, c.created_at, c.updated_at
        FROM enrollments e
        JOIN courses c ON c.id = e.course_id
        WHERE e.user_id=$1 ORDER BY e.created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []EnrolledCourse
	for rows.Next() {
		var item EnrolledCourse
		if err := rows.Scan(
			&item.Enrollment.ID,
			&item.Enrollment.UserID,
			&item.Enrollment.CourseID,
			&item.Enrollment.Progress,
			&item.Enrollment.CreatedAt,
			&item.Course.ID,
			&item.Course.Title,
			&item.Course.Description,
			&item.Course.CreatedAt,
			&item.Course.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}
