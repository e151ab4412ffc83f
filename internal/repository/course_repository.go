package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/aidrp-service/internal/domain"
)

// CourseRepository manages course persistence.
type CourseRepository interface {
	Create(ctx context.Context, course *domain.Course) error
	Update(ctx context.Context, course *domain.Course) error
	GetByID(ctx context.Context, id string) (*domain.Course, error)
	List(ctx context.Context, limit, offset int) ([]domain.Course, error)
	Delete(ctx context.Context, id string) error
}

type courseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository builds the repository.
func NewCourseRepository(pool *pgxpool.Pool) CourseRepository {
	return &courseRepository{pool: pool}
}

func (r *courseRepository) Create(ctx context.Context, course *domain.Course) error {
	const query = `
        INSERT INTO courses (title, description)
        VALUES ($1,$2)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		course.Title,
		course.Description,
	).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
}

func (r *courseRepository) Update(ctx context.Context, course *domain.Course) error {
	const query = `
        UPDATE courses SET title=$1, description=$2, updated_at=NOW()
        WHERE id=$3`
	cmd, err := r.pool.Exec(ctx, query,
		course.Title,
		course.Description,
		course.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *courseRepository) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	const query = `
        SELECT id, title, description, created_at, updated_at
        FROM courses WHERE id=$1`
	var course domain.Course
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.CreatedAt,
		&course.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) List(ctx context.Context, limit, offset int) ([]domain.Course, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
        SELECT id, title, description, created_at, updated_at
        FROM courses ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Course
	for rows.Next() {
		var course domain.Course
		if err := rows.Scan(&course.ID, &course.Title, &course.Description, &course.CreatedAt, &course.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, course)
	}
	return result, rows.Err()
}

func (r *courseRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM courses WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
