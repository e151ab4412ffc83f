package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/aidrp-service/internal/domain"
)

// ModuleRepository manages course-module persistence.
type ModuleRepository interface {
	Create(ctx context.Context, module *domain.Module) error
	Update(ctx context.Context, module *domain.Module) error
	GetByID(ctx context.Context, id string) (*domain.Module, error)
	ListByCourse(ctx context.Context, courseID string) ([]domain.Module, error)
	Delete(ctx context.Context, id string) error
}

type moduleRepository struct {
	pool *pgxpool.Pool
}

// NewModuleRepository builds the repository.
func NewModuleRepository(pool *pgxpool.Pool) ModuleRepository {
	return &moduleRepository{pool: pool}
}

func (r *moduleRepository) Create(ctx context.Context, module *domain.Module) error {
	const query = `
        INSERT INTO modules (course_id, title, content)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		module.CourseID,
		module.Title,
		module.Content,
	).Scan(&module.ID, &module.CreatedAt)
}

func (r *moduleRepository) Update(ctx context.Context, module *domain.Module) error {
	const query = `
        UPDATE modules SET title=$1, content=$2 WHERE id=$3`
	cmd, err := r.pool.Exec(ctx, query, module.Title, module.Content, module.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *moduleRepository) GetByID(ctx context.Context, id string) (*domain.Module, error) {
	const query = `
        SELECT id, course_id, title, content, created_at
        FROM modules WHERE id=$1`
	var module domain.Module
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&module.ID,
		&module.CourseID,
		&module.Title,
		&module.Content,
		&module.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &module, nil
}

func (r *moduleRepository) ListByCourse(ctx context.Context, courseID string) ([]domain.Module, error) {
	const query = `
        SELECT id, course_id, title, content, created_at
        FROM modules WHERE course_id=$1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Module
	for rows.Next() {
		var module domain.Module
		if err := rows.Scan(&module.ID, &module.CourseID, &module.Title, &module.Content, &module.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, module)
	}
	return result, rows.Err()
}

func (r *moduleRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM modules WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
