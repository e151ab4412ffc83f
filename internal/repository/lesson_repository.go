package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/aidrp-service/internal/domain"
)

// LessonRepository manages lesson persistence.
type LessonRepository interface {
	Create(ctx context.Context, lesson *domain.Lesson) error
	ListByModule(ctx context.Context, moduleID string) ([]domain.Lesson, error)
}

type lessonRepository struct {
	pool *pgxpool.Pool
}

// NewLessonRepository builds the repository.
func NewLessonRepository(pool *pgxpool.Pool) LessonRepository {
	return &lessonRepository{pool: pool}
}

func (r *lessonRepository) Create(ctx context.Context, lesson *domain.Lesson) error {
	const query = `
        INSERT INTO lessons (module_id, title, description, video_url)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		lesson.ModuleID,
		lesson.Title,
		lesson.Description,
		lesson.VideoURL,
	).Scan(&lesson.ID, &lesson.CreatedAt)
}

func (r *lessonRepository) ListByModule(ctx context.Context, moduleID string) ([]domain.Lesson, error) {
	const query = `
        SELECT id, module_id, title, description, video_url, created_at
        FROM lessons WHERE module_id=$1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, moduleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Lesson
	for rows.Next() {
		var lesson domain.Lesson
		if err := rows.Scan(&lesson.ID, &lesson.ModuleID, &lesson.Title, &lesson.Description, &lesson.VideoURL, &lesson.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, lesson)
	}
	return result, rows.Err()
}
