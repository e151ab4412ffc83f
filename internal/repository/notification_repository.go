package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/aidrp-service/internal/domain"
)

// NotificationRepository manages notification persistence.
type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) error
	GetByID(ctx context.Context, id string) (*domain.Notification, error)
	List(ctx context.Context) ([]domain.Notification, error)
	MarkSent(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type notificationRepository struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository builds the repository.
func NewNotificationRepository(pool *pgxpool.Pool) NotificationRepository {
	return &notificationRepository{pool: pool}
}

func (r *notificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	const query = `
        INSERT INTO notifications (title, message, target_user_id, created_by, sent)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		notification.Title,
		notification.Message,
		notification.TargetUserID,
		notification.CreatedBy,
		notification.Sent,
	).Scan(&notification.ID, &notification.CreatedAt)
}

func (r *notificationRepository) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	const query = `
        SELECT id, title, message, target_user_id, created_by, sent, created_at
        FROM notifications WHERE id=$1`
	var notification domain.Notification
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&notification.ID,
		&notification.Title,
		&notification.Message,
		&notification.TargetUserID,
		&notification.CreatedBy,
		&notification.Sent,
		&notification.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) List(ctx context.Context) ([]domain.Notification, error) {
	const query = `
        SELECT id, title, message, target_user_id, created_by, sent, created_at
        FROM notifications ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Notification
	for rows.Next() {
		var notification domain.Notification
		if err := rows.Scan(
			&notification.ID,
			&notification.Title,
			&notification.Message,
			&notification.TargetUserID,
			&notification.CreatedBy,
			&notification.Sent,
			&notification.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, notification)
	}
	return result, rows.Err()
}

func (r *notificationRepository) MarkSent(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE notifications SET sent=TRUE WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *notificationRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM notifications WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
