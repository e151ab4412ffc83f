package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/aidrp-service/internal/domain"
)

// SensorRepository manages sensor persistence.
type SensorRepository interface {
	Create(ctx context.Context, sensor *domain.Sensor) error
	Update(ctx context.Context, sensor *domain.Sensor) error
	GetByID(ctx context.Context, id string) (*domain.Sensor, error)
	List(ctx context.Context) ([]domain.Sensor, error)
	Delete(ctx context.Context, id string) error
}

type sensorRepository struct {
	pool *pgxpool.Pool
}

// NewSensorRepository builds the repository.
func NewSensorRepository(pool *pgxpool.Pool) SensorRepository {
	return &sensorRepository{pool: pool}
}

func (r *sensorRepository) Create(ctx context.Context, sensor *domain.Sensor) error {
	const query = `
        INSERT INTO sensors (type, location, status, last_reported_at)
        VALUES ($1,$2,$3,$4)
        RETURNING id`
	return r.pool.QueryRow(ctx, query,
		sensor.Type,
		sensor.Location,
		sensor.Status,
		sensor.LastReportedAt,
	).Scan(&sensor.ID)
}

func (r *sensorRepository) Update(ctx context.Context, sensor *domain.Sensor) error {
	const query = `
        UPDATE sensors SET type=$1, location=$2, status=$3, last_reported_at=$4
        WHERE id=$5`
	cmd, err := r.pool.Exec(ctx, query,
		sensor.Type,
		sensor.Location,
		sensor.Status,
		sensor.LastReportedAt,
		sensor.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *sensorRepository) GetByID(ctx context.Context, id string) (*domain.Sensor, error) {
	const query = `
        SELECT id, type, location, status, last_reported_at
        FROM sensors WHERE id=$1`
	var sensor domain.Sensor
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&sensor.ID,
		&sensor.Type,
		&sensor.Location,
		&sensor.Status,
		&sensor.LastReportedAt,
	); err != nil {
		return nil, err
	}
	return &sensor, nil
}

func (r *sensorRepository) List(ctx context.Context) ([]domain.Sensor, error) {
	const query = `
        SELECT id, type, location, status, last_reported_at
        FROM sensors ORDER BY location`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Sensor
	for rows.Next() {
		var sensor domain.Sensor
		if err := rows.Scan(&sensor.ID, &sensor.Type, &sensor.Location, &sensor.Status, &sensor.LastReportedAt); err != nil {
			return nil, err
		}
		result = append(result, sensor)
	}
	return result, rows.Err()
}

func (r *sensorRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM sensors WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
