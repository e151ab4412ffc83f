package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/aidrp-service/internal/domain"
)

// IncidentFilter captures incident search parameters.
type IncidentFilter struct {
	Severity   *domain.IncidentSeverity
	AssignedTo *string
	Location   *string
	Limit      int
	Offset     int
}

// IncidentRepository encapsulates incident persistence.
type IncidentRepository interface {
	Create(ctx context.Context, incident *domain.Incident) error
	Update(ctx context.Context, incident *domain.Incident) error
	GetByID(ctx context.Context, id string) (*domain.Incident, error)
	List(ctx context.Context, filter IncidentFilter) ([]domain.Incident, error)
	Delete(ctx context.Context, id string) error
}

type incidentRepository struct {
	pool *pgxpool.Pool
}

// NewIncidentRepository instantiates repository.
func NewIncidentRepository(pool *pgxpool.Pool) IncidentRepository {
	return &incidentRepository{pool: pool}
}

func (r *incidentRepository) Create(ctx context.Context, incident *domain.Incident) error {
	const query = `
        INSERT INTO incidents (title, description, severity, location, assigned_to)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, reported_at`
	return r.pool.QueryRow(ctx, query,
		incident.Title,
		incident.Description,
		incident.Severity,
		incident.Location,
		incident.AssignedTo,
	).Scan(&incident.ID, &incident.ReportedAt)
}

func (r *incidentRepository) Update(ctx context.Context, incident *domain.Incident) error {
	const query = `
        UPDATE incidents SET title=$1, description=$2, severity=$3, location=$4, assigned_to=$5
        WHERE id=$6`
	cmd, err := r.pool.Exec(ctx, query,
		incident.Title,
		incident.Description,
		incident.Severity,
		incident.Location,
		incident.AssignedTo,
		incident.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *incidentRepository) GetByID(ctx context.Context, id string) (*domain.Incident, error) {
	const query = `
        SELECT id, title, description, severity, location, assigned_to, reported_at
        FROM incidents WHERE id=$1`
	var incident domain.Incident
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&incident.ID,
		&incident.Title,
		&incident.Description,
		&incident.Severity,
		&incident.Location,
		&incident.AssignedTo,
		&incident.ReportedAt,
	); err != nil {
		return nil, err
	}
	return &incident, nil
}

func (r *incidentRepository) List(ctx context.Context, filter IncidentFilter) ([]domain.Incident, error) {
	base := `SELECT id, title, description, severity, location, assigned_to, reported_at
             FROM incidents`
	clauses := []string{"1=1"}
	args := []any{}

	if filter.Severity != nil {
		args = append(args, *filter.Severity)
		clauses = append(clauses, fmt.Sprintf("severity=$%d", len(args)))
	}
	if filter.AssignedTo != nil {
		args = append(args, *filter.AssignedTo)
		clauses = append(clauses, fmt.Sprintf("assigned_to=$%d", len(args)))
	}
	if filter.Location != nil && strings.TrimSpace(*filter.Location) != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(*filter.Location)) + "%"
		args = append(args, search)
		clauses = append(clauses, fmt.Sprintf("LOWER(location) LIKE $%d", len(args)))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY reported_at DESC LIMIT %d OFFSET %d`,
		base, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Incident
	for rows.Next() {
		var incident domain.Incident
		if err := rows.Scan(
			&incident.ID,
			&incident.Title,
			&incident.Description,
			&incident.Severity,
			&incident.Location,
			&incident.AssignedTo,
			&incident.ReportedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, incident)
	}
	return result, rows.Err()
}

func (r *incidentRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM incidents WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
