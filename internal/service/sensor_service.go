package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/aidrp-service/internal/domain"
	"github.com/spec-kit/aidrp-service/internal/repository"
	apperrors "github.com/spec-kit/aidrp-service/pkg/util/errorutil"
)

// SensorService manages sensor records.
type SensorService struct {
	sensors repository.SensorRepository
}

// NewSensorService builds the service.
func NewSensorService(sensors repository.SensorRepository) *SensorService {
	return &SensorService{sensors: sensors}
}

// Create registers a sensor. New sensors start active with a fresh
// heartbeat.
func (s *SensorService) Create(ctx context.Context, sensorType, location string) (*domain.Sensor, error) {
	now := time.Now()
	sensor := &domain.Sensor{
		Type:           sensorType,
		Location:       location,
		Status:         domain.SensorStatusActive,
		LastReportedAt: &now,
	}
	if err := s.sensors.Create(ctx, sensor); err != nil {
		return nil, err
	}
	return sensor, nil
}

// List returns every sensor.
func (s *SensorService) List(ctx context.Context) ([]domain.Sensor, error) {
	return s.sensors.List(ctx)
}

// Get fetches a single sensor.
func (s *SensorService) Get(ctx context.Context, id string) (*domain.Sensor, error) {
	sensor, err := s.sensors.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("sensor", nil)
		}
		return nil, err
	}
	return sensor, nil
}

// Heartbeat records that a sensor reported in and reactivates it.
func (s *SensorService) Heartbeat(ctx context.Context, id string) (*domain.Sensor, error) {
	sensor, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	sensor.LastReportedAt = &now
	sensor.Status = domain.SensorStatusActive
	if err := s.sensors.Update(ctx, sensor); err != nil {
		return nil, err
	}
	return sensor, nil
}

// Delete removes a sensor.
func (s *SensorService) Delete(ctx context.Context, id string) error {
	if err := s.sensors.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("sensor", nil)
		}
		return err
	}
	return nil
}
