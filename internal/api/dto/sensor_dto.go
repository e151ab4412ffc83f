package dto

import (
	"time"

	"github.com/spec-kit/aidrp-service/internal/domain"
)

// SensorCreateRequest payload for registering a sensor.
type SensorCreateRequest struct {
	Type     string `json:"type"`
	Location string `json:"location"`
}

// SensorResponse is the public view of a sensor.
type SensorResponse struct {
	ID             string     `json:"id"`
	Type           string     `json:"type"`
	Location       string     `json:"location"`
	Status         string     `json:"status"`
	LastReportedAt *time.Time `json:"last_reported_at"`
}

// NewSensorResponse maps a domain sensor.
func NewSensorResponse(sensor *domain.Sensor) SensorResponse {
	return SensorResponse{
		ID:             sensor.ID,
		Type:           sensor.Type,
		Location:       sensor.Location,
		Status:         string(sensor.Status),
		LastReportedAt: sensor.LastReportedAt,
	}
}
