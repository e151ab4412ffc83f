package domain

import "time"

// SensorStatus represents lifecycle states for a sensor.
type SensorStatus string

const (
	SensorStatusActive   SensorStatus = "ACTIVE"
	SensorStatusInactive SensorStatus = "INACTIVE"
)

// Sensor is a monitoring device reporting from a location.
type Sensor struct {
	ID             string
	Type           string
	Location       string
	Status         SensorStatus
	LastReportedAt *time.Time
}
