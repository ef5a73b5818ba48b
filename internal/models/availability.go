package models

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityRecord represents a declared block of availability: the owning
// employee can work between StartTime and EndTime on Date. An employee may
// have any number of records per date; overlap is not prevented.
type AvailabilityRecord struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Date      time.Time `json:"date" db:"date"`
	StartTime string    `json:"start_time" db:"start_time"`
	EndTime   string    `json:"end_time" db:"end_time"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreateAvailabilityRequest represents the request to declare availability
type CreateAvailabilityRequest struct {
	Date      string `json:"date" binding:"required"`       // Format: YYYY-MM-DD
	StartTime string `json:"start_time" binding:"required"` // Format: HH:MM
	EndTime   string `json:"end_time" binding:"required"`   // Format: HH:MM
}

// UpdateAvailabilityRequest updates the time window of an existing record
type UpdateAvailabilityRequest struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}
