package models

import (
	"time"

	"github.com/google/uuid"
)

// Shift is a row in the legacy version-less shifts table. The employee
// "my shifts" board still reads it; roster-scoped shifts live in
// roster_shifts.
type Shift struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Date      time.Time `json:"date" db:"date"`
	StartTime string    `json:"start_time" db:"start_time"`
	EndTime   string    `json:"end_time" db:"end_time"`
	CreatedBy uuid.UUID `json:"created_by" db:"created_by"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreateShiftRequest represents the request to add a legacy shift
type CreateShiftRequest struct {
	UserID    uuid.UUID `json:"user_id" binding:"required"`
	Date      string    `json:"date" binding:"required"`       // Format: YYYY-MM-DD
	StartTime string    `json:"start_time" binding:"required"` // Format: HH:MM
	EndTime   string    `json:"end_time" binding:"required"`   // Format: HH:MM
}
