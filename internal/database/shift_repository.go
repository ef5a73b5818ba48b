package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/shiftline/roster-backend/internal/models"
	"github.com/shiftline/roster-backend/internal/utils"
	"github.com/shiftline/roster-backend/pkg/apperrors"
)

// ShiftRepository handles the legacy version-less shifts table. The employee
// "my shifts" board reads from it; the versioned roster lives in
// roster_shifts.
type ShiftRepository struct {
	db DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// ListAll retrieves every shift, soonest first
func (r *ShiftRepository) ListAll() ([]models.Shift, error) {
	var shifts []models.Shift

	query := `
		SELECT id, user_id, date, start_time, end_time, created_by, created_at, updated_at
		FROM shifts
		ORDER BY date, start_time
	`

	if err := r.db.Select(&shifts, query); err != nil {
		return nil, apperrors.NewDataAccess("list shifts", err)
	}

	return shifts, nil
}

// ListByUser retrieves one employee's shifts, soonest first
func (r *ShiftRepository) ListByUser(userID uuid.UUID) ([]models.Shift, error) {
	var shifts []models.Shift

	query := `
		SELECT id, user_id, date, start_time, end_time, created_by, created_at, updated_at
		FROM shifts
		WHERE user_id = $1
		ORDER BY date, start_time
	`

	if err := r.db.Select(&shifts, query, userID); err != nil {
		return nil, apperrors.NewDataAccess("list shifts for user", err)
	}

	return shifts, nil
}

// Create inserts a new shift after validating the time window
func (r *ShiftRepository) Create(shift *models.Shift) error {
	if !utils.ValidClockTime(shift.StartTime) || !utils.ValidClockTime(shift.EndTime) {
		return apperrors.NewValidation("start_time and end_time must be HH:MM")
	}
	if shift.StartTime >= shift.EndTime {
		return apperrors.NewValidation("start_time must be before end_time")
	}

	if shift.ID == uuid.Nil {
		shift.ID = uuid.New()
	}
	now := time.Now()
	shift.CreatedAt = now
	shift.UpdatedAt = now

	query := `
		INSERT INTO shifts (id, user_id, date, start_time, end_time, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(
		query,
		shift.ID,
		shift.UserID,
		shift.Date,
		shift.StartTime,
		shift.EndTime,
		shift.CreatedBy,
		shift.CreatedAt,
		shift.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewDataAccess("create shift", err)
	}

	return nil
}

// Delete removes a shift. Missing rows are treated as already deleted.
func (r *ShiftRepository) Delete(id uuid.UUID) error {
	if _, err := r.db.Exec(`DELETE FROM shifts WHERE id = $1`, id); err != nil {
		return apperrors.NewDataAccess("delete shift", err)
	}
	return nil
}
