package database

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shiftline/roster-backend/internal/models"
	"github.com/shiftline/roster-backend/internal/utils"
	"github.com/shiftline/roster-backend/pkg/apperrors"
)

// AvailabilityRepository handles availability database operations
type AvailabilityRepository struct {
	db DB
}

// NewAvailabilityRepository creates a new availability repository
func NewAvailabilityRepository(db DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

// ListByUser retrieves all availability records for an employee
func (r *AvailabilityRepository) ListByUser(userID uuid.UUID) ([]models.AvailabilityRecord, error) {
	var records []models.AvailabilityRecord

	query := `
		SELECT id, user_id, date, start_time, end_time, created_at, updated_at
		FROM availability
		WHERE user_id = $1
		ORDER BY date, start_time
	`

	if err := r.db.Select(&records, query, userID); err != nil {
		return nil, apperrors.NewDataAccess("list availability", err)
	}

	return records, nil
}

// ListByUserAndRange retrieves an employee's availability records within a
// date range (inclusive on both ends)
func (r *AvailabilityRepository) ListByUserAndRange(userID uuid.UUID, startDate, endDate time.Time) ([]models.AvailabilityRecord, error) {
	var records []models.AvailabilityRecord

	query := `
		SELECT id, user_id, date, start_time, end_time, created_at, updated_at
		FROM availability
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date, start_time
	`

	if err := r.db.Select(&records, query, userID, startDate, endDate); err != nil {
		return nil, apperrors.NewDataAccess("list availability for range", err)
	}

	return records, nil
}

// ListByRange retrieves all employees' availability within a date range.
// Used by the manager availability table.
func (r *AvailabilityRepository) ListByRange(startDate, endDate time.Time) ([]models.AvailabilityRecord, error) {
	var records []models.AvailabilityRecord

	query := `
		SELECT id, user_id, date, start_time, end_time, created_at, updated_at
		FROM availability
		WHERE date BETWEEN $1 AND $2
		ORDER BY date, start_time
	`

	if err := r.db.Select(&records, query, startDate, endDate); err != nil {
		return nil, apperrors.NewDataAccess("list availability for range", err)
	}

	return records, nil
}

// GetByID retrieves a single availability record
func (r *AvailabilityRepository) GetByID(id uuid.UUID) (*models.AvailabilityRecord, error) {
	var record models.AvailabilityRecord

	query := `
		SELECT id, user_id, date, start_time, end_time, created_at, updated_at
		FROM availability
		WHERE id = $1
	`

	err := r.db.Get(&record, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NewNotFound("availability record")
		}
		return nil, apperrors.NewDataAccess("get availability by id", err)
	}

	return &record, nil
}

// Create validates and inserts a new availability record. The time-window
// check runs before any datastore call.
func (r *AvailabilityRepository) Create(record *models.AvailabilityRecord) error {
	if !utils.ValidClockTime(record.StartTime) || !utils.ValidClockTime(record.EndTime) {
		return apperrors.NewValidation("start_time and end_time must be HH:MM")
	}
	if record.StartTime >= record.EndTime {
		return apperrors.NewValidation("start_time must be before end_time")
	}

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now

	query := `
		INSERT INTO availability (id, user_id, date, start_time, end_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(
		query,
		record.ID,
		record.UserID,
		record.Date,
		record.StartTime,
		record.EndTime,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewDataAccess("create availability", err)
	}

	return nil
}

// UpdateTimes updates the time window of an existing record. The window is
// validated before the datastore call.
func (r *AvailabilityRepository) UpdateTimes(id uuid.UUID, startTime, endTime string) error {
	if !utils.ValidClockTime(startTime) || !utils.ValidClockTime(endTime) {
		return apperrors.NewValidation("start_time and end_time must be HH:MM")
	}
	if startTime >= endTime {
		return apperrors.NewValidation("start_time must be before end_time")
	}

	query := `
		UPDATE availability
		SET start_time = $1,
		    end_time = $2,
		    updated_at = $3
		WHERE id = $4
	`

	result, err := r.db.Exec(query, startTime, endTime, time.Now(), id)
	if err != nil {
		return apperrors.NewDataAccess("update availability", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewDataAccess("update availability", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFound("availability record")
	}

	return nil
}

// Delete removes an availability record by id
func (r *AvailabilityRepository) Delete(id uuid.UUID) error {
	result, err := r.db.Exec(`DELETE FROM availability WHERE id = $1`, id)
	if err != nil {
		return apperrors.NewDataAccess("delete availability", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewDataAccess("delete availability", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFound("availability record")
	}

	return nil
}

// ExistsForDate reports whether the employee has at least one availability
// record on the exact date. Advisory only; never gates shift creation.
func (r *AvailabilityRepository) ExistsForDate(userID uuid.UUID, date time.Time) (bool, error) {
	var count int

	query := `SELECT COUNT(*) FROM availability WHERE user_id = $1 AND date = $2`

	if err := r.db.QueryRow(query, userID, date).Scan(&count); err != nil {
		return false, apperrors.NewDataAccess("check availability for date", err)
	}

	return count > 0, nil
}
