package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shiftline/roster-backend/internal/models"
	"github.com/shiftline/roster-backend/internal/utils"
	"github.com/shiftline/roster-backend/pkg/apperrors"
)

// RosterShiftRepository handles roster shift database operations
type RosterShiftRepository struct {
	db DB
}

// NewRosterShiftRepository creates a new roster shift repository
func NewRosterShiftRepository(db DB) *RosterShiftRepository {
	return &RosterShiftRepository{db: db}
}

// ListByVersionIDs retrieves the shifts of several versions in one query.
// Used when loading a week so each version's shifts can be attached without
// a query per version.
func (r *RosterShiftRepository) ListByVersionIDs(versionIDs []uuid.UUID) ([]models.RosterShift, error) {
	if len(versionIDs) == 0 {
		return []models.RosterShift{}, nil
	}

	ids := make([]string, len(versionIDs))
	for i, id := range versionIDs {
		ids[i] = id.String()
	}

	var shifts []models.RosterShift

	query := `
		SELECT id, roster_version_id, user_id, date, start_time, end_time,
		       created_by, created_at, updated_at
		FROM roster_shifts
		WHERE roster_version_id = ANY($1)
		ORDER BY date, start_time
	`

	if err := r.db.Select(&shifts, query, pq.Array(ids)); err != nil {
		return nil, apperrors.NewDataAccess("list roster shifts", err)
	}

	return shifts, nil
}

// ListByVersion retrieves all shifts belonging to one version
func (r *RosterShiftRepository) ListByVersion(versionID uuid.UUID) ([]models.RosterShift, error) {
	var shifts []models.RosterShift

	query := `
		SELECT id, roster_version_id, user_id, date, start_time, end_time,
		       created_by, created_at, updated_at
		FROM roster_shifts
		WHERE roster_version_id = $1
		ORDER BY date, start_time
	`

	if err := r.db.Select(&shifts, query, versionID); err != nil {
		return nil, apperrors.NewDataAccess("list roster shifts", err)
	}

	return shifts, nil
}

// ListByVersionDayEmployee retrieves one employee's shifts on one date within
// a version
func (r *RosterShiftRepository) ListByVersionDayEmployee(versionID, userID uuid.UUID, date time.Time) ([]models.RosterShift, error) {
	var shifts []models.RosterShift

	query := `
		SELECT id, roster_version_id, user_id, date, start_time, end_time,
		       created_by, created_at, updated_at
		FROM roster_shifts
		WHERE roster_version_id = $1 AND user_id = $2 AND date = $3
		ORDER BY start_time
	`

	if err := r.db.Select(&shifts, query, versionID, userID, date); err != nil {
		return nil, apperrors.NewDataAccess("list roster shifts for day", err)
	}

	return shifts, nil
}

// Create inserts a new roster shift. The time window is validated before any
// datastore call.
func (r *RosterShiftRepository) Create(shift *models.RosterShift) error {
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
		INSERT INTO roster_shifts (id, roster_version_id, user_id, date, start_time, end_time, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(
		query,
		shift.ID,
		shift.RosterVersionID,
		shift.UserID,
		shift.Date,
		shift.StartTime,
		shift.EndTime,
		shift.CreatedBy,
		shift.CreatedAt,
		shift.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewDataAccess("create roster shift", err)
	}

	return nil
}

// Delete removes a roster shift. Deleting a shift that is already gone is
// not an error.
func (r *RosterShiftRepository) Delete(id uuid.UUID) error {
	if _, err := r.db.Exec(`DELETE FROM roster_shifts WHERE id = $1`, id); err != nil {
		return apperrors.NewDataAccess("delete roster shift", err)
	}
	return nil
}
