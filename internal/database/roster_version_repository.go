package database

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shiftline/roster-backend/internal/models"
	"github.com/shiftline/roster-backend/pkg/apperrors"
)

// RosterVersionRepository handles roster version database operations
type RosterVersionRepository struct {
	db DB
}

// NewRosterVersionRepository creates a new roster version repository
func NewRosterVersionRepository(db DB) *RosterVersionRepository {
	return &RosterVersionRepository{db: db}
}

// ListByWeek retrieves all versions whose week_start matches the given
// Monday, newest first
func (r *RosterVersionRepository) ListByWeek(weekStart time.Time) ([]models.RosterVersion, error) {
	var versions []models.RosterVersion

	query := `
		SELECT id, name, type, week_start, is_active, created_by, created_at, updated_at
		FROM roster_versions
		WHERE week_start = $1
		ORDER BY created_at DESC
	`

	if err := r.db.Select(&versions, query, weekStart); err != nil {
		return nil, apperrors.NewDataAccess("list roster versions", err)
	}

	return versions, nil
}

// GetByID retrieves a roster version by ID
func (r *RosterVersionRepository) GetByID(id uuid.UUID) (*models.RosterVersion, error) {
	var version models.RosterVersion

	query := `
		SELECT id, name, type, week_start, is_active, created_by, created_at, updated_at
		FROM roster_versions
		WHERE id = $1
	`

	err := r.db.Get(&version, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NewNotFound("roster version")
		}
		return nil, apperrors.NewDataAccess("get roster version by id", err)
	}

	return &version, nil
}

// Create inserts a new roster version
func (r *RosterVersionRepository) Create(version *models.RosterVersion) error {
	if !version.Type.Valid() {
		return apperrors.NewValidation("type must be operational or finalized")
	}
	if version.Name == "" {
		return apperrors.NewValidation("version name is required")
	}

	if version.ID == uuid.Nil {
		version.ID = uuid.New()
	}
	now := time.Now()
	version.CreatedAt = now
	version.UpdatedAt = now

	query := `
		INSERT INTO roster_versions (id, name, type, week_start, is_active, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(
		query,
		version.ID,
		version.Name,
		version.Type,
		version.WeekStart,
		version.IsActive,
		version.CreatedBy,
		version.CreatedAt,
		version.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewDataAccess("create roster version", err)
	}

	return nil
}

// Copy creates a new version for the same week as the source and duplicates
// every shift of the source into it. The version insert and the shift copy
// run in one transaction; a copy never appears without its shifts.
func (r *RosterVersionRepository) Copy(source *models.RosterVersion, newVersion *models.RosterVersion) error {
	if newVersion.ID == uuid.Nil {
		newVersion.ID = uuid.New()
	}
	now := time.Now()
	newVersion.WeekStart = source.WeekStart
	newVersion.CreatedAt = now
	newVersion.UpdatedAt = now

	tx, err := r.db.Beginx()
	if err != nil {
		return apperrors.NewDataAccess("copy roster version", err)
	}
	defer tx.Rollback()

	insertVersion := `
		INSERT INTO roster_versions (id, name, type, week_start, is_active, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = tx.Exec(
		insertVersion,
		newVersion.ID,
		newVersion.Name,
		newVersion.Type,
		newVersion.WeekStart,
		newVersion.IsActive,
		newVersion.CreatedBy,
		newVersion.CreatedAt,
		newVersion.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewDataAccess("copy roster version", err)
	}

	copyShifts := `
		INSERT INTO roster_shifts (id, roster_version_id, user_id, date, start_time, end_time, created_by, created_at, updated_at)
		SELECT gen_random_uuid(), $1, user_id, date, start_time, end_time, created_by, $2, $2
		FROM roster_shifts
		WHERE roster_version_id = $3
	`

	if _, err := tx.Exec(copyShifts, newVersion.ID, now, source.ID); err != nil {
		return apperrors.NewDataAccess("copy roster shifts", err)
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewDataAccess("copy roster version", err)
	}

	return nil
}
