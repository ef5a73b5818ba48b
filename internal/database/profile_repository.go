package database

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shiftline/roster-backend/internal/models"
	"github.com/shiftline/roster-backend/pkg/apperrors"
)

// ProfileRepository handles profile database operations
type ProfileRepository struct {
	db DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// ListByRole retrieves all profiles with the given role
func (r *ProfileRepository) ListByRole(role models.UserRole) ([]models.Profile, error) {
	var profiles []models.Profile

	query := `
		SELECT id, email, first_name, last_name, role, job_role, section,
		       created_at, updated_at
		FROM profiles
		WHERE role = $1
		ORDER BY email
	`

	if err := r.db.Select(&profiles, query, role); err != nil {
		return nil, apperrors.NewDataAccess("list profiles by role", err)
	}

	return profiles, nil
}

// GetByID retrieves a profile by ID
func (r *ProfileRepository) GetByID(id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile

	query := `
		SELECT id, email, first_name, last_name, role, job_role, section,
		       created_at, updated_at
		FROM profiles
		WHERE id = $1
	`

	err := r.db.Get(&profile, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NewNotFound("profile")
		}
		return nil, apperrors.NewDataAccess("get profile by id", err)
	}

	return &profile, nil
}

// UpdateNames updates the editable profile fields: first name, last name and
// job role. Email and role are immutable from this path.
func (r *ProfileRepository) UpdateNames(id uuid.UUID, firstName, lastName string, jobRole *string) error {
	query := `
		UPDATE profiles
		SET first_name = $1,
		    last_name = $2,
		    job_role = $3,
		    updated_at = $4
		WHERE id = $5
	`

	result, err := r.db.Exec(query, firstName, lastName, jobRole, time.Now(), id)
	if err != nil {
		return apperrors.NewDataAccess("update profile names", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewDataAccess("update profile names", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFound("profile")
	}

	return nil
}

// UpdateSection sets or clears the section tag on a profile
func (r *ProfileRepository) UpdateSection(id uuid.UUID, sectionID *uuid.UUID) error {
	query := `
		UPDATE profiles
		SET section = $1,
		    updated_at = $2
		WHERE id = $3
	`

	result, err := r.db.Exec(query, sectionID, time.Now(), id)
	if err != nil {
		return apperrors.NewDataAccess("update profile section", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewDataAccess("update profile section", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFound("profile")
	}

	return nil
}

// Create inserts a profile row. Profiles are normally provisioned by the
// identity system; this exists for the seed tool.
func (r *ProfileRepository) Create(profile *models.Profile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	query := `
		INSERT INTO profiles (id, email, first_name, last_name, role, job_role, section, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(
		query,
		profile.ID,
		profile.Email,
		profile.FirstName,
		profile.LastName,
		profile.Role,
		profile.JobRole,
		profile.Section,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewDataAccess("create profile", err)
	}

	return nil
}
