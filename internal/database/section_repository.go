package database

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shiftline/roster-backend/internal/models"
	"github.com/shiftline/roster-backend/pkg/apperrors"
)

// SectionRepository handles section database operations
type SectionRepository struct {
	db DB
}

// NewSectionRepository creates a new section repository
func NewSectionRepository(db DB) *SectionRepository {
	return &SectionRepository{db: db}
}

// List retrieves all sections ordered by name
func (r *SectionRepository) List() ([]models.Section, error) {
	var sections []models.Section

	query := `
		SELECT id, name, created_by, created_at, updated_at
		FROM sections
		ORDER BY name
	`

	if err := r.db.Select(&sections, query); err != nil {
		return nil, apperrors.NewDataAccess("list sections", err)
	}

	return sections, nil
}

// GetByID retrieves a section by ID
func (r *SectionRepository) GetByID(id uuid.UUID) (*models.Section, error) {
	var section models.Section

	query := `
		SELECT id, name, created_by, created_at, updated_at
		FROM sections
		WHERE id = $1
	`

	err := r.db.Get(&section, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NewNotFound("section")
		}
		return nil, apperrors.NewDataAccess("get section by id", err)
	}

	return &section, nil
}

// Create inserts a new section. Section names are unique; a duplicate name
// surfaces as a validation error rather than a datastore failure.
func (r *SectionRepository) Create(section *models.Section) error {
	if section.Name == "" {
		return apperrors.NewValidation("section name is required")
	}

	if section.ID == uuid.Nil {
		section.ID = uuid.New()
	}
	now := time.Now()
	section.CreatedAt = now
	section.UpdatedAt = now

	query := `
		INSERT INTO sections (id, name, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(
		query,
		section.ID,
		section.Name,
		section.CreatedBy,
		section.CreatedAt,
		section.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return apperrors.NewValidation("a section with this name already exists")
		}
		return apperrors.NewDataAccess("create section", err)
	}

	return nil
}

// Rename updates a section's name
func (r *SectionRepository) Rename(id uuid.UUID, name string) error {
	if name == "" {
		return apperrors.NewValidation("section name is required")
	}

	query := `
		UPDATE sections
		SET name = $1,
		    updated_at = $2
		WHERE id = $3
	`

	result, err := r.db.Exec(query, name, time.Now(), id)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return apperrors.NewValidation("a section with this name already exists")
		}
		return apperrors.NewDataAccess("rename section", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewDataAccess("rename section", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFound("section")
	}

	return nil
}

// Delete removes a section and clears the tag from every profile that
// referenced it. Both writes happen in one transaction so no profile is
// left pointing at a missing section.
func (r *SectionRepository) Delete(id uuid.UUID) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return apperrors.NewDataAccess("delete section", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE profiles SET section = NULL, updated_at = $1 WHERE section = $2`, time.Now(), id); err != nil {
		return apperrors.NewDataAccess("clear section from profiles", err)
	}

	result, err := tx.Exec(`DELETE FROM sections WHERE id = $1`, id)
	if err != nil {
		return apperrors.NewDataAccess("delete section", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewDataAccess("delete section", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFound("section")
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewDataAccess("delete section", err)
	}

	return nil
}
