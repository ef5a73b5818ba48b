package models

import (
	"time"

	"github.com/google/uuid"
)

// Section is a named grouping tag optionally applied to an employee.
type Section struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedBy uuid.UUID `json:"created_by" db:"created_by"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreateSectionRequest represents the request to create a section
type CreateSectionRequest struct {
	Name string `json:"name" binding:"required"`
}

// RenameSectionRequest represents the request to rename a section
type RenameSectionRequest struct {
	Name string `json:"name" binding:"required"`
}
