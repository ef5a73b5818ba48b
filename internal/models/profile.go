package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// UserRole represents the role assigned to a profile
type UserRole string

const (
	RoleManager  UserRole = "manager"
	RoleEmployee UserRole = "employee"
)

// Valid reports whether the role is one of the known roles.
func (r UserRole) Valid() bool {
	return r == RoleManager || r == RoleEmployee
}

// Profile represents a row in the profiles table. Profiles are provisioned by
// the external identity system; this service only reads and edits them.
type Profile struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Email     string     `json:"email" db:"email"`
	FirstName *string    `json:"first_name" db:"first_name"`
	LastName  *string    `json:"last_name" db:"last_name"`
	Role      UserRole   `json:"role" db:"role"`
	JobRole   *string    `json:"job_role" db:"job_role"`
	Section   *uuid.UUID `json:"section" db:"section"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// Employee is the directory view of a profile: display attributes derived
// from the raw row (name, initials, color token).
type Employee struct {
	ID       uuid.UUID  `json:"id"`
	Email    string     `json:"email"`
	Name     string     `json:"name"`
	Initials string     `json:"initials"`
	Color    string     `json:"color"`
	Role     UserRole   `json:"role"`
	JobRole  *string    `json:"job_role,omitempty"`
	Section  *uuid.UUID `json:"section,omitempty"`
}

// UpdateProfileRequest carries the fields a manager may edit on a profile.
// Email and role are immutable from this path.
type UpdateProfileRequest struct {
	FirstName string  `json:"first_name" binding:"required"`
	LastName  string  `json:"last_name" binding:"required"`
	JobRole   *string `json:"job_role,omitempty"`
}

// AssignSectionRequest sets or clears the section tag on a profile.
type AssignSectionRequest struct {
	SectionID *uuid.UUID `json:"section_id"`
}

// Validate validates the UpdateProfileRequest
func (req *UpdateProfileRequest) Validate() error {
	if req.FirstName == "" {
		return errors.New("first_name is required")
	}
	if req.LastName == "" {
		return errors.New("last_name is required")
	}
	return nil
}
