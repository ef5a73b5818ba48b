package models

import (
	"time"

	"github.com/google/uuid"
)

// RosterVersionType tags a version as operational or finalized. Both kinds
// remain fully editable; the tag is a naming convention, not a lock.
type RosterVersionType string

const (
	VersionOperational RosterVersionType = "operational"
	VersionFinalized   RosterVersionType = "finalized"
)

// Valid reports whether the type is one of the known version types.
func (t RosterVersionType) Valid() bool {
	return t == VersionOperational || t == VersionFinalized
}

// Title returns the type with its first letter upper-cased, for version names.
func (t RosterVersionType) Title() string {
	s := string(t)
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// RosterVersion is a named snapshot of shift assignments for one calendar
// week. WeekStart is always the Monday of the week it governs.
type RosterVersion struct {
	ID        uuid.UUID         `json:"id" db:"id"`
	Name      string            `json:"name" db:"name"`
	Type      RosterVersionType `json:"type" db:"type"`
	WeekStart time.Time         `json:"week_start" db:"week_start"`
	IsActive  bool              `json:"is_active" db:"is_active"`
	CreatedBy uuid.UUID         `json:"created_by" db:"created_by"`
	CreatedAt time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt time.Time         `json:"updated_at" db:"updated_at"`

	// Shifts is populated by the roster service when loading a week; it is
	// not a column.
	Shifts []RosterShift `json:"shifts" db:"-"`
}

// RosterShift assigns one employee to one time interval on one date, scoped
// to exactly one roster version.
type RosterShift struct {
	ID              uuid.UUID `json:"id" db:"id"`
	RosterVersionID uuid.UUID `json:"roster_version_id" db:"roster_version_id"`
	UserID          uuid.UUID `json:"user_id" db:"user_id"`
	Date            time.Time `json:"date" db:"date"`
	StartTime       string    `json:"start_time" db:"start_time"`
	EndTime         string    `json:"end_time" db:"end_time"`
	CreatedBy       uuid.UUID `json:"created_by" db:"created_by"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// WeekRoster is the week-load result: all versions for the week (shifts
// attached), which version the selection policy picked, and whether the
// operational fallback version was auto-created by this load.
type WeekRoster struct {
	WeekStart        time.Time       `json:"week_start"`
	Versions         []RosterVersion `json:"versions"`
	CurrentVersionID *uuid.UUID      `json:"current_version_id,omitempty"`
	AutoCreated      bool            `json:"auto_created"`
}

// CreateRosterVersionRequest represents the request to create a version
type CreateRosterVersionRequest struct {
	Type      string  `json:"type" binding:"required"`       // operational | finalized
	WeekStart string  `json:"week_start" binding:"required"` // Format: YYYY-MM-DD
	Name      *string `json:"name,omitempty"`
}

// CopyRosterVersionRequest represents the request to copy a version
type CopyRosterVersionRequest struct {
	Type string `json:"type" binding:"required"` // target type: operational | finalized
}

// CreateRosterShiftRequest represents the request to add a shift to a version
type CreateRosterShiftRequest struct {
	UserID    uuid.UUID `json:"user_id" binding:"required"`
	Date      string    `json:"date" binding:"required"`       // Format: YYYY-MM-DD
	StartTime string    `json:"start_time" binding:"required"` // Format: HH:MM
	EndTime   string    `json:"end_time" binding:"required"`   // Format: HH:MM
}

// RosterShiftResponse wraps a created shift with the advisory availability
// flag. OutsideAvailability never blocks creation.
type RosterShiftResponse struct {
	Shift               RosterShift `json:"shift"`
	OutsideAvailability bool        `json:"outside_availability"`
}
