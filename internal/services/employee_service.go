package services

import (
	"hash/fnv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shiftline/roster-backend/internal/database"
	"github.com/shiftline/roster-backend/internal/models"
)

// shiftColors is the palette of color tokens assigned to employees. The token
// is derived from the profile id, so an employee keeps the same color across
// sessions and devices.
var shiftColors = []string{
	"bg-blue-500",
	"bg-green-500",
	"bg-purple-500",
	"bg-yellow-500",
	"bg-pink-500",
	"bg-indigo-500",
	"bg-orange-500",
	"bg-emerald-500",
}

// EmployeeService handles business logic for the employee directory
type EmployeeService struct {
	profileRepo *database.ProfileRepository
	sectionRepo *database.SectionRepository
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(
	profileRepo *database.ProfileRepository,
	sectionRepo *database.SectionRepository,
) *EmployeeService {
	return &EmployeeService{
		profileRepo: profileRepo,
		sectionRepo: sectionRepo,
	}
}

// ListEmployees returns the directory view of every employee profile
func (s *EmployeeService) ListEmployees() ([]models.Employee, error) {
	profiles, err := s.profileRepo.ListByRole(models.RoleEmployee)
	if err != nil {
		return nil, err
	}

	employees := make([]models.Employee, len(profiles))
	for i, profile := range profiles {
		employees[i] = toEmployee(&profile)
	}

	return employees, nil
}

// GetEmployee returns the directory view of one profile
func (s *EmployeeService) GetEmployee(id uuid.UUID) (*models.Employee, error) {
	profile, err := s.profileRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	employee := toEmployee(profile)
	return &employee, nil
}

// UpdateEmployee updates a profile's editable fields and returns the
// refreshed directory view
func (s *EmployeeService) UpdateEmployee(id uuid.UUID, req *models.UpdateProfileRequest) (*models.Employee, error) {
	if err := s.profileRepo.UpdateNames(id, req.FirstName, req.LastName, req.JobRole); err != nil {
		return nil, err
	}
	return s.GetEmployee(id)
}

// AssignSection sets or clears the section tag on a profile. A non-nil
// section is verified to exist first.
func (s *EmployeeService) AssignSection(id uuid.UUID, sectionID *uuid.UUID) (*models.Employee, error) {
	if sectionID != nil {
		if _, err := s.sectionRepo.GetByID(*sectionID); err != nil {
			return nil, err
		}
	}

	if err := s.profileRepo.UpdateSection(id, sectionID); err != nil {
		return nil, err
	}
	return s.GetEmployee(id)
}

// toEmployee derives the directory attributes from a raw profile row
func toEmployee(profile *models.Profile) models.Employee {
	return models.Employee{
		ID:       profile.ID,
		Email:    profile.Email,
		Name:     displayName(profile),
		Initials: initials(profile),
		Color:    colorFor(profile.ID),
		Role:     profile.Role,
		JobRole:  profile.JobRole,
		Section:  profile.Section,
	}
}

// displayName joins first and last name, falling back to the email address
// when both are missing
func displayName(profile *models.Profile) string {
	var parts []string
	if profile.FirstName != nil && *profile.FirstName != "" {
		parts = append(parts, *profile.FirstName)
	}
	if profile.LastName != nil && *profile.LastName != "" {
		parts = append(parts, *profile.LastName)
	}
	if len(parts) == 0 {
		return profile.Email
	}
	return strings.Join(parts, " ")
}

// initials returns at most two upper-cased letters: first letters of the
// first and last name, or the first two characters of the email
func initials(profile *models.Profile) string {
	var b strings.Builder
	if profile.FirstName != nil && *profile.FirstName != "" {
		r, _ := utf8.DecodeRuneInString(*profile.FirstName)
		b.WriteRune(r)
	}
	if profile.LastName != nil && *profile.LastName != "" {
		r, _ := utf8.DecodeRuneInString(*profile.LastName)
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		email := profile.Email
		if len(email) >= 2 {
			return strings.ToUpper(email[:2])
		}
		return strings.ToUpper(email)
	}
	return strings.ToUpper(b.String())
}

// colorFor hashes the profile id onto the palette. FNV keeps the assignment
// stable for a given id.
func colorFor(id uuid.UUID) string {
	h := fnv.New32a()
	h.Write([]byte(id.String()))
	return shiftColors[h.Sum32()%uint32(len(shiftColors))]
}
