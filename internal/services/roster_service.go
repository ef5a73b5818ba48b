package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shiftline/roster-backend/internal/database"
	"github.com/shiftline/roster-backend/internal/models"
	"github.com/shiftline/roster-backend/internal/utils"
	"github.com/shiftline/roster-backend/pkg/apperrors"
)

// RosterService handles business logic for weekly roster versions and the
// shifts inside them
type RosterService struct {
	versionRepo      *database.RosterVersionRepository
	shiftRepo        *database.RosterShiftRepository
	availabilityRepo *database.AvailabilityRepository
}

// NewRosterService creates a new RosterService
func NewRosterService(
	versionRepo *database.RosterVersionRepository,
	shiftRepo *database.RosterShiftRepository,
	availabilityRepo *database.AvailabilityRepository,
) *RosterService {
	return &RosterService{
		versionRepo:      versionRepo,
		shiftRepo:        shiftRepo,
		availabilityRepo: availabilityRepo,
	}
}

// FetchWeek loads every roster version for the week containing date, with
// shifts attached. Any date inside the week resolves to the same Monday. An
// empty week gets an operational fallback version created on the fly so the
// caller always has something to edit.
func (s *RosterService) FetchWeek(date time.Time, requestedBy uuid.UUID) (*models.WeekRoster, error) {
	weekStart := utils.StartOfWeek(date)

	versions, err := s.versionRepo.ListByWeek(weekStart)
	if err != nil {
		return nil, err
	}

	autoCreated := false
	if len(versions) == 0 {
		fallback := &models.RosterVersion{
			Name:      fmt.Sprintf("Week of %s", utils.WeekLabel(weekStart)),
			Type:      models.VersionOperational,
			WeekStart: weekStart,
			IsActive:  true,
			CreatedBy: requestedBy,
		}
		if err := s.versionRepo.Create(fallback); err != nil {
			return nil, err
		}
		versions = []models.RosterVersion{*fallback}
		autoCreated = true
	}

	versionIDs := make([]uuid.UUID, len(versions))
	for i, v := range versions {
		versionIDs[i] = v.ID
	}

	shifts, err := s.shiftRepo.ListByVersionIDs(versionIDs)
	if err != nil {
		return nil, err
	}

	byVersion := make(map[uuid.UUID][]models.RosterShift, len(versions))
	for _, shift := range shifts {
		byVersion[shift.RosterVersionID] = append(byVersion[shift.RosterVersionID], shift)
	}
	for i := range versions {
		attached := byVersion[versions[i].ID]
		if attached == nil {
			attached = []models.RosterShift{}
		}
		versions[i].Shifts = attached
	}

	// Finalized versions list ahead of operational ones; within a type the
	// repository's newest-first order is preserved.
	sort.SliceStable(versions, func(i, j int) bool {
		return versions[i].Type == models.VersionFinalized && versions[j].Type != models.VersionFinalized
	})

	return &models.WeekRoster{
		WeekStart:        weekStart,
		Versions:         versions,
		CurrentVersionID: selectCurrentVersion(versions),
		AutoCreated:      autoCreated,
	}, nil
}

// selectCurrentVersion picks which version a client should open by default:
// an active operational version wins, then an active finalized one, then
// whatever lists first.
func selectCurrentVersion(versions []models.RosterVersion) *uuid.UUID {
	if len(versions) == 0 {
		return nil
	}
	for _, v := range versions {
		if v.IsActive && v.Type == models.VersionOperational {
			id := v.ID
			return &id
		}
	}
	for _, v := range versions {
		if v.IsActive && v.Type == models.VersionFinalized {
			id := v.ID
			return &id
		}
	}
	id := versions[0].ID
	return &id
}

// CreateVersion creates a roster version for the week containing the request
// date. A missing name defaults to "{Type} Roster - {week label}".
func (s *RosterService) CreateVersion(req *models.CreateRosterVersionRequest, createdBy uuid.UUID) (*models.RosterVersion, error) {
	versionType := models.RosterVersionType(req.Type)
	if !versionType.Valid() {
		return nil, apperrors.NewValidation("type must be operational or finalized")
	}

	requestDate, err := utils.ParseDate(req.WeekStart)
	if err != nil {
		return nil, apperrors.NewValidation("week_start must be a YYYY-MM-DD date")
	}
	weekStart := utils.StartOfWeek(requestDate)

	name := fmt.Sprintf("%s Roster - %s", versionType.Title(), utils.WeekLabel(weekStart))
	if req.Name != nil && *req.Name != "" {
		name = *req.Name
	}

	version := &models.RosterVersion{
		Name:      name,
		Type:      versionType,
		WeekStart: weekStart,
		IsActive:  true,
		CreatedBy: createdBy,
	}

	if err := s.versionRepo.Create(version); err != nil {
		return nil, err
	}

	version.Shifts = []models.RosterShift{}
	return version, nil
}

// CopyVersion duplicates an existing version, shifts included, into a new
// version of the requested type for the same week
func (s *RosterService) CopyVersion(sourceID uuid.UUID, req *models.CopyRosterVersionRequest, createdBy uuid.UUID) (*models.RosterVersion, error) {
	targetType := models.RosterVersionType(req.Type)
	if !targetType.Valid() {
		return nil, apperrors.NewValidation("type must be operational or finalized")
	}

	source, err := s.versionRepo.GetByID(sourceID)
	if err != nil {
		return nil, err
	}

	newVersion := &models.RosterVersion{
		Name:      source.Name + " (Copy)",
		Type:      targetType,
		IsActive:  true,
		CreatedBy: createdBy,
	}

	if err := s.versionRepo.Copy(source, newVersion); err != nil {
		return nil, err
	}

	shifts, err := s.shiftRepo.ListByVersion(newVersion.ID)
	if err != nil {
		return nil, err
	}
	newVersion.Shifts = shifts

	return newVersion, nil
}

// AddShift assigns an employee to a time interval on a date within a version.
// Availability is advisory: a shift outside the employee's availability is
// still created, flagged so the client can warn.
func (s *RosterService) AddShift(versionID uuid.UUID, req *models.CreateRosterShiftRequest, createdBy uuid.UUID) (*models.RosterShiftResponse, error) {
	if _, err := s.versionRepo.GetByID(versionID); err != nil {
		return nil, err
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, apperrors.NewValidation("date must be a YYYY-MM-DD date")
	}

	shift := &models.RosterShift{
		RosterVersionID: versionID,
		UserID:          req.UserID,
		Date:            date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		CreatedBy:       createdBy,
	}

	if err := s.shiftRepo.Create(shift); err != nil {
		return nil, err
	}

	available, err := s.availabilityRepo.ExistsForDate(req.UserID, date)
	if err != nil {
		// The shift is already committed; availability lookup failure only
		// loses the advisory flag.
		available = true
	}

	return &models.RosterShiftResponse{
		Shift:               *shift,
		OutsideAvailability: !available,
	}, nil
}

// RemoveShift deletes a shift from its version. Removing a shift that no
// longer exists succeeds.
func (s *RosterService) RemoveShift(shiftID uuid.UUID) error {
	return s.shiftRepo.Delete(shiftID)
}

// ShiftsFor lists a version's shifts, optionally narrowed to a date and/or an
// employee
func (s *RosterService) ShiftsFor(versionID uuid.UUID, date *time.Time, userID *uuid.UUID) ([]models.RosterShift, error) {
	if _, err := s.versionRepo.GetByID(versionID); err != nil {
		return nil, err
	}

	if date != nil && userID != nil {
		return s.shiftRepo.ListByVersionDayEmployee(versionID, *userID, *date)
	}

	shifts, err := s.shiftRepo.ListByVersion(versionID)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.RosterShift, 0, len(shifts))
	for _, shift := range shifts {
		if date != nil && !utils.SameDate(shift.Date, *date) {
			continue
		}
		if userID != nil && shift.UserID != *userID {
			continue
		}
		filtered = append(filtered, shift)
	}

	return filtered, nil
}
