package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shiftline/roster-backend/internal/database"
	"github.com/shiftline/roster-backend/internal/models"
	"github.com/shiftline/roster-backend/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rosterVersionColumns = []string{
	"id", "name", "type", "week_start", "is_active", "created_by", "created_at", "updated_at",
}

var rosterShiftColumns = []string{
	"id", "roster_version_id", "user_id", "date", "start_time", "end_time",
	"created_by", "created_at", "updated_at",
}

func newRosterService(t *testing.T) (*RosterService, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	wrapped := &database.PostgresDB{DB: sqlx.NewDb(db, "sqlmock")}
	return NewRosterService(
		database.NewRosterVersionRepository(wrapped),
		database.NewRosterShiftRepository(wrapped),
		database.NewAvailabilityRepository(wrapped),
	), mock
}

func TestFetchWeek(t *testing.T) {
	monday := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Empty Week Auto Creates Operational Fallback", func(t *testing.T) {
		service, mock := newRosterService(t)
		manager := uuid.New()

		// Requesting a Wednesday resolves to the Monday of the same week.
		wednesday := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery(`SELECT (.+) FROM roster_versions WHERE week_start`).
			WithArgs(monday).
			WillReturnRows(sqlmock.NewRows(rosterVersionColumns))
		mock.ExpectExec(`INSERT INTO roster_versions`).
			WithArgs(sqlmock.AnyArg(), "Week of Jan 1, 2024", models.VersionOperational,
				monday, true, manager, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`SELECT (.+) FROM roster_shifts WHERE roster_version_id = ANY`).
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(rosterShiftColumns))

		week, err := service.FetchWeek(wednesday, manager)
		require.NoError(t, err)
		assert.Equal(t, monday, week.WeekStart)
		assert.True(t, week.AutoCreated)
		require.Len(t, week.Versions, 1)
		assert.Equal(t, "Week of Jan 1, 2024", week.Versions[0].Name)
		assert.Equal(t, models.VersionOperational, week.Versions[0].Type)
		assert.NotNil(t, week.Versions[0].Shifts)
		require.NotNil(t, week.CurrentVersionID)
		assert.Equal(t, week.Versions[0].ID, *week.CurrentVersionID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Finalized Lists First And Active Operational Is Selected", func(t *testing.T) {
		service, mock := newRosterService(t)
		manager := uuid.New()
		now := time.Now()

		operationalID := uuid.New()
		finalizedID := uuid.New()

		// Repository order is newest first; operational was created last.
		mock.ExpectQuery(`SELECT (.+) FROM roster_versions WHERE week_start`).
			WithArgs(monday).
			WillReturnRows(sqlmock.NewRows(rosterVersionColumns).
				AddRow(operationalID, "Operational Roster - Jan 1, 2024", "operational",
					monday, true, manager, now, now).
				AddRow(finalizedID, "Finalized Roster - Jan 1, 2024", "finalized",
					monday, true, manager, now.Add(-time.Hour), now))
		mock.ExpectQuery(`SELECT (.+) FROM roster_shifts WHERE roster_version_id = ANY`).
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(rosterShiftColumns).
				AddRow(uuid.New(), finalizedID, uuid.New(),
					monday.AddDate(0, 0, 1), "09:00", "17:00", manager, now, now))

		week, err := service.FetchWeek(monday, manager)
		require.NoError(t, err)
		assert.False(t, week.AutoCreated)
		require.Len(t, week.Versions, 2)
		assert.Equal(t, finalizedID, week.Versions[0].ID)
		assert.Len(t, week.Versions[0].Shifts, 1)
		assert.Empty(t, week.Versions[1].Shifts)
		require.NotNil(t, week.CurrentVersionID)
		assert.Equal(t, operationalID, *week.CurrentVersionID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Active Finalized Selected When No Active Operational", func(t *testing.T) {
		service, mock := newRosterService(t)
		manager := uuid.New()
		now := time.Now()

		operationalID := uuid.New()
		finalizedID := uuid.New()

		mock.ExpectQuery(`SELECT (.+) FROM roster_versions WHERE week_start`).
			WithArgs(monday).
			WillReturnRows(sqlmock.NewRows(rosterVersionColumns).
				AddRow(operationalID, "Operational Roster - Jan 1, 2024", "operational",
					monday, false, manager, now, now).
				AddRow(finalizedID, "Finalized Roster - Jan 1, 2024", "finalized",
					monday, true, manager, now.Add(-time.Hour), now))
		mock.ExpectQuery(`SELECT (.+) FROM roster_shifts WHERE roster_version_id = ANY`).
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(rosterShiftColumns))

		week, err := service.FetchWeek(monday, manager)
		require.NoError(t, err)
		require.NotNil(t, week.CurrentVersionID)
		assert.Equal(t, finalizedID, *week.CurrentVersionID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCreateVersion(t *testing.T) {
	monday := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Defaults The Name And Normalizes The Week", func(t *testing.T) {
		service, mock := newRosterService(t)
		manager := uuid.New()

		mock.ExpectExec(`INSERT INTO roster_versions`).
			WithArgs(sqlmock.AnyArg(), "Finalized Roster - Jan 1, 2024",
				models.VersionFinalized, monday, true, manager,
				sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		version, err := service.CreateVersion(&models.CreateRosterVersionRequest{
			Type:      "finalized",
			WeekStart: "2024-01-04", // Thursday
		}, manager)
		require.NoError(t, err)
		assert.Equal(t, "Finalized Roster - Jan 1, 2024", version.Name)
		assert.Equal(t, monday, version.WeekStart)
		assert.NotNil(t, version.Shifts)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Explicit Name Wins", func(t *testing.T) {
		service, mock := newRosterService(t)
		manager := uuid.New()
		name := "Holiday Cover"

		mock.ExpectExec(`INSERT INTO roster_versions`).
			WithArgs(sqlmock.AnyArg(), "Holiday Cover", models.VersionOperational,
				monday, true, manager, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		version, err := service.CreateVersion(&models.CreateRosterVersionRequest{
			Type:      "operational",
			WeekStart: "2024-01-01",
			Name:      &name,
		}, manager)
		require.NoError(t, err)
		assert.Equal(t, "Holiday Cover", version.Name)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown Type Rejected", func(t *testing.T) {
		service, mock := newRosterService(t)

		_, err := service.CreateVersion(&models.CreateRosterVersionRequest{
			Type:      "draft",
			WeekStart: "2024-01-01",
		}, uuid.New())
		assert.True(t, apperrors.IsValidation(err))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Malformed Date Rejected", func(t *testing.T) {
		service, mock := newRosterService(t)

		_, err := service.CreateVersion(&models.CreateRosterVersionRequest{
			Type:      "operational",
			WeekStart: "01/01/2024",
		}, uuid.New())
		assert.True(t, apperrors.IsValidation(err))

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCopyVersion(t *testing.T) {
	monday := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Copies Shifts And Suffixes The Name", func(t *testing.T) {
		service, mock := newRosterService(t)
		manager := uuid.New()
		now := time.Now()
		sourceID := uuid.New()

		mock.ExpectQuery(`SELECT (.+) FROM roster_versions WHERE id`).
			WithArgs(sourceID).
			WillReturnRows(sqlmock.NewRows(rosterVersionColumns).
				AddRow(sourceID, "Operational Roster - Jan 1, 2024", "operational",
					monday, true, manager, now, now))
		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO roster_versions`).
			WithArgs(sqlmock.AnyArg(), "Operational Roster - Jan 1, 2024 (Copy)",
				models.VersionFinalized, monday, true, manager,
				sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO roster_shifts`).
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sourceID).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()
		mock.ExpectQuery(`SELECT (.+) FROM roster_shifts WHERE roster_version_id = \$1`).
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(rosterShiftColumns).
				AddRow(uuid.New(), uuid.New(), uuid.New(), monday, "09:00", "17:00", manager, now, now).
				AddRow(uuid.New(), uuid.New(), uuid.New(), monday, "12:00", "20:00", manager, now, now))

		version, err := service.CopyVersion(sourceID, &models.CopyRosterVersionRequest{Type: "finalized"}, manager)
		require.NoError(t, err)
		assert.Equal(t, "Operational Roster - Jan 1, 2024 (Copy)", version.Name)
		assert.Equal(t, models.VersionFinalized, version.Type)
		assert.Equal(t, monday, version.WeekStart)
		assert.Len(t, version.Shifts, 2)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing Source", func(t *testing.T) {
		service, mock := newRosterService(t)
		sourceID := uuid.New()

		mock.ExpectQuery(`SELECT (.+) FROM roster_versions WHERE id`).
			WithArgs(sourceID).
			WillReturnRows(sqlmock.NewRows(rosterVersionColumns))

		_, err := service.CopyVersion(sourceID, &models.CopyRosterVersionRequest{Type: "operational"}, uuid.New())
		assert.True(t, apperrors.IsNotFound(err))

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAddShift(t *testing.T) {
	monday := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	expectVersionLookup := func(mock sqlmock.Sqlmock, versionID uuid.UUID) {
		now := time.Now()
		mock.ExpectQuery(`SELECT (.+) FROM roster_versions WHERE id`).
			WithArgs(versionID).
			WillReturnRows(sqlmock.NewRows(rosterVersionColumns).
				AddRow(versionID, "Week of Jan 1, 2024", "operational",
					monday, true, uuid.New(), now, now))
	}

	t.Run("Inside Availability", func(t *testing.T) {
		service, mock := newRosterService(t)
		manager := uuid.New()
		versionID := uuid.New()
		employee := uuid.New()
		date := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

		expectVersionLookup(mock, versionID)
		mock.ExpectExec(`INSERT INTO roster_shifts`).
			WithArgs(sqlmock.AnyArg(), versionID, employee, date, "09:00", "17:00",
				manager, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM availability`).
			WithArgs(employee, date).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		resp, err := service.AddShift(versionID, &models.CreateRosterShiftRequest{
			UserID:    employee,
			Date:      "2024-01-02",
			StartTime: "09:00",
			EndTime:   "17:00",
		}, manager)
		require.NoError(t, err)
		assert.False(t, resp.OutsideAvailability)
		assert.Equal(t, versionID, resp.Shift.RosterVersionID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Outside Availability Still Created", func(t *testing.T) {
		service, mock := newRosterService(t)
		manager := uuid.New()
		versionID := uuid.New()
		employee := uuid.New()
		date := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

		expectVersionLookup(mock, versionID)
		mock.ExpectExec(`INSERT INTO roster_shifts`).
			WithArgs(sqlmock.AnyArg(), versionID, employee, date, "09:00", "17:00",
				manager, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM availability`).
			WithArgs(employee, date).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		resp, err := service.AddShift(versionID, &models.CreateRosterShiftRequest{
			UserID:    employee,
			Date:      "2024-01-02",
			StartTime: "09:00",
			EndTime:   "17:00",
		}, manager)
		require.NoError(t, err)
		assert.True(t, resp.OutsideAvailability)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Inverted Window Rejected Before Insert", func(t *testing.T) {
		service, mock := newRosterService(t)
		versionID := uuid.New()

		expectVersionLookup(mock, versionID)

		_, err := service.AddShift(versionID, &models.CreateRosterShiftRequest{
			UserID:    uuid.New(),
			Date:      "2024-01-02",
			StartTime: "17:00",
			EndTime:   "09:00",
		}, uuid.New())
		assert.True(t, apperrors.IsValidation(err))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing Version", func(t *testing.T) {
		service, mock := newRosterService(t)
		versionID := uuid.New()

		mock.ExpectQuery(`SELECT (.+) FROM roster_versions WHERE id`).
			WithArgs(versionID).
			WillReturnRows(sqlmock.NewRows(rosterVersionColumns))

		_, err := service.AddShift(versionID, &models.CreateRosterShiftRequest{
			UserID:    uuid.New(),
			Date:      "2024-01-02",
			StartTime: "09:00",
			EndTime:   "17:00",
		}, uuid.New())
		assert.True(t, apperrors.IsNotFound(err))

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestShiftsFor(t *testing.T) {
	monday := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Filters By Date In Memory", func(t *testing.T) {
		service, mock := newRosterService(t)
		versionID := uuid.New()
		now := time.Now()
		tuesday := monday.AddDate(0, 0, 1)

		mock.ExpectQuery(`SELECT (.+) FROM roster_versions WHERE id`).
			WithArgs(versionID).
			WillReturnRows(sqlmock.NewRows(rosterVersionColumns).
				AddRow(versionID, "Week of Jan 1, 2024", "operational",
					monday, true, uuid.New(), now, now))
		mock.ExpectQuery(`SELECT (.+) FROM roster_shifts WHERE roster_version_id = \$1`).
			WithArgs(versionID).
			WillReturnRows(sqlmock.NewRows(rosterShiftColumns).
				AddRow(uuid.New(), versionID, uuid.New(), monday, "09:00", "17:00", uuid.New(), now, now).
				AddRow(uuid.New(), versionID, uuid.New(), tuesday, "09:00", "17:00", uuid.New(), now, now))

		shifts, err := service.ShiftsFor(versionID, &tuesday, nil)
		require.NoError(t, err)
		require.Len(t, shifts, 1)
		assert.Equal(t, tuesday, shifts[0].Date.UTC())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Date And Employee Use The Narrow Query", func(t *testing.T) {
		service, mock := newRosterService(t)
		versionID := uuid.New()
		employee := uuid.New()
		now := time.Now()
		tuesday := monday.AddDate(0, 0, 1)

		mock.ExpectQuery(`SELECT (.+) FROM roster_versions WHERE id`).
			WithArgs(versionID).
			WillReturnRows(sqlmock.NewRows(rosterVersionColumns).
				AddRow(versionID, "Week of Jan 1, 2024", "operational",
					monday, true, uuid.New(), now, now))
		mock.ExpectQuery(`SELECT (.+) FROM roster_shifts WHERE roster_version_id = \$1 AND user_id = \$2 AND date = \$3`).
			WithArgs(versionID, employee, tuesday).
			WillReturnRows(sqlmock.NewRows(rosterShiftColumns).
				AddRow(uuid.New(), versionID, employee, tuesday, "09:00", "17:00", uuid.New(), now, now))

		shifts, err := service.ShiftsFor(versionID, &tuesday, &employee)
		require.NoError(t, err)
		require.Len(t, shifts, 1)
		assert.Equal(t, employee, shifts[0].UserID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
