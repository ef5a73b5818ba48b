package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// newTestDB returns a DB backed by sqlmock. Routing through PostgresDB keeps
// the wrapper methods under test too.
func newTestDB(t *testing.T) (DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &PostgresDB{DB: sqlx.NewDb(db, "sqlmock")}, mock
}

var availabilityColumns = []string{
	"id", "user_id", "date", "start_time", "end_time", "created_at", "updated_at",
}

var profileColumns = []string{
	"id", "email", "first_name", "last_name", "role", "job_role", "section",
	"created_at", "updated_at",
}

var sectionColumns = []string{
	"id", "name", "created_by", "created_at", "updated_at",
}

var rosterVersionColumns = []string{
	"id", "name", "type", "week_start", "is_active", "created_by", "created_at", "updated_at",
}

var rosterShiftColumns = []string{
	"id", "roster_version_id", "user_id", "date", "start_time", "end_time",
	"created_by", "created_at", "updated_at",
}
