package handlers

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shiftline/roster-backend/internal/database"
	"github.com/shiftline/roster-backend/internal/middleware"
	"github.com/stretchr/testify/require"
)

var profileColumns = []string{
	"id", "email", "first_name", "last_name", "role", "job_role", "section",
	"created_at", "updated_at",
}

var availabilityColumns = []string{
	"id", "user_id", "date", "start_time", "end_time", "created_at", "updated_at",
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

var shiftColumns = []string{
	"id", "user_id", "date", "start_time", "end_time", "created_by", "created_at", "updated_at",
}

// newMockDB returns the DB wrapper backed by sqlmock
func newMockDB(t *testing.T) (database.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &database.PostgresDB{DB: sqlx.NewDb(db, "sqlmock")}, mock
}

// newTestRouter returns a router that injects the given user context the way
// the auth middleware would after validating a token
func newTestRouter(userID uuid.UUID, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.UserContextKey, middleware.UserContext{
			UserID: userID,
			Email:  "user@shiftline.dev",
			Role:   role,
		})
		c.Next()
	})
	return router
}
