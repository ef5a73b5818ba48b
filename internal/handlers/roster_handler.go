package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shiftline/roster-backend/internal/middleware"
	"github.com/shiftline/roster-backend/internal/models"
	"github.com/shiftline/roster-backend/internal/services"
	"github.com/shiftline/roster-backend/internal/utils"
)

// RosterHandler exposes weekly roster versions and their shifts
type RosterHandler struct {
	rosterService *services.RosterService
}

// NewRosterHandler creates a new roster handler
func NewRosterHandler(rosterService *services.RosterService) *RosterHandler {
	return &RosterHandler{rosterService: rosterService}
}

// GetWeek loads the roster for the week containing the requested date,
// creating the operational fallback version when the week is empty.
// GET /api/v1/roster?date=
func (h *RosterHandler) GetWeek(c *gin.Context) {
	userCtx, exists := middleware.GetUserContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var date time.Time
	if dateParam := c.Query("date"); dateParam != "" {
		parsed, err := utils.ParseDate(dateParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be a YYYY-MM-DD date"})
			return
		}
		date = parsed
	} else {
		date = timeNow()
	}

	week, err := h.rosterService.FetchWeek(date, userCtx.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, week)
}

// CreateVersion creates a roster version for a week.
// POST /api/v1/roster/versions
func (h *RosterHandler) CreateVersion(c *gin.Context) {
	userCtx, exists := middleware.GetUserContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateRosterVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	version, err := h.rosterService.CreateVersion(&req, userCtx.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, version)
}

// CopyVersion duplicates a version, shifts included.
// POST /api/v1/roster/versions/:id/copy
func (h *RosterHandler) CopyVersion(c *gin.Context) {
	userCtx, exists := middleware.GetUserContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	sourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	var req models.CopyRosterVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	version, err := h.rosterService.CopyVersion(sourceID, &req, userCtx.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, version)
}

// ListShifts lists a version's shifts, optionally narrowed by date and
// employee.
// GET /api/v1/roster/versions/:id/shifts?date=&employee_id=
func (h *RosterHandler) ListShifts(c *gin.Context) {
	versionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	var date *time.Time
	if dateParam := c.Query("date"); dateParam != "" {
		parsed, err := utils.ParseDate(dateParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be a YYYY-MM-DD date"})
			return
		}
		date = &parsed
	}

	var employeeID *uuid.UUID
	if employeeParam := c.Query("employee_id"); employeeParam != "" {
		parsed, err := uuid.Parse(employeeParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "employee_id must be a valid UUID"})
			return
		}
		employeeID = &parsed
	}

	shifts, err := h.rosterService.ShiftsFor(versionID, date, employeeID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, shifts)
}

// AddShift assigns an employee to a shift within a version. The response
// flags shifts that fall outside the employee's recorded availability; the
// shift is created either way.
// POST /api/v1/roster/versions/:id/shifts
func (h *RosterHandler) AddShift(c *gin.Context) {
	userCtx, exists := middleware.GetUserContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	versionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	var req models.CreateRosterShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.rosterService.AddShift(versionID, &req, userCtx.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// RemoveShift deletes a shift from its version. Deleting an already-removed
// shift still returns 204.
// DELETE /api/v1/roster/shifts/:id
func (h *RosterHandler) RemoveShift(c *gin.Context) {
	shiftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	if err := h.rosterService.RemoveShift(shiftID); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
