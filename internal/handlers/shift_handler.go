package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shiftline/roster-backend/internal/database"
	"github.com/shiftline/roster-backend/internal/middleware"
	"github.com/shiftline/roster-backend/internal/models"
	"github.com/shiftline/roster-backend/internal/utils"
)

// ShiftHandler exposes the legacy version-less shift board. Employees see
// their own shifts; managers see and manage everyone's.
type ShiftHandler struct {
	shiftRepo *database.ShiftRepository
}

// NewShiftHandler creates a new shift handler
func NewShiftHandler(shiftRepo *database.ShiftRepository) *ShiftHandler {
	return &ShiftHandler{shiftRepo: shiftRepo}
}

// ListShifts lists shifts: all of them for managers, own only otherwise.
// GET /api/v1/shifts
func (h *ShiftHandler) ListShifts(c *gin.Context) {
	userCtx, exists := middleware.GetUserContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var (
		shifts []models.Shift
		err    error
	)
	if userCtx.Role == string(models.RoleManager) {
		shifts, err = h.shiftRepo.ListAll()
	} else {
		shifts, err = h.shiftRepo.ListByUser(userCtx.UserID)
	}
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, shifts)
}

// CreateShift adds a shift for an employee.
// POST /api/v1/shifts
func (h *ShiftHandler) CreateShift(c *gin.Context) {
	userCtx, exists := middleware.GetUserContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be a YYYY-MM-DD date"})
		return
	}

	shift := &models.Shift{
		UserID:    req.UserID,
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		CreatedBy: userCtx.UserID,
	}

	if err := h.shiftRepo.Create(shift); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, shift)
}

// DeleteShift removes a shift; already-deleted shifts still return 204.
// DELETE /api/v1/shifts/:id
func (h *ShiftHandler) DeleteShift(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	if err := h.shiftRepo.Delete(id); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
