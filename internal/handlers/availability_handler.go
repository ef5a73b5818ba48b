package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shiftline/roster-backend/internal/database"
	"github.com/shiftline/roster-backend/internal/middleware"
	"github.com/shiftline/roster-backend/internal/models"
	"github.com/shiftline/roster-backend/internal/utils"
)

// timeNow is swapped out in tests
var timeNow = time.Now

// AvailabilityHandler exposes the availability calendar. Employees manage
// their own records; managers can read anyone's.
type AvailabilityHandler struct {
	availabilityRepo *database.AvailabilityRepository
}

// NewAvailabilityHandler creates a new availability handler
func NewAvailabilityHandler(availabilityRepo *database.AvailabilityRepository) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityRepo: availabilityRepo}
}

// GetAvailability lists availability records.
// GET /api/v1/availability?employee_id=&start_date=&end_date=
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	userCtx, exists := middleware.GetUserContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	targetID := userCtx.UserID
	if employeeParam := c.Query("employee_id"); employeeParam != "" {
		if userCtx.Role != string(models.RoleManager) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only managers can view other employees' availability"})
			return
		}
		parsed, err := uuid.Parse(employeeParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "employee_id must be a valid UUID"})
			return
		}
		targetID = parsed
	}

	startParam := c.Query("start_date")
	endParam := c.Query("end_date")
	if startParam != "" && endParam != "" {
		startDate, err := utils.ParseDate(startParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be a YYYY-MM-DD date"})
			return
		}
		endDate, err := utils.ParseDate(endParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be a YYYY-MM-DD date"})
			return
		}

		records, err := h.availabilityRepo.ListByUserAndRange(targetID, startDate, endDate)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, records)
		return
	}

	records, err := h.availabilityRepo.ListByUser(targetID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetWeekAvailability lists every employee's availability for the week
// containing the given date. Manager only; used by the scheduling table.
// GET /api/v1/availability/week?date=
func (h *AvailabilityHandler) GetWeekAvailability(c *gin.Context) {
	dateParam := c.DefaultQuery("date", utils.FormatDate(utils.StartOfWeek(timeNow())))
	date, err := utils.ParseDate(dateParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be a YYYY-MM-DD date"})
		return
	}

	records, err := h.availabilityRepo.ListByRange(utils.StartOfWeek(date), utils.EndOfWeek(date))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// CreateAvailability records a time window for the authenticated employee.
// POST /api/v1/availability
func (h *AvailabilityHandler) CreateAvailability(c *gin.Context) {
	userCtx, exists := middleware.GetUserContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be a YYYY-MM-DD date"})
		return
	}

	record := &models.AvailabilityRecord{
		UserID:    userCtx.UserID,
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if err := h.availabilityRepo.Create(record); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// UpdateAvailability changes the time window of an existing record. Only the
// owner or a manager may edit it.
// PUT /api/v1/availability/:id
func (h *AvailabilityHandler) UpdateAvailability(c *gin.Context) {
	userCtx, exists := middleware.GetUserContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	var req models.UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	record, err := h.availabilityRepo.GetByID(id)
	if err != nil {
		writeError(c, err)
		return
	}

	if record.UserID != userCtx.UserID && userCtx.Role != string(models.RoleManager) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only edit your own availability"})
		return
	}

	if err := h.availabilityRepo.UpdateTimes(id, req.StartTime, req.EndTime); err != nil {
		writeError(c, err)
		return
	}

	updated, err := h.availabilityRepo.GetByID(id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteAvailability removes a record. Only the owner or a manager may
// delete it.
// DELETE /api/v1/availability/:id
func (h *AvailabilityHandler) DeleteAvailability(c *gin.Context) {
	userCtx, exists := middleware.GetUserContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	record, err := h.availabilityRepo.GetByID(id)
	if err != nil {
		writeError(c, err)
		return
	}

	if record.UserID != userCtx.UserID && userCtx.Role != string(models.RoleManager) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own availability"})
		return
	}

	if err := h.availabilityRepo.Delete(id); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
