package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shiftline/roster-backend/internal/database"
	"github.com/shiftline/roster-backend/internal/middleware"
	"github.com/shiftline/roster-backend/internal/models"
)

// SectionHandler exposes section management
type SectionHandler struct {
	sectionRepo *database.SectionRepository
}

// NewSectionHandler creates a new section handler
func NewSectionHandler(sectionRepo *database.SectionRepository) *SectionHandler {
	return &SectionHandler{sectionRepo: sectionRepo}
}

// ListSections returns every section, alphabetically.
// GET /api/v1/sections
func (h *SectionHandler) ListSections(c *gin.Context) {
	sections, err := h.sectionRepo.List()
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, sections)
}

// CreateSection adds a section.
// POST /api/v1/sections
func (h *SectionHandler) CreateSection(c *gin.Context) {
	userCtx, exists := middleware.GetUserContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	section := &models.Section{
		Name:      req.Name,
		CreatedBy: userCtx.UserID,
	}

	if err := h.sectionRepo.Create(section); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, section)
}

// RenameSection changes a section's name.
// PUT /api/v1/sections/:id
func (h *SectionHandler) RenameSection(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	var req models.RenameSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.sectionRepo.Rename(id, req.Name); err != nil {
		writeError(c, err)
		return
	}

	section, err := h.sectionRepo.GetByID(id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, section)
}

// DeleteSection removes a section and untags every profile that carried it.
// DELETE /api/v1/sections/:id
func (h *SectionHandler) DeleteSection(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	if err := h.sectionRepo.Delete(id); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
