package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shiftline/roster-backend/pkg/apperrors"
	"github.com/sirupsen/logrus"
)

// writeError maps an application error onto the HTTP response: validation
// failures are the caller's fault, missing resources are 404, anything else
// is a datastore problem the client can't fix.
func writeError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logrus.WithFields(logrus.Fields{
			"path":  c.Request.URL.Path,
			"error": err.Error(),
		}).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
