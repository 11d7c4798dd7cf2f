package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"freight_ledger/internal/config"
	"freight_ledger/internal/middleware"
	"freight_ledger/internal/models"
	"freight_ledger/internal/stats"
)

// GetStats computes the six KPIs over the authenticated user's
// delivered loads.
func GetStats(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var rows []models.LoadData
	if err := config.DB.Where("user_id = ? AND delivered = 1", userID).Find(&rows).Error; err != nil {
		logrus.WithError(err).Error("GetStats: query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error computing stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats.Compute(rows)})
}
