package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"freight_ledger/internal/config"
	"freight_ledger/internal/middleware"
	"freight_ledger/internal/models"
)

// CreateDistributionCenter registers a new DC scoped to the authenticated user
func CreateDistributionCenter(c *gin.Context) {
	var input models.DistributionCenter
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid distribution center input: " + err.Error()})
		return
	}

	input.UserID = middleware.CurrentUserID(c)

	if err := config.DB.Create(&input).Error; err != nil {
		if isDuplicateKey(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "This distribution center has already been added by another user"})
			return
		}
		logrus.WithError(err).Error("CreateDistributionCenter: insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save distribution center, please try again"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"distribution_center": input})
}

// ListDistributionCenters lists the authenticated user's DCs
func ListDistributionCenters(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var centers []models.DistributionCenter
	if err := config.DB.Where("user_id = ?", userID).Order("id").Find(&centers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing distribution centers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": centers})
}

// ListDistributionCenterLoads lists the authenticated user's loads bound for one DC
func ListDistributionCenterLoads(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	dcID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid distribution center ID format"})
		return
	}

	var center models.DistributionCenter
	if err := config.DB.Where("id = ? AND user_id = ?", uint(dcID), userID).First(&center).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Distribution center not found"})
		return
	}

	var loads []models.Load
	if err := config.DB.Where("distribution_center_id = ? AND user_id = ?", center.ID, userID).Order("id").Find(&loads).Error; err != nil {
		logrus.WithError(err).Error("ListDistributionCenterLoads: query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing loads for distribution center"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"distribution_center": center, "data": loads})
}
