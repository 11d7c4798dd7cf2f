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

// CreateCarrier registers a new carrier scoped to the authenticated user
func CreateCarrier(c *gin.Context) {
	var input models.Carrier
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid carrier input: " + err.Error()})
		return
	}

	input.UserID = middleware.CurrentUserID(c)

	if err := config.DB.Create(&input).Error; err != nil {
		if isDuplicateKey(err) {
			// The (name, address) pair is unique system-wide
			c.JSON(http.StatusConflict, gin.H{"error": "This carrier has already been added by another user"})
			return
		}
		logrus.WithError(err).Error("CreateCarrier: insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save carrier, please try again"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"carrier": input})
}

// ListCarriers lists the authenticated user's carriers
func ListCarriers(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var carriers []models.Carrier
	if err := config.DB.Where("user_id = ?", userID).Order("id").Find(&carriers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing carriers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": carriers})
}

// ListCarrierLoads lists the authenticated user's loads booked with one carrier
func ListCarrierLoads(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	carrierID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid carrier ID format"})
		return
	}

	var carrier models.Carrier
	if err := config.DB.Where("id = ? AND user_id = ?", uint(carrierID), userID).First(&carrier).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Carrier not found"})
		return
	}

	var loads []models.Load
	if err := config.DB.Where("carrier_id = ? AND user_id = ?", carrier.ID, userID).Order("id").Find(&loads).Error; err != nil {
		logrus.WithError(err).Error("ListCarrierLoads: query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing loads for carrier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"carrier": carrier, "data": loads})
}
