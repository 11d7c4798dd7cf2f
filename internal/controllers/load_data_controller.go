package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"freight_ledger/internal/config"
	"freight_ledger/internal/middleware"
	"freight_ledger/internal/models"
)

type outcomeInput struct {
	Ontime    int `json:"ontime" binding:"oneof=0 1"`
	Damaged   int `json:"damaged" binding:"oneof=0 1"`
	Breakdown int `json:"breakdown" binding:"oneof=0 1"`
	Cost      int `json:"cost" binding:"gte=0"`
	Pallets   int `json:"pallets" binding:"gte=0"`
	Weight    int `json:"weight" binding:"gte=0"`
}

// RecordOutcome overwrites the outcome fields of a load's LoadData row.
// The row always pre-exists from load creation; this never inserts.
func RecordOutcome(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	loadID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid load ID format"})
		return
	}

	var input outcomeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid outcome input: " + err.Error()})
		return
	}

	if err := recordOutcome(config.DB, userID, uint(loadID), input); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Load data not found"})
			return
		}
		logrus.WithError(err).Error("RecordOutcome: update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save load data, please try again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Load data saved"})
}

// GetLoadData fetches the outcome row paired with a load
func GetLoadData(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	loadID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid load ID format"})
		return
	}

	var data models.LoadData
	if err := config.DB.Where("load_id = ? AND user_id = ?", uint(loadID), userID).First(&data).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Load data not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching load data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"load_data": data})
}

// recordOutcome updates the mutable outcome columns of the LoadData row
// paired with loadID. A map is used so zero values are written too.
func recordOutcome(db *gorm.DB, userID, loadID uint, in outcomeInput) error {
	res := db.Model(&models.LoadData{}).
		Where("load_id = ? AND user_id = ?", loadID, userID).
		Updates(map[string]interface{}{
			"ontime":    in.Ontime,
			"damaged":   in.Damaged,
			"breakdown": in.Breakdown,
			"cost":      in.Cost,
			"pallets":   in.Pallets,
			"weight":    in.Weight,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
