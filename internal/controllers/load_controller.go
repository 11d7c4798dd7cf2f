package controllers

import (
	"encoding/binary"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkb"
	"gorm.io/gorm"

	"freight_ledger/internal/config"
	"freight_ledger/internal/middleware"
	"freight_ledger/internal/mileage"
	"freight_ledger/internal/models"
)

// Mileage is the distance API client used to resolve load mileage.
// Assigned once at startup; tests swap in a fake.
var Mileage mileage.Lookup

var errLoadDataMissing = errors.New("load has no outcome record")

type createLoadInput struct {
	PO                   string `json:"po" binding:"required"`
	Name                 string `json:"name" binding:"required"`
	PickupCity           string `json:"pickup_city" binding:"required"`
	PickupState          string `json:"pickup_state" binding:"required"`
	DueDate              string `json:"due_date"`
	DayOfWeek            string `json:"day_of_week"`
	Temp                 int    `json:"temp"`
	Team                 int    `json:"team" binding:"oneof=0 1"`
	CarrierID            uint   `json:"carrier_id" binding:"required"`
	DistributionCenterID uint   `json:"dc_id" binding:"required"`
}

// CreateLoad books a new shipment. Mileage from the pickup city to the
// distribution center is resolved first; a lookup failure aborts the
// request before anything is written. The Load and its all-zero
// LoadData row are then inserted in one transaction.
func CreateLoad(c *gin.Context) {
	var input createLoadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid load input: " + err.Error()})
		return
	}

	userID := middleware.CurrentUserID(c)

	var carrier models.Carrier
	if err := config.DB.Where("id = ? AND user_id = ?", input.CarrierID, userID).First(&carrier).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Carrier not found"})
		return
	}

	var center models.DistributionCenter
	if err := config.DB.Where("id = ? AND user_id = ?", input.DistributionCenterID, userID).First(&center).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Distribution center not found"})
		return
	}

	dist, err := Mileage.Distance(input.PickupCity, input.PickupState, center.City, center.State)
	if err != nil {
		logrus.WithError(err).Warn("CreateLoad: mileage lookup failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not compute mileage, please try again later"})
		return
	}

	load := models.Load{
		PO:                   input.PO,
		Name:                 input.Name,
		PickupCity:           input.PickupCity,
		PickupState:          input.PickupState,
		DueDate:              input.DueDate,
		DayOfWeek:            input.DayOfWeek,
		Temp:                 input.Temp,
		Team:                 input.Team,
		Miles:                dist.Miles,
		Delivered:            0,
		PickupGeom:           pickupPointWKB(dist.Origin),
		UserID:               userID,
		CarrierID:            carrier.ID,
		DistributionCenterID: center.ID,
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not start transaction"})
		return
	}

	data, err := createLoadRecords(tx, &load)
	if err != nil {
		tx.Rollback()
		logrus.WithError(err).Error("CreateLoad: insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save load, please try again"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not commit transaction: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"load": load, "load_data": data})
}

// ListActiveLoads lists the authenticated user's undelivered loads
func ListActiveLoads(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var loads []models.Load
	if err := config.DB.Where("user_id = ? AND delivered = 0", userID).Order("id").Find(&loads).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing loads"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": loads})
}

// UpdatePickupLocation changes a load's pickup city/state and
// re-resolves its mileage. A lookup failure leaves the row untouched.
func UpdatePickupLocation(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	loadID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid load ID format"})
		return
	}

	var input struct {
		PickupCity  string `json:"pickup_city" binding:"required"`
		PickupState string `json:"pickup_state" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var load models.Load
	if err := config.DB.Where("id = ? AND user_id = ?", uint(loadID), userID).First(&load).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Load not found"})
		return
	}

	var center models.DistributionCenter
	if err := config.DB.Where("id = ? AND user_id = ?", load.DistributionCenterID, userID).First(&center).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load distribution center for mileage lookup"})
		return
	}

	dist, err := Mileage.Distance(input.PickupCity, input.PickupState, center.City, center.State)
	if err != nil {
		logrus.WithError(err).Warn("UpdatePickupLocation: mileage lookup failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not compute mileage, please try again later"})
		return
	}

	load.PickupCity = input.PickupCity
	load.PickupState = input.PickupState
	load.Miles = dist.Miles
	load.PickupGeom = pickupPointWKB(dist.Origin)

	if err := config.DB.Save(&load).Error; err != nil {
		logrus.WithError(err).Error("UpdatePickupLocation: save failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update load, please try again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"load": load})
}

// MarkDelivered flips the delivered flag on a load and its outcome row
func MarkDelivered(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	loadID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid load ID format"})
		return
	}

	if err := markDelivered(config.DB, userID, uint(loadID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Load not found"})
			return
		}
		logrus.WithError(err).Error("MarkDelivered: update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not mark load delivered, please try again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Load marked as delivered"})
}

// createLoadRecords inserts a Load and its paired all-zero LoadData row.
// The caller owns the transaction: both inserts land or neither does.
func createLoadRecords(tx *gorm.DB, load *models.Load) (*models.LoadData, error) {
	if err := tx.Create(load).Error; err != nil {
		return nil, err
	}

	data := &models.LoadData{
		LoadID: load.ID,
		UserID: load.UserID,
	}
	if err := tx.Create(data).Error; err != nil {
		return nil, err
	}
	return data, nil
}

// markDelivered sets delivered = 1 on a load and its LoadData row in a
// single transaction. A load without its outcome row is an integrity
// fault; the whole update rolls back so neither flag moves alone.
func markDelivered(db *gorm.DB, userID, loadID uint) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	res := tx.Model(&models.Load{}).
		Where("id = ? AND user_id = ?", loadID, userID).
		Update("delivered", 1)
	if res.Error != nil {
		tx.Rollback()
		return res.Error
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return gorm.ErrRecordNotFound
	}

	res = tx.Model(&models.LoadData{}).
		Where("load_id = ? AND user_id = ?", loadID, userID).
		Update("delivered", 1)
	if res.Error != nil {
		tx.Rollback()
		return res.Error
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return errLoadDataMissing
	}

	return tx.Commit().Error
}

// pickupPointWKB encodes a geocoded pickup location as a WKB point.
func pickupPointWKB(p *mileage.Point) []byte {
	if p == nil {
		return nil
	}
	pt := geom.NewPointFlat(geom.XY, []float64{p.Lng, p.Lat})
	pt.SetSRID(4326)
	b, err := wkb.Marshal(pt, binary.LittleEndian)
	if err != nil {
		return nil
	}
	return b
}
