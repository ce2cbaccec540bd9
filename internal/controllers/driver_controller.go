package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"fleetflow/internal/config"
	"fleetflow/internal/models"
)

func ListDrivers(c *gin.Context) {
	var drivers []models.Driver
	if err := config.DB.Find(&drivers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing drivers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": drivers})
}

func CreateDriver(c *gin.Context) {
	var input struct {
		Name            string                 `json:"name" binding:"required"`
		LicenseNumber   string                 `json:"license_number" binding:"required"`
		LicenseCategory models.VehicleCategory `json:"license_category"`
		LicenseExpiry   time.Time              `json:"license_expiry" binding:"required"`
		Status          models.DriverStatus    `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver input: " + err.Error()})
		return
	}

	if input.LicenseCategory == "" {
		input.LicenseCategory = models.CategoryVan
	}
	if !input.LicenseCategory.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid license category"})
		return
	}
	if input.Status == "" {
		input.Status = models.DriverOnDuty
	}
	if !input.Status.Valid() || input.Status == models.DriverOnTrip {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver status"})
		return
	}

	driver := models.Driver{
		Name:            input.Name,
		LicenseNumber:   input.LicenseNumber,
		LicenseCategory: input.LicenseCategory,
		LicenseExpiry:   input.LicenseExpiry,
		SafetyScore:     100,
		Status:          input.Status,
	}
	if err := config.DB.Create(&driver).Error; err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"error": "license number already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create driver"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"driver": driver})
}

// driverPatch has no counter or score fields: trip counters only move inside
// dispatch/complete transactions, and the safety score has its own endpoint.
type driverPatch struct {
	Name            *string                 `json:"name"`
	LicenseNumber   *string                 `json:"license_number"`
	LicenseCategory *models.VehicleCategory `json:"license_category"`
	LicenseExpiry   *time.Time              `json:"license_expiry"`
	Status          *models.DriverStatus    `json:"status"`
}

func UpdateDriver(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var driver models.Driver
	if err := config.DB.First(&driver, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
		return
	}

	var patch driverPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update"})
		return
	}

	if patch.Status != nil {
		if !patch.Status.Valid() || *patch.Status == models.DriverOnTrip {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver status"})
			return
		}
		if driver.Status == models.DriverOnTrip {
			c.JSON(http.StatusConflict, gin.H{"error": "driver is reserved by an open trip"})
			return
		}
		driver.Status = *patch.Status
	}
	if patch.LicenseCategory != nil {
		if !patch.LicenseCategory.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid license category"})
			return
		}
		driver.LicenseCategory = *patch.LicenseCategory
	}
	if patch.Name != nil {
		driver.Name = *patch.Name
	}
	if patch.LicenseNumber != nil {
		driver.LicenseNumber = *patch.LicenseNumber
	}
	if patch.LicenseExpiry != nil {
		driver.LicenseExpiry = *patch.LicenseExpiry
	}

	if err := config.DB.Save(&driver).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update driver"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"driver": driver})
}

// RateDriver sets the safety score directly, clamped to [0,100].
func RateDriver(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var driver models.Driver
	if err := config.DB.First(&driver, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
		return
	}

	var body struct {
		SafetyScore *float64 `json:"safety_score" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "safety_score is required"})
		return
	}

	score := *body.SafetyScore
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	driver.SafetyScore = score

	if err := config.DB.Save(&driver).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update driver"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"driver": driver})
}

func DeleteDriver(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var driver models.Driver
	if err := config.DB.First(&driver, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
		return
	}

	config.DB.Delete(&driver)
	c.JSON(http.StatusOK, gin.H{"message": "Driver removed"})
}
