package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"fleetflow/internal/config"
	"fleetflow/internal/models"
)

func ListVehicles(c *gin.Context) {
	var vehicles []models.Vehicle
	if err := config.DB.Find(&vehicles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing vehicles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": vehicles})
}

func CreateVehicle(c *gin.Context) {
	var input struct {
		Name            string                 `json:"name" binding:"required"`
		ModelName       string                 `json:"model" binding:"required"`
		Category        models.VehicleCategory `json:"category"`
		LicensePlate    string                 `json:"license_plate" binding:"required"`
		MaxCapacity     float64                `json:"max_capacity" binding:"required"`
		Odometer        float64                `json:"odometer"`
		AcquisitionCost float64                `json:"acquisition_cost"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle input: " + err.Error()})
		return
	}

	if input.Category == "" {
		input.Category = models.CategoryVan
	}
	if !input.Category.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle category"})
		return
	}

	vehicle := models.Vehicle{
		Name:            input.Name,
		ModelName:       input.ModelName,
		Category:        input.Category,
		LicensePlate:    input.LicensePlate,
		MaxCapacity:     input.MaxCapacity,
		Odometer:        input.Odometer,
		AcquisitionCost: input.AcquisitionCost,
		Status:          models.VehicleAvailable,
	}
	if err := config.DB.Create(&vehicle).Error; err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"error": "license plate already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vehicle"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"vehicle": vehicle})
}

// vehiclePatch deliberately has no On Trip / In Shop status values: those are
// owned by the trip lifecycle engine and the maintenance workflow.
type vehiclePatch struct {
	Name            *string                 `json:"name"`
	ModelName       *string                 `json:"model"`
	Category        *models.VehicleCategory `json:"category"`
	LicensePlate    *string                 `json:"license_plate"`
	MaxCapacity     *float64                `json:"max_capacity"`
	Odometer        *float64                `json:"odometer"`
	AcquisitionCost *float64                `json:"acquisition_cost"`
	Status          *models.VehicleStatus   `json:"status"`
}

func UpdateVehicle(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var vehicle models.Vehicle
	if err := config.DB.First(&vehicle, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}

	var patch vehiclePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update"})
		return
	}

	if patch.Status != nil {
		if *patch.Status != models.VehicleAvailable && *patch.Status != models.VehicleOutOfService {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status can only be set to Available or Out of Service"})
			return
		}
		if vehicle.Status == models.VehicleOnTrip || vehicle.Status == models.VehicleInShop {
			c.JSON(http.StatusConflict, gin.H{"error": "vehicle is reserved by an open trip or maintenance"})
			return
		}
		vehicle.Status = *patch.Status
	}
	if patch.Odometer != nil {
		if *patch.Odometer < vehicle.Odometer {
			c.JSON(http.StatusBadRequest, gin.H{"error": "odometer cannot decrease"})
			return
		}
		vehicle.Odometer = *patch.Odometer
	}
	if patch.Category != nil {
		if !patch.Category.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle category"})
			return
		}
		vehicle.Category = *patch.Category
	}
	if patch.Name != nil {
		vehicle.Name = *patch.Name
	}
	if patch.ModelName != nil {
		vehicle.ModelName = *patch.ModelName
	}
	if patch.LicensePlate != nil {
		vehicle.LicensePlate = *patch.LicensePlate
	}
	if patch.MaxCapacity != nil {
		vehicle.MaxCapacity = *patch.MaxCapacity
	}
	if patch.AcquisitionCost != nil {
		vehicle.AcquisitionCost = *patch.AcquisitionCost
	}

	if err := config.DB.Save(&vehicle).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vehicle"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicle": vehicle})
}

func DeleteVehicle(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var vehicle models.Vehicle
	if err := config.DB.First(&vehicle, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}

	config.DB.Delete(&vehicle)
	c.JSON(http.StatusOK, gin.H{"message": "Vehicle removed"})
}
