package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetflow/internal/config"
	"fleetflow/internal/models"
	"fleetflow/internal/services"
)

func ListTrips(c *gin.Context) {
	var trips []models.Trip
	if err := config.DB.Order("created_at DESC").Find(&trips).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing trips"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": trips})
}

// DispatchTrip creates a trip and reserves its vehicle and driver in one
// operation; every compliance check lives in the service.
func DispatchTrip(c *gin.Context) {
	var input struct {
		VehicleID   uint    `json:"vehicle_id" binding:"required"`
		DriverID    uint    `json:"driver_id" binding:"required"`
		CargoWeight float64 `json:"cargo_weight"`
		Origin      string  `json:"origin" binding:"required"`
		Destination string  `json:"destination" binding:"required"`
		Revenue     float64 `json:"revenue"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip input: " + err.Error()})
		return
	}

	trip, err := tripSvc.Dispatch(c.Request.Context(), services.DispatchInput{
		VehicleID:   input.VehicleID,
		DriverID:    input.DriverID,
		CargoWeight: input.CargoWeight,
		Origin:      input.Origin,
		Destination: input.Destination,
		Revenue:     input.Revenue,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"trip": trip})
}

func CompleteTrip(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	// The body is optional; a missing final odometer leaves the reading as-is.
	var input struct {
		FinalOdometer *float64 `json:"final_odometer"`
	}
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	trip, err := tripSvc.Complete(c.Request.Context(), id, input.FinalOdometer)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trip completed successfully", "trip": trip})
}

func UpdateTrip(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var input struct {
		VehicleID   *uint    `json:"vehicle_id"`
		DriverID    *uint    `json:"driver_id"`
		CargoWeight *float64 `json:"cargo_weight"`
		Origin      *string  `json:"origin"`
		Destination *string  `json:"destination"`
		Revenue     *float64 `json:"revenue"`
		Status      *string  `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update: " + err.Error()})
		return
	}

	patch := services.TripPatch{
		VehicleID:   input.VehicleID,
		DriverID:    input.DriverID,
		CargoWeight: input.CargoWeight,
		Origin:      input.Origin,
		Destination: input.Destination,
		Revenue:     input.Revenue,
	}
	if input.Status != nil {
		status := models.TripStatus(*input.Status)
		patch.Status = &status
	}

	trip, err := tripSvc.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trip": trip})
}

func DeleteTrip(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := tripSvc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trip removed"})
}
