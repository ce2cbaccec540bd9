package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fleetflow/internal/config"
	"fleetflow/internal/models"
)

func ListMaintenanceLogs(c *gin.Context) {
	var logs []models.MaintenanceLog
	if err := config.DB.Order("date DESC").Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing maintenance logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": logs})
}

// LogMaintenance records a maintenance event and moves the vehicle into the
// shop.
func LogMaintenance(c *gin.Context) {
	var input struct {
		VehicleID   uint      `json:"vehicle_id" binding:"required"`
		Description string    `json:"description" binding:"required"`
		Cost        float64   `json:"cost"`
		Date        time.Time `json:"date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maintenance input: " + err.Error()})
		return
	}

	log, err := maintenanceSvc.Log(c.Request.Context(), input.VehicleID, input.Description, input.Cost, input.Date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"log": log})
}

// CompleteMaintenance releases the vehicle, converts the log's cost into an
// expense entry and removes the log.
func CompleteMaintenance(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := maintenanceSvc.Complete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Maintenance completed"})
}
