package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fleetflow/internal/config"
	"fleetflow/internal/models"
)

func ListExpenseLogs(c *gin.Context) {
	var logs []models.ExpenseLog
	if err := config.DB.Order("date DESC").Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing expense logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": logs})
}

func CreateExpenseLog(c *gin.Context) {
	// Cost carries no "required" tag: gin's required rejects the zero
	// value, and a zero-cost entry (warranty work, comped fuel) is legal.
	var input struct {
		TripID    *uint     `json:"trip_id"`
		VehicleID uint      `json:"vehicle_id" binding:"required"`
		Liters    float64   `json:"liters"`
		Cost      float64   `json:"cost"`
		Date      time.Time `json:"date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense input: " + err.Error()})
		return
	}

	if input.Cost < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cost cannot be negative"})
		return
	}
	if input.Date.IsZero() {
		input.Date = time.Now()
	}

	log := models.ExpenseLog{
		TripID:    input.TripID,
		VehicleID: input.VehicleID,
		Liters:    input.Liters,
		Cost:      input.Cost,
		Date:      input.Date,
	}
	if err := config.DB.Create(&log).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create expense log"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"log": log})
}

type expensePatch struct {
	TripID    *uint      `json:"trip_id"`
	VehicleID *uint      `json:"vehicle_id"`
	Liters    *float64   `json:"liters"`
	Cost      *float64   `json:"cost"`
	Date      *time.Time `json:"date"`
}

func UpdateExpenseLog(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var log models.ExpenseLog
	if err := config.DB.First(&log, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Log not found"})
		return
	}

	var patch expensePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update"})
		return
	}

	if patch.TripID != nil {
		log.TripID = patch.TripID
	}
	if patch.VehicleID != nil {
		log.VehicleID = *patch.VehicleID
	}
	if patch.Liters != nil {
		log.Liters = *patch.Liters
	}
	if patch.Cost != nil {
		log.Cost = *patch.Cost
	}
	if patch.Date != nil {
		log.Date = *patch.Date
	}

	if err := config.DB.Save(&log).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update expense log"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"log": log})
}

func DeleteExpenseLog(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var log models.ExpenseLog
	if err := config.DB.First(&log, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Log not found"})
		return
	}

	config.DB.Delete(&log)
	c.JSON(http.StatusOK, gin.H{"message": "Log removed"})
}
