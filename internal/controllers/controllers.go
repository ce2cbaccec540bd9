package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"fleetflow/internal/apperr"
	"fleetflow/internal/repository"
	"fleetflow/internal/services"
)

var (
	tripSvc        *services.TripService
	maintenanceSvc *services.MaintenanceService
	analyticsSvc   *services.AnalyticsService
)

// Init wires the lifecycle services to the shared database handle. Must be
// called once before the router starts serving.
func Init(db *gorm.DB) {
	store := repository.NewFleetStore(db)
	tripSvc = services.NewTripService(store, time.Now)
	maintenanceSvc = services.NewMaintenanceService(store, time.Now)
	analyticsSvc = services.NewAnalyticsService(store, time.Now)
}

// respondError maps the error taxonomy onto HTTP statuses. Store failures
// stay opaque to the caller.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.NotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.Conflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.Invalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logrus.WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
	}
}

// paramID parses the :id route parameter. A non-numeric id aborts with 400.
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
