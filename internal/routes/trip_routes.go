package routes

import (
	"fleetflow/internal/auth"
	"fleetflow/internal/controllers"
	"fleetflow/internal/middleware"

	"github.com/gin-gonic/gin"
)

func TripRoutes(r *gin.Engine) {
	trips := r.Group("/api/trips")
	{
		trips.GET("/", middleware.RequireCapability(auth.OpListTrips), controllers.ListTrips)
		trips.POST("/", middleware.RequireCapability(auth.OpDispatchTrip), controllers.DispatchTrip)
		trips.POST("/:id/complete", middleware.RequireCapability(auth.OpCompleteTrip), controllers.CompleteTrip)
		trips.PUT("/:id", middleware.RequireCapability(auth.OpUpdateTrip), controllers.UpdateTrip)
		trips.DELETE("/:id", middleware.RequireCapability(auth.OpDeleteTrip), controllers.DeleteTrip)
	}
}
