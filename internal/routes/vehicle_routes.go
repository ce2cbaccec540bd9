package routes

import (
	"fleetflow/internal/auth"
	"fleetflow/internal/controllers"
	"fleetflow/internal/middleware"

	"github.com/gin-gonic/gin"
)

func VehicleRoutes(r *gin.Engine) {
	vehicles := r.Group("/api/vehicles")
	{
		vehicles.GET("/", middleware.RequireCapability(auth.OpListVehicles), controllers.ListVehicles)
		vehicles.POST("/", middleware.RequireCapability(auth.OpCreateVehicle), controllers.CreateVehicle)
		vehicles.PUT("/:id", middleware.RequireCapability(auth.OpUpdateVehicle), controllers.UpdateVehicle)
		vehicles.DELETE("/:id", middleware.RequireCapability(auth.OpDeleteVehicle), controllers.DeleteVehicle)
	}
}
