package routes

import (
	"fleetflow/internal/auth"
	"fleetflow/internal/controllers"
	"fleetflow/internal/middleware"

	"github.com/gin-gonic/gin"
)

func DriverRoutes(r *gin.Engine) {
	drivers := r.Group("/api/drivers")
	{
		drivers.GET("/", middleware.RequireCapability(auth.OpListDrivers), controllers.ListDrivers)
		drivers.POST("/", middleware.RequireCapability(auth.OpCreateDriver), controllers.CreateDriver)
		drivers.PUT("/:id", middleware.RequireCapability(auth.OpUpdateDriver), controllers.UpdateDriver)
		drivers.PUT("/:id/rating", middleware.RequireCapability(auth.OpRateDriver), controllers.RateDriver)
		drivers.DELETE("/:id", middleware.RequireCapability(auth.OpDeleteDriver), controllers.DeleteDriver)
	}
}
