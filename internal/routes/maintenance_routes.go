package routes

import (
	"fleetflow/internal/auth"
	"fleetflow/internal/controllers"
	"fleetflow/internal/middleware"

	"github.com/gin-gonic/gin"
)

func MaintenanceRoutes(r *gin.Engine) {
	maintenance := r.Group("/api/maintenance")
	{
		maintenance.GET("/", middleware.RequireCapability(auth.OpListMaintenance), controllers.ListMaintenanceLogs)
		maintenance.POST("/", middleware.RequireCapability(auth.OpLogMaintenance), controllers.LogMaintenance)
		maintenance.POST("/:id/complete", middleware.RequireCapability(auth.OpCompleteMaintenance), controllers.CompleteMaintenance)
	}
}
