package routes

import (
	"fleetflow/internal/auth"
	"fleetflow/internal/controllers"
	"fleetflow/internal/middleware"

	"github.com/gin-gonic/gin"
)

func AnalyticsRoutes(r *gin.Engine) {
	analytics := r.Group("/api/analytics")
	{
		analytics.GET("/dashboard", middleware.RequireCapability(auth.OpViewDashboard), controllers.GetDashboardStats)
		analytics.GET("/financials", middleware.RequireCapability(auth.OpViewFinancials), controllers.GetFinancialReport)
	}
}
