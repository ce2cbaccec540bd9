package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	AuthRoutes(r)
	VehicleRoutes(r)
	DriverRoutes(r)
	TripRoutes(r)
	MaintenanceRoutes(r)
	ExpenseRoutes(r)
	AnalyticsRoutes(r)

	return r
}
