package main

import (
	"log"
	"net/http"
	"os"

	"fleetflow/internal/config"
	"fleetflow/internal/controllers"
	"fleetflow/internal/logger"
	"fleetflow/internal/middleware"
	"fleetflow/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database and optional cache
	config.InitDB()
	config.InitCache()

	// Wire the lifecycle services
	controllers.Init(config.DB)

	// Setup Gin router
	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚚 Server running at :%s", port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+port, handler))
}
