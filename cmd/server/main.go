package main

import (
	"log"
	"net/http"

	"freight_ledger/internal/config"
	"freight_ledger/internal/controllers"
	"freight_ledger/internal/logger"
	"freight_ledger/internal/middleware"
	"freight_ledger/internal/mileage"
	"freight_ledger/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	config.InitDB()

	// Distance API client for load mileage
	controllers.Mileage = mileage.NewClient()

	// Setup Gin router
	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Println("🚚 Server running at :8080")
	log.Fatal(http.ListenAndServe("0.0.0.0:8080", handler))
}
