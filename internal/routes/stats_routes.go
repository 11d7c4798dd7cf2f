package routes

import (
	"freight_ledger/internal/controllers"
	"freight_ledger/internal/middleware"

	"github.com/gin-gonic/gin"
)

func StatsRoutes(r *gin.Engine) {
	stats := r.Group("/stats")
	stats.Use(middleware.RequireAuth())
	{
		stats.GET("", controllers.GetStats)
	}
}
