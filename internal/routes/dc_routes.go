package routes

import (
	"freight_ledger/internal/controllers"
	"freight_ledger/internal/middleware"

	"github.com/gin-gonic/gin"
)

func DistributionCenterRoutes(r *gin.Engine) {
	dcs := r.Group("/dcs")
	dcs.Use(middleware.RequireAuth())
	{
		dcs.POST("", controllers.CreateDistributionCenter)
		dcs.GET("", controllers.ListDistributionCenters)
		dcs.GET("/:id/loads", controllers.ListDistributionCenterLoads)
	}
}
