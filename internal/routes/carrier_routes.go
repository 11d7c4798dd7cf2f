package routes

import (
	"freight_ledger/internal/controllers"
	"freight_ledger/internal/middleware"

	"github.com/gin-gonic/gin"
)

func CarrierRoutes(r *gin.Engine) {
	carriers := r.Group("/carriers")
	carriers.Use(middleware.RequireAuth())
	{
		carriers.POST("", controllers.CreateCarrier)
		carriers.GET("", controllers.ListCarriers)
		carriers.GET("/:id/loads", controllers.ListCarrierLoads)
	}
}
