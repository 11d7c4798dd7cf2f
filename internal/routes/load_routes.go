package routes

import (
	"freight_ledger/internal/controllers"
	"freight_ledger/internal/middleware"

	"github.com/gin-gonic/gin"
)

func LoadRoutes(r *gin.Engine) {
	loads := r.Group("/loads")
	loads.Use(middleware.RequireAuth())
	{
		loads.POST("", controllers.CreateLoad)
		loads.GET("", controllers.ListActiveLoads)
		loads.PATCH("/:id/pickup", controllers.UpdatePickupLocation)
		loads.POST("/:id/delivered", controllers.MarkDelivered)
		loads.PUT("/:id/data", controllers.RecordOutcome)
		loads.GET("/:id/data", controllers.GetLoadData)
	}
}
