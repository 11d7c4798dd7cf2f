package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()

	// Recovery and request logging apply to every route group
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	AuthRoutes(r)
	CarrierRoutes(r)
	DistributionCenterRoutes(r)
	LoadRoutes(r)
	StatsRoutes(r)

	return r
}
