package handlers

import (
	"CaptionRelay/metrics"

	"github.com/gin-gonic/gin"
)

func RegisterMetricsRoutes(router gin.IRouter) {
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
}
