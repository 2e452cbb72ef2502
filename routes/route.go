package route

import (
	"CaptionRelay/controllers"
	"CaptionRelay/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes initializes all routes
func RegisterRoutes(router *gin.Engine, captionController *controllers.CaptionController, healthController *controllers.HealthController, metricsEnabled bool) {
	handlers.RegisterHealthRoutes(router, healthController)
	handlers.RegisterCaptionRoutes(router, captionController)

	if metricsEnabled {
		handlers.RegisterMetricsRoutes(router)
	}
}
