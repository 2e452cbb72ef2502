package handlers

import (
	"CaptionRelay/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterHealthRoutes(router gin.IRouter, healthController *controllers.HealthController) {
	router.GET("/", healthController.Home)
	router.HEAD("/", healthController.Home)
}
