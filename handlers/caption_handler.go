package handlers

import (
	"CaptionRelay/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterCaptionRoutes sets up the caption routes
func RegisterCaptionRoutes(router gin.IRouter, captionController *controllers.CaptionController) {
	// Both forms are registered so clients are not redirected.
	router.POST("/generate-caption/", captionController.GenerateCaption)
	router.POST("/generate-caption", captionController.GenerateCaption)
}
