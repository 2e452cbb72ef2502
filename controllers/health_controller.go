package controllers

import (
	"CaptionRelay/models"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Message string
}

func NewHealthController(message string) *HealthController {
	return &HealthController{Message: message}
}

// Home is the liveness check; it never touches the provider.
func (h *HealthController) Home(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, models.StatusResponse{Message: h.Message})
}
