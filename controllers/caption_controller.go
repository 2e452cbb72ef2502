package controllers

import (
	"CaptionRelay/models"
	"CaptionRelay/services"
	"CaptionRelay/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CaptionController struct {
	CaptionService *services.CaptionService
}

// NewCaptionController initializes CaptionController with the service layer
func NewCaptionController(captionService *services.CaptionService) *CaptionController {
	return &CaptionController{
		CaptionService: captionService,
	}
}

// GenerateCaption relays the prompt and answers with the provider's text.
func (c *CaptionController) GenerateCaption(ctx *gin.Context) {
	var req models.CaptionRequest

	// Bind JSON request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		_ = ctx.Error(utils.WrapCustomError(http.StatusBadRequest, "Invalid request format", err))
		return
	}

	caption, err := c.CaptionService.GenerateCaption(ctx.Request.Context(), req.Prompt)
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, models.CaptionResponse{Caption: caption})
}
