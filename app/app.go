package app

import (
	"CaptionRelay/config/environment"
	"CaptionRelay/controllers"
	"CaptionRelay/logging"
	"CaptionRelay/middleware"
	route "CaptionRelay/routes"
	"CaptionRelay/services"
	"context"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// App is the relay assembled from one Config: the provider client, the
// caption service and the gin engine serving it.
type App struct {
	Config         *environment.Config
	Engine         *gin.Engine
	CaptionService *services.CaptionService
	generator      services.TextGenerator
}

// New builds the provider client and the HTTP engine. Call Close when done.
func New(ctx context.Context, cfg *environment.Config) (*App, error) {
	log := logging.GetLogger()

	generator, err := services.NewTextGenerator(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating %s provider: %w", cfg.Provider, err)
	}
	if cfg.APIKey() == "" {
		log.Warnf("⚠️  No API key set for provider %s, caption requests will fail", cfg.Provider)
	}

	captionService := services.NewCaptionService(generator, cfg.Provider, cfg.ProviderTimeout)

	log.WithFields(logrus.Fields{
		"provider": cfg.Provider,
		"model":    cfg.Model,
		"origins":  cfg.AllowedOrigins,
		"timeout":  cfg.ProviderTimeout,
	}).Info("caption relay configured")

	return &App{
		Config:         cfg,
		Engine:         NewEngine(cfg, captionService),
		CaptionService: captionService,
		generator:      generator,
	}, nil
}

// NewEngine sets up the gin router with middleware and routes.
func NewEngine(cfg *environment.Config, captionService *services.CaptionService) *gin.Engine {
	r := gin.New()

	// Recovery sits inside the logger so a panicking request still gets its line.
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logging.GetLogger()))
	r.Use(gin.Recovery())

	// Pasang middleware error handler
	r.Use(middleware.ErrorHandlerMiddleware())

	// CORS Middleware
	r.Use(middleware.CORS(cfg.AllowedOrigins, cfg.AllowAllOrigins()))

	route.RegisterRoutes(
		r,
		controllers.NewCaptionController(captionService),
		controllers.NewHealthController(cfg.LivenessMessage),
		cfg.MetricsEnabled,
	)
	return r
}

// Close releases the provider client.
func (a *App) Close() error {
	if closer, ok := a.generator.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
