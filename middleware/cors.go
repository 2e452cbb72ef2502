package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS builds the cross-origin policy. With allowAll every origin is echoed
// back instead of sending "*", which browsers reject for credentialed requests.
func CORS(origins []string, allowAll bool) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if allowAll {
		config.AllowOriginFunc = func(origin string) bool { return true }
	} else {
		config.AllowOrigins = origins
	}

	return cors.New(config)
}
