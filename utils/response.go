package utils

import "github.com/gin-gonic/gin"

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "requestId"

// ErrorResponse aborts the request with the standard error payload.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{
		"statusCode": statusCode,
		"message":    message,
		"requestId":  c.GetString(RequestIDKey),
	})
}
