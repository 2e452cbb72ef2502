package middleware

import (
	"CaptionRelay/utils"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorHandlerMiddleware writes the error response for the last error a
// handler attached to the context.
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		var customErr *utils.CustomError
		if errors.As(err, &customErr) {
			utils.ErrorResponse(c, customErr.StatusCode, customErr.Message)
			return
		}

		// Jika bukan CustomError, anggap sebagai Internal Server Error
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal Server Error")
	}
}
