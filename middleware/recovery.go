package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/AnTengye/jsonupload/model"
	"github.com/AnTengye/jsonupload/pkg/logger"
	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a logged 500 with a generic detail
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error(c.Request.Context(), "panic recovered",
					"error", err,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"stack", string(debug.Stack()),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, model.ErrorResponse{
					Detail: "Internal server error",
				})
			}
		}()

		c.Next()
	}
}
