package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/AnTengye/jsonupload/model"
	"github.com/AnTengye/jsonupload/pkg/logger"
	"github.com/gin-gonic/gin"
)

// PasswordHeader carries the shared secret on protected routes
const PasswordHeader = "X-Password"

// PasswordAuth admits a request only when its X-Password header equals
// secret. The attempted value is never logged.
func PasswordAuth(secret string) gin.HandlerFunc {
	expected := []byte(secret)

	return func(c *gin.Context) {
		if !CheckPassword(expected, c.GetHeader(PasswordHeader)) {
			logger.Warn(c.Request.Context(), "invalid password attempt",
				"client_ip", c.ClientIP(),
				"path", c.Request.URL.Path,
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{Detail: "Invalid password"})
			return
		}

		c.Next()
	}
}

// CheckPassword compares in constant time. An empty expected secret never
// matches.
func CheckPassword(expected []byte, got string) bool {
	if len(expected) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(expected, []byte(got)) == 1
}
