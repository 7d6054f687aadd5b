package handler

import (
	"net/http"
	"time"

	"github.com/AnTengye/jsonupload/model"
	"github.com/AnTengye/jsonupload/pkg/logger"
	"github.com/gin-gonic/gin"
)

// Root serves the welcome message
func Root(c *gin.Context) {
	logger.Info(c.Request.Context(), "root endpoint accessed")

	c.JSON(http.StatusOK, model.RootResponse{
		Message: model.MessageWelcome,
		Docs:    DocsPath,
	})
}

// Health reports liveness with the current server time
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
