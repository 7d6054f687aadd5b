package handler

import (
	"github.com/AnTengye/jsonupload/config"
	"github.com/AnTengye/jsonupload/middleware"
	"github.com/AnTengye/jsonupload/service"
	"github.com/gin-gonic/gin"
)

// NewRouter wires middleware and routes for the API
func NewRouter(cfg *config.Config) *gin.Engine {
	uploadHandler := NewUploadHandler(service.NewDocumentService(&cfg.Upload))

	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())

	router.GET("/", Root)
	router.GET("/health", Health)
	router.GET(DocsPath, Docs)
	router.GET(OpenAPIPath, OpenAPI)

	protected := router.Group("/")
	protected.Use(middleware.PasswordAuth(cfg.Auth.Password))
	{
		protected.POST("/upload-json", uploadHandler.UploadJSON)
	}

	return router
}
