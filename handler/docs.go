package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	DocsPath    = "/docs"
	OpenAPIPath = "/openapi.json"

	APITitle       = "JSON File Upload API"
	APIDescription = "API for uploading JSON files"
	APIVersion     = "1.0.0"
)

const swaggerPage = `<!DOCTYPE html>
<html>
<head>
<title>` + APITitle + ` - Swagger UI</title>
<meta charset="utf-8">
<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
<script>
SwaggerUIBundle({url: "` + OpenAPIPath + `", dom_id: "#swagger-ui"});
</script>
</body>
</html>
`

// Docs serves the interactive API documentation page
func Docs(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(swaggerPage))
}

// OpenAPI serves the OpenAPI document
func OpenAPI(c *gin.Context) {
	c.JSON(http.StatusOK, openAPIDocument())
}

func errorSchemaRef() gin.H {
	return gin.H{"$ref": "#/components/schemas/ErrorResponse"}
}

func jsonContent(schema gin.H) gin.H {
	return gin.H{"application/json": gin.H{"schema": schema}}
}

func errorResponse(description string) gin.H {
	return gin.H{"description": description, "content": jsonContent(errorSchemaRef())}
}

func openAPIDocument() gin.H {
	return gin.H{
		"openapi": "3.1.0",
		"info": gin.H{
			"title":       APITitle,
			"description": APIDescription,
			"version":     APIVersion,
		},
		"paths": gin.H{
			"/": gin.H{
				"get": gin.H{
					"summary": "Root",
					"responses": gin.H{
						"200": gin.H{
							"description": "Welcome message",
							"content":     jsonContent(gin.H{"$ref": "#/components/schemas/RootResponse"}),
						},
					},
				},
			},
			"/upload-json": gin.H{
				"post": gin.H{
					"summary": "Upload Json",
					"parameters": []gin.H{{
						"name":     "x-password",
						"in":       "header",
						"required": true,
						"schema":   gin.H{"type": "string"},
					}},
					"requestBody": gin.H{
						"required": true,
						"content": gin.H{
							"multipart/form-data": gin.H{
								"schema": gin.H{
									"type":     "object",
									"required": []string{FileField},
									"properties": gin.H{
										FileField: gin.H{"type": "string", "format": "binary"},
									},
								},
							},
						},
					},
					"responses": gin.H{
						"200": gin.H{
							"description": "Parsed JSON document",
							"content":     jsonContent(gin.H{"$ref": "#/components/schemas/UploadResult"}),
						},
						"400": errorResponse("Wrong file type or invalid JSON"),
						"401": errorResponse("Invalid password"),
						"413": errorResponse("File too large"),
						"422": errorResponse("File is required"),
						"500": errorResponse("Error processing JSON"),
					},
				},
			},
		},
		"components": gin.H{
			"schemas": gin.H{
				"RootResponse": gin.H{
					"type": "object",
					"properties": gin.H{
						"message": gin.H{"type": "string"},
						"docs":    gin.H{"type": "string"},
					},
				},
				"UploadResult": gin.H{
					"type": "object",
					"properties": gin.H{
						"message":  gin.H{"type": "string"},
						"filename": gin.H{"type": "string"},
						"data":     gin.H{},
					},
				},
				"ErrorResponse": gin.H{
					"type": "object",
					"properties": gin.H{
						"detail": gin.H{"type": "string"},
					},
				},
			},
		},
	}
}
