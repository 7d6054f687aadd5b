package handler

import (
	"errors"
	"net/http"

	"github.com/AnTengye/jsonupload/model"
	"github.com/AnTengye/jsonupload/pkg/logger"
	"github.com/AnTengye/jsonupload/service"
	"github.com/gin-gonic/gin"
)

// FileField is the multipart field holding the uploaded document
const FileField = "file"

// room for multipart boundaries and part headers on top of the payload limit
const multipartOverhead = 64 << 10

// UploadHandler serves the JSON upload endpoint
type UploadHandler struct {
	documents *service.DocumentService
}

// NewUploadHandler creates an UploadHandler backed by documents
func NewUploadHandler(documents *service.DocumentService) *UploadHandler {
	return &UploadHandler{documents: documents}
}

// UploadJSON handles POST /upload-json
func (h *UploadHandler) UploadJSON(c *gin.Context) {
	ctx := c.Request.Context()

	if limit := h.documents.MaxBytes(); limit > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit+multipartOverhead)
	}

	file, header, err := c.Request.FormFile(FileField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			logger.Warn(ctx, "upload body too large", "limit", tooLarge.Limit)
			c.JSON(http.StatusRequestEntityTooLarge, model.ErrorResponse{Detail: "File too large"})
			return
		}
		logger.Warn(ctx, "missing upload file", "error", err)
		c.JSON(http.StatusUnprocessableEntity, model.ErrorResponse{Detail: "File is required"})
		return
	}
	defer file.Close()

	req := &model.UploadRequest{Filename: header.Filename}
	if header.Size >= 0 {
		size := header.Size
		req.Size = &size
	}

	result, err := h.documents.Process(ctx, req, file)
	if err != nil {
		status, detail := uploadErrorResponse(err)
		c.JSON(status, model.ErrorResponse{Detail: detail})
		return
	}

	c.JSON(http.StatusOK, result)
}

// uploadErrorResponse maps a processing failure to the client-visible
// status and detail. Internal causes stay in the logs.
func uploadErrorResponse(err error) (int, string) {
	var uerr *service.UploadError
	if !errors.As(err, &uerr) {
		return http.StatusInternalServerError, "Error processing JSON: internal error"
	}

	switch uerr.Kind {
	case service.KindInvalidFileType:
		return http.StatusBadRequest, "File must be a JSON file"
	case service.KindInvalidJSON:
		return http.StatusBadRequest, "Invalid JSON format"
	case service.KindPayloadTooLarge:
		return http.StatusRequestEntityTooLarge, "File too large"
	default:
		return http.StatusInternalServerError, "Error processing JSON: internal error"
	}
}
