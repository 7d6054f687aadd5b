package model

import "strconv"

// UploadRequest describes one uploaded file for the lifetime of a request
type UploadRequest struct {
	Filename string
	Size     *int64 // nil when the transport did not report a size
}

// SizeString renders Size for log lines
func (r *UploadRequest) SizeString() string {
	if r.Size == nil {
		return "unknown"
	}
	return strconv.FormatInt(*r.Size, 10)
}

// UploadResult is returned for a successfully parsed upload
type UploadResult struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
	Data     any    `json:"data"`
}

// ErrorResponse is the body of every error response
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// RootResponse is the welcome body served at /
type RootResponse struct {
	Message string `json:"message"`
	Docs    string `json:"docs"`
}

const (
	MessageProcessed = "JSON file processed successfully"
	MessageWelcome   = "Welcome to the JSON File Upload API. Use /upload-json to upload a JSON file."
)
