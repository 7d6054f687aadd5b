package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/AnTengye/jsonupload/config"
	"github.com/AnTengye/jsonupload/model"
	"github.com/AnTengye/jsonupload/pkg/logger"
)

// JSONSuffix is the only accepted filename suffix; matched case-sensitively
const JSONSuffix = ".json"

var (
	errInvalidUTF8  = errors.New("payload is not valid UTF-8")
	errTrailingData = errors.New("unexpected data after top-level JSON value")
)

// DocumentService validates and parses uploaded JSON documents. It holds
// no per-request state and is safe for concurrent use.
type DocumentService struct {
	maxBytes int64
}

func NewDocumentService(cfg *config.UploadConfig) *DocumentService {
	return &DocumentService{maxBytes: cfg.MaxBytes}
}

// MaxBytes returns the largest accepted payload; zero or negative means
// unlimited
func (s *DocumentService) MaxBytes() int64 {
	return s.maxBytes
}

// Process checks the filename, reads the payload and parses it. Failures
// are always returned as *UploadError.
func (s *DocumentService) Process(ctx context.Context, req *model.UploadRequest, payload io.Reader) (*model.UploadResult, error) {
	logger.Info(ctx, "file upload",
		"upload_time", time.Now().Format(time.RFC3339),
		"filename", req.Filename,
		"size", req.SizeString(),
	)

	if !strings.HasSuffix(req.Filename, JSONSuffix) {
		logger.Error(ctx, "invalid file type",
			"filename", req.Filename,
			"size", req.SizeString(),
		)
		return nil, newUploadError(KindInvalidFileType, nil)
	}

	content, err := s.readPayload(payload)
	if err != nil {
		var uerr *UploadError
		if errors.As(err, &uerr) {
			logger.Error(ctx, "payload too large",
				"filename", req.Filename,
				"size", req.SizeString(),
				"max_bytes", s.maxBytes,
			)
			return nil, err
		}
		logger.Error(ctx, "error processing file",
			"filename", req.Filename,
			"size", req.SizeString(),
			"error", err,
		)
		return nil, newUploadError(KindInternal, err)
	}

	data, err := ParseDocument(content)
	if err != nil {
		logger.Error(ctx, "invalid JSON format",
			"filename", req.Filename,
			"size", req.SizeString(),
			"error", err,
		)
		return nil, newUploadError(KindInvalidJSON, err)
	}

	logger.Info(ctx, "successfully parsed JSON file",
		"filename", req.Filename,
		"size", req.SizeString(),
	)

	return &model.UploadResult{
		Message:  model.MessageProcessed,
		Filename: req.Filename,
		Data:     data,
	}, nil
}

func (s *DocumentService) readPayload(r io.Reader) ([]byte, error) {
	if s.maxBytes <= 0 {
		content, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read payload: %w", err)
		}
		return content, nil
	}

	content, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}
	if int64(len(content)) > s.maxBytes {
		return nil, newUploadError(KindPayloadTooLarge, fmt.Errorf("payload exceeds %d bytes", s.maxBytes))
	}
	return content, nil
}

// ParseDocument decodes payload as a single UTF-8 JSON value. Numbers are
// kept as json.Number so they re-encode exactly as received.
func ParseDocument(payload []byte) (any, error) {
	if !utf8.Valid(payload) {
		return nil, errInvalidUTF8
	}

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}
	return v, nil
}
