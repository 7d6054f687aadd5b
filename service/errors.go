package service

import "fmt"

// ErrorKind classifies why an upload was rejected
type ErrorKind int

const (
	KindInvalidFileType ErrorKind = iota + 1
	KindInvalidJSON
	KindPayloadTooLarge
	KindInternal
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidFileType:
		return "invalid_file_type"
	case KindInvalidJSON:
		return "invalid_json_format"
	case KindPayloadTooLarge:
		return "payload_too_large"
	case KindInternal:
		return "internal_processing_error"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// UploadError carries the failure kind for one upload together with the
// underlying cause, if any
type UploadError struct {
	Kind ErrorKind
	Err  error
}

func (e *UploadError) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

func newUploadError(kind ErrorKind, err error) *UploadError {
	return &UploadError{Kind: kind, Err: err}
}
