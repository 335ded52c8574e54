package storage

import (
	"context"
	"fmt"
)

type UploadOptions struct {
	Filename    string
	ContentType string
}

type FileInfo struct {
	URL  string
	Size int64
}

// Uploader hands a payload to a remote host and returns where it can be fetched.
type Uploader interface {
	Upload(ctx context.Context, data []byte, opts UploadOptions) (FileInfo, error)
}

// StatusError is returned when the remote host answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}

// InvalidResponseError is returned when a 2xx body is not a usable URL.
type InvalidResponseError struct {
	Body string
}

func (e *InvalidResponseError) Error() string {
	return "upstream returned an invalid response"
}
