package domain

import (
	"errors"
	"strings"
)

// MaxFileSize is the largest payload the upstream host accepts.
const MaxFileSize = int64(200 * 1024 * 1024)

var acceptedTypePrefixes = []string{"image/", "video/"}

var (
	ErrUnsupportedType = errors.New("unsupported media type")
	ErrFileTooLarge    = errors.New("file too large")
)

// Upload is a file received from a client. It lives for one request only.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

// Validate checks the declared media type first, then the size.
// The media type is trusted as sent by the client.
func (u Upload) Validate(maxSize int64) error {
	if !IsAcceptedType(u.ContentType) {
		return ErrUnsupportedType
	}
	if u.Size > maxSize {
		return ErrFileTooLarge
	}
	return nil
}

func IsAcceptedType(contentType string) bool {
	for _, prefix := range acceptedTypePrefixes {
		if strings.HasPrefix(contentType, prefix) {
			return true
		}
	}
	return false
}
