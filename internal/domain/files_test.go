package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ondrasimku/upload-proxy-go/internal/domain"
)

func TestUploadValidate(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		size        int64
		want        error
	}{
		{"png image", "image/png", 1024, nil},
		{"mp4 video", "video/mp4", 5 << 20, nil},
		{"exactly at ceiling", "video/webm", domain.MaxFileSize, nil},
		{"one byte over ceiling", "image/jpeg", domain.MaxFileSize + 1, domain.ErrFileTooLarge},
		{"pdf", "application/pdf", 10, domain.ErrUnsupportedType},
		{"empty type", "", 10, domain.ErrUnsupportedType},
		{"uppercase prefix is not accepted", "IMAGE/PNG", 10, domain.ErrUnsupportedType},
		{"type checked before size", "text/plain", domain.MaxFileSize + 1, domain.ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := domain.Upload{Filename: "f", ContentType: tt.contentType, Size: tt.size}
			err := u.Validate(domain.MaxFileSize)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMaxFileSize(t *testing.T) {
	assert.Equal(t, int64(209715200), domain.MaxFileSize)
}

func TestIsAcceptedType(t *testing.T) {
	assert.True(t, domain.IsAcceptedType("image/webp"))
	assert.True(t, domain.IsAcceptedType("video/quicktime"))
	assert.False(t, domain.IsAcceptedType("audio/mpeg"))
	assert.False(t, domain.IsAcceptedType("imagex/png"))
}
