package handler

import "fmt"

// Messages holds the user-facing error strings for one locale.
type Messages struct {
	FileRequired         string
	UnsupportedType      string
	FileTooLarge         string
	// UpstreamStatusFormat takes the upstream HTTP status as its only verb.
	UpstreamStatusFormat string
	InvalidResponse      string
	Internal             string
}

// UpstreamStatus renders the message for a non-2xx upstream answer.
func (m Messages) UpstreamStatus(status int) string {
	return fmt.Sprintf(m.UpstreamStatusFormat, status)
}

var catalog = map[string]Messages{
	"en": {
		FileRequired:         "File diperlukan",
		UnsupportedType:      "Unsupported file format. Use JPG/PNG/WEBP for images or MP4/MOV/WEBM for video.",
		FileTooLarge:         "File too large. Maximum 200MB (serverless limit 6MB).",
		UpstreamStatusFormat: "Upload failed (%d). If file > 6MB this is a server limit; try a direct URL instead.",
		InvalidResponse:      "Upload failed — invalid response from storage.",
		Internal:             "Upload failed completely. Try using a direct URL instead.",
	},
	"id": {
		FileRequired:         "File diperlukan",
		UnsupportedType:      "Format file tidak didukung. Gunakan JPG/PNG/WEBP untuk gambar atau MP4/MOV/WEBM untuk video.",
		FileTooLarge:         "Ukuran file terlalu besar. Maksimal 200MB (limit serverless 6MB).",
		UpstreamStatusFormat: "Upload ke server gagal (%d). Jika file > 6MB, ini adalah limit server. Coba gunakan link URL langsung.",
		InvalidResponse:      "Upload gagal — response tidak valid dari penyimpanan.",
		Internal:             "Upload gagal total. Coba gunakan link URL langsung.",
	},
}

// MessagesFor returns the catalog for locale, falling back to English.
func MessagesFor(locale string) Messages {
	if m, ok := catalog[locale]; ok {
		return m
	}
	return catalog["en"]
}
