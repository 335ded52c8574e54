package handler

import (
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
)

// filePart returns the first part named field that is sent as a file.
// A part counts as a file when its Content-Disposition carries a filename
// parameter, even an empty one. Parts without it are plain form values.
func filePart(r *http.Request, field string) (*multipart.Part, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		return nil, err
	}

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return nil, http.ErrMissingFile
		}
		if err != nil {
			return nil, err
		}

		if part.FormName() == field && hasFilename(part) {
			return part, nil
		}
		part.Close()
	}
}

func hasFilename(part *multipart.Part) bool {
	_, params, err := mime.ParseMediaType(part.Header.Get("Content-Disposition"))
	if err != nil {
		return false
	}
	_, ok := params["filename"]
	return ok
}
