// Package catbox uploads files to catbox.moe through its anonymous user API.
package catbox

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/ondrasimku/upload-proxy-go/internal/storage"
)

const (
	DefaultEndpoint = "https://catbox.moe/user/api.php"

	// The API rejects some requests that do not look like a browser.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	defaultFilename = "upload"
	urlPrefix       = "https://"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

type Client struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
}

func NewClient(endpoint, userAgent string, httpClient *http.Client) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		endpoint:   endpoint,
		userAgent:  userAgent,
		httpClient: httpClient,
	}
}

// Upload sends one request and does not retry.
func (c *Client) Upload(ctx context.Context, data []byte, opts storage.UploadOptions) (storage.FileInfo, error) {
	body, contentType, err := buildForm(data, opts)
	if err != nil {
		return storage.FileInfo{}, fmt.Errorf("failed to build upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return storage.FileInfo{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return storage.FileInfo{}, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return storage.FileInfo{}, fmt.Errorf("failed to read upstream response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return storage.FileInfo{}, &storage.StatusError{
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	// The prefix is checked on the raw body; only the returned URL is trimmed.
	raw := string(respBody)
	if !strings.HasPrefix(raw, urlPrefix) {
		return storage.FileInfo{}, &storage.InvalidResponseError{Body: raw}
	}

	return storage.FileInfo{
		URL:  strings.TrimSpace(raw),
		Size: int64(len(data)),
	}, nil
}

func buildForm(data []byte, opts storage.UploadOptions) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("reqtype", "fileupload"); err != nil {
		return nil, "", err
	}

	filename := opts.Filename
	if filename == "" {
		filename = defaultFilename
	}
	contentType := opts.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="fileToUpload"; filename="%s"`, quoteEscaper.Replace(filename)))
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", err
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return &buf, w.FormDataContentType(), nil
}
