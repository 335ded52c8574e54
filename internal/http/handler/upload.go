package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ondrasimku/upload-proxy-go/internal/domain"
	"github.com/ondrasimku/upload-proxy-go/internal/metrics"
	"github.com/ondrasimku/upload-proxy-go/internal/storage"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

type ErrorResponse struct {
	Error string `json:"error"`
}

type UploadResponse struct {
	URL string `json:"url"`
}

type UploadHandler struct {
	uploader storage.Uploader
	maxSize  int64
	messages Messages
	logger   *slog.Logger
}

func NewUploadHandler(uploader storage.Uploader, maxSize int64, messages Messages, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
		maxSize:  maxSize,
		messages: messages,
		logger:   logger,
	}
}

func (h *UploadHandler) Upload(c *gin.Context) {
	logger := h.logger.With(RequestIDKey, c.GetString(RequestIDKey))

	part, err := filePart(c.Request, "file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			logger.Warn("No file in form")
			h.fail(c, http.StatusBadRequest, metrics.OutcomeMissingFile, h.messages.FileRequired)
			return
		}
		logger.Error("Failed to parse multipart form", "error", err)
		h.fail(c, http.StatusInternalServerError, metrics.OutcomeInternal, h.internalMessage(err))
		return
	}
	defer part.Close()

	upload := domain.Upload{
		Filename:    part.FileName(),
		ContentType: part.Header.Get("Content-Type"),
	}

	// The type is known from the part header, so reject before reading the payload.
	if err := upload.Validate(h.maxSize); err != nil {
		h.reject(c, logger, upload, err)
		return
	}

	data, err := io.ReadAll(io.LimitReader(part, h.maxSize+1))
	if err != nil {
		logger.Error("Failed to read uploaded file", "error", err)
		h.fail(c, http.StatusInternalServerError, metrics.OutcomeInternal, h.internalMessage(err))
		return
	}
	upload.Data = data
	upload.Size = int64(len(data))

	if err := upload.Validate(h.maxSize); err != nil {
		h.reject(c, logger, upload, err)
		return
	}

	start := time.Now()
	fileInfo, err := h.uploader.Upload(c.Request.Context(), upload.Data, storage.UploadOptions{
		Filename:    upload.Filename,
		ContentType: upload.ContentType,
	})
	metrics.ObserveUpstream(start, len(upload.Data))

	if err != nil {
		var statusErr *storage.StatusError
		var invalidErr *storage.InvalidResponseError
		switch {
		case errors.As(err, &statusErr):
			logger.Error("Upstream upload failed", "status", statusErr.StatusCode, "body", statusErr.Body)
			h.fail(c, http.StatusBadGateway, metrics.OutcomeUpstreamStatus, h.messages.UpstreamStatus(statusErr.StatusCode))
		case errors.As(err, &invalidErr):
			logger.Error("Invalid upstream response", "body", invalidErr.Body)
			h.fail(c, http.StatusBadGateway, metrics.OutcomeUpstreamInvalid, h.messages.InvalidResponse)
		default:
			logger.Error("Upload error", "error", err)
			h.fail(c, http.StatusInternalServerError, metrics.OutcomeInternal, h.internalMessage(err))
		}
		return
	}

	metrics.ObserveOutcome(metrics.OutcomeOK)
	logger.Info("File uploaded successfully", "url", fileInfo.URL, "size", fileInfo.Size)
	c.JSON(http.StatusOK, UploadResponse{URL: fileInfo.URL})
}

func (h *UploadHandler) reject(c *gin.Context, logger *slog.Logger, upload domain.Upload, err error) {
	switch {
	case errors.Is(err, domain.ErrUnsupportedType):
		logger.Warn("Unsupported MIME type", "contentType", upload.ContentType)
		h.fail(c, http.StatusBadRequest, metrics.OutcomeUnsupportedType, h.messages.UnsupportedType)
	case errors.Is(err, domain.ErrFileTooLarge):
		logger.Warn("File too large", "size", upload.Size, "max", h.maxSize)
		h.fail(c, http.StatusBadRequest, metrics.OutcomeTooLarge, h.messages.FileTooLarge)
	default:
		h.fail(c, http.StatusInternalServerError, metrics.OutcomeInternal, h.internalMessage(err))
	}
}

func (h *UploadHandler) fail(c *gin.Context, status int, outcome, message string) {
	metrics.ObserveOutcome(outcome)
	c.JSON(status, ErrorResponse{Error: message})
}

func (h *UploadHandler) internalMessage(err error) string {
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return h.messages.Internal
}
