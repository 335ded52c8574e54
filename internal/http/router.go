package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/ondrasimku/upload-proxy-go/internal/config"
	"github.com/ondrasimku/upload-proxy-go/internal/domain"
	"github.com/ondrasimku/upload-proxy-go/internal/http/handler"
	"github.com/ondrasimku/upload-proxy-go/internal/storage"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(uploader storage.Uploader, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(RequestID(), RequestLogger(logger), Recovery(logger, handler.MessagesFor(cfg.Locale)))

	healthHandler := handler.NewHealthHandler()
	uploadHandler := handler.NewUploadHandler(uploader, domain.MaxFileSize, handler.MessagesFor(cfg.Locale), logger)

	router.GET("/healthz", healthHandler.Health)

	if cfg.Metrics.Enabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	api := router.Group("/api")
	{
		api.POST("/upload", uploadHandler.Upload)
	}

	return router
}
