package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"consulting-site/pkg/imagehost"
	"consulting-site/pkg/logger"
	"consulting-site/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// maxUploadSize is the per-file ceiling for media uploads
const maxUploadSize = 10 << 20 // 10MB

// allowedUploadTypes is the MIME allow-list for media uploads
var allowedUploadTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

var uploadClient *imagehost.Client

// InitUploadHandler initializes the upload handler with the image host client
func InitUploadHandler(client *imagehost.Client) {
	uploadClient = client
}

// UploadMedia validates and forwards a media file to the image host.
// The three failure kinds stay distinguishable: unconfigured provider
// (503), invalid file type (400) and oversized file (400) each get
// their own message.
func UploadMedia(c echo.Context) error {
	log := logger.FromContext(c)

	if uploadClient == nil || !uploadClient.Configured() {
		log.Error("Upload requested but image host is not configured")
		prometheus.RecordUpload("unconfigured")
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "Media upload provider is not configured"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		log.Warn("Upload request without file", zap.Error(err))
		prometheus.RecordUpload("missing_file")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "A file is required"})
	}
	folder := c.FormValue("folder")

	if fileHeader.Size > maxUploadSize {
		log.Warn("Oversized upload rejected",
			zap.String("file_name", fileHeader.Filename),
			zap.Int64("size", fileHeader.Size))
		prometheus.RecordUpload("oversized")
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": fmt.Sprintf("File exceeds the %dMB size limit", maxUploadSize>>20),
		})
	}

	contentType := strings.ToLower(fileHeader.Header.Get("Content-Type"))
	if _, ok := allowedUploadTypes[contentType]; !ok {
		log.Warn("Upload with disallowed type rejected",
			zap.String("file_name", fileHeader.Filename),
			zap.String("content_type", contentType))
		prometheus.RecordUpload("invalid_type")
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid file type, allowed types are jpeg, jpg, png, gif, webp",
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		log.Error("Failed to open uploaded file", zap.Error(err))
		prometheus.RecordUpload("error")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to read uploaded file"})
	}
	defer src.Close()

	result, err := uploadClient.Upload(fileHeader.Filename, src, folder)
	if errors.Is(err, imagehost.ErrNotConfigured) {
		prometheus.RecordUpload("unconfigured")
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "Media upload provider is not configured"})
	}
	if err != nil {
		log.Error("Image host upload failed",
			zap.String("file_name", fileHeader.Filename),
			zap.Error(err))
		prometheus.RecordUpload("provider_error")
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "Media upload failed"})
	}

	log.Info("Media uploaded",
		zap.String("file_name", fileHeader.Filename),
		zap.String("folder", folder),
		zap.String("url", result.URL))
	prometheus.RecordUpload("success")
	return c.JSON(http.StatusCreated, echo.Map{
		"url":         result.URL,
		"provider_id": result.ProviderID,
	})
}
