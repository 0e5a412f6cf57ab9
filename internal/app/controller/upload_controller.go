package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/navjivan/navjivan-backend/internal/errors"
	"github.com/navjivan/navjivan-backend/internal/middleware"
	"github.com/navjivan/navjivan-backend/internal/storage"
	"github.com/navjivan/navjivan-backend/internal/store"
)

const maxUploadSize = 10 << 20 // 10MB

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

var allowedFolders = map[string]bool{
	"menu":    true,
	"offers":  true,
	"gallery": true,
	"chefs":   true,
	"special": true,
}

// UploadController moves images in and out of object storage for the admin
// console.
type UploadController struct {
	store   *store.Store
	storage *storage.S3Storage
}

func NewUploadController(contentStore *store.Store, s3 *storage.S3Storage) *UploadController {
	return &UploadController{store: contentStore, storage: s3}
}

// UploadImage takes a multipart file and returns the stored public URL.
func (ctrl *UploadController) UploadImage(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	folder := c.PostForm("folder")
	if !allowedFolders[folder] {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Unknown upload folder")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "File is required")
		return
	}

	if err := ctrl.storage.ValidateFileSize(fileHeader.Size, maxUploadSize); err != nil {
		apperrors.BadRequest(c, apperrors.UploadFileTooLarge, err.Error())
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if err := ctrl.storage.ValidateContentType(contentType, allowedImageTypes); err != nil {
		apperrors.BadRequest(c, apperrors.UploadInvalidFileType, err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error("Failed to open uploaded file", err, nil)
		apperrors.InternalError(c, "Failed to read the uploaded file")
		return
	}
	defer file.Close()

	url, err := ctrl.store.UploadImage(c.Request.Context(), folder, fileHeader.Filename, contentType, file)
	if err != nil {
		log.Error("Upload failed", err, map[string]interface{}{
			"folder":   folder,
			"filename": fileHeader.Filename,
		})
		switch {
		case errors.Is(err, store.ErrCredentialsInvalid):
			apperrors.RespondWithError(c, http.StatusBadGateway, apperrors.UploadUnauthorized, err.Error())
		case errors.Is(err, store.ErrPermissionDenied):
			apperrors.RespondWithError(c, http.StatusBadGateway, apperrors.UploadAccessDenied, err.Error())
		default:
			apperrors.RespondWithError(c, http.StatusBadGateway, apperrors.UploadFailed, "Upload failed")
		}
		return
	}

	log.Info("Image uploaded", map[string]interface{}{
		"folder": folder,
		"url":    url,
	})

	c.JSON(http.StatusCreated, gin.H{"url": url})
}

type DeleteImageRequest struct {
	URL string `json:"url" binding:"required"`
}

// DeleteImage removes a stored image by its public URL. External URLs are
// acknowledged without touching storage.
func (ctrl *UploadController) DeleteImage(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req DeleteImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	if err := ctrl.store.DeleteImage(c.Request.Context(), req.URL); err != nil {
		log.Error("Failed to delete image", err, map[string]interface{}{
			"url": req.URL,
		})
		apperrors.RespondWithError(c, http.StatusBadGateway, apperrors.UploadFailed, "Delete failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

type PresignRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
	Folder      string `json:"folder" binding:"required"`
}

// GetPresignedURL hands the admin console a direct-to-bucket upload URL for
// large files.
func (ctrl *UploadController) GetPresignedURL(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req PresignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	if !allowedFolders[req.Folder] {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Unknown upload folder")
		return
	}
	if err := ctrl.storage.ValidateContentType(req.ContentType, allowedImageTypes); err != nil {
		apperrors.BadRequest(c, apperrors.UploadInvalidFileType, err.Error())
		return
	}

	resp, err := ctrl.storage.GeneratePresignedURL(req.Filename, req.ContentType, req.Folder)
	if err != nil {
		log.Error("Failed to generate presigned URL", err, map[string]interface{}{
			"folder": req.Folder,
		})
		apperrors.RespondWithError(c, http.StatusBadGateway, apperrors.UploadFailed, "Failed to prepare upload")
		return
	}

	c.JSON(http.StatusOK, resp)
}
