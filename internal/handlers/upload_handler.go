package handlers

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"skillswap_backend/internal/middleware"
	"skillswap_backend/internal/services"
	"skillswap_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   base,
		uploadService: uploadService,
	}
}

func (h *UploadHandler) RegisterRoutes(r *gin.RouterGroup) {
	uploads := r.Group("/uploads")
	uploads.Use(middleware.AuthMiddleware())
	{
		uploads.POST("/avatar", h.UploadAvatar)
		uploads.DELETE("/avatar", h.DeleteAvatar)
	}

	// Served without auth so avatar URLs work in <img> tags.
	r.GET("/files/*path", h.ServeFile)
}

func (h *UploadHandler) UploadAvatar(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing 'avatar' file field"))
		return
	}

	url, err := h.uploadService.UploadAvatar(c.Request.Context(), h.GetDB(c), userID, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}

func (h *UploadHandler) DeleteAvatar(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.uploadService.DeleteAvatar(c.Request.Context(), h.GetDB(c), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Avatar removed"})
}

func (h *UploadHandler) ServeFile(c *gin.Context) {
	path := c.Param("path")
	if len(path) > 0 && path[0] == '/' {
		path = path[1:]
	}

	reader, err := h.uploadService.ServeFile(c.Request.Context(), path)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer reader.Close()

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, reader)
}
