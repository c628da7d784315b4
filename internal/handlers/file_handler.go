package handlers

import (
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"venturenest_backend/internal/middleware"
	"venturenest_backend/internal/services"
	"venturenest_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// FileHandler serves stored objects over HTTP. It backs the URLs the local
// storage backend emits; S3 deployments serve objects from the bucket
// directly and never hit these routes.
type FileHandler struct {
	*BaseHandler
	documentService services.DocumentService
}

func NewFileHandler(base *BaseHandler, documentService services.DocumentService) *FileHandler {
	return &FileHandler{
		BaseHandler:     base,
		documentService: documentService,
	}
}

func (h *FileHandler) RegisterRoutes(r *gin.RouterGroup) {
	files := r.Group("/files")
	files.Use(middleware.OptionalAuthMiddleware())
	{
		files.GET("/*filePath", h.ServeFile)
	}
}

func (h *FileHandler) ServeFile(c *gin.Context) {
	objectPath := strings.TrimPrefix(c.Param("filePath"), "/")
	if objectPath == "" || strings.Contains(objectPath, "..") {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid file path"))
		return
	}

	// Empty for anonymous callers; confidential documents then 403.
	viewerID := c.GetString("userID")

	reader, err := h.documentService.OpenFile(c.Request.Context(), viewerID, objectPath)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer reader.Close()

	contentType := mime.TypeByExtension(filepath.Ext(objectPath))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)

	if c.Query("download") == "true" {
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filepath.Base(objectPath)))
	} else {
		c.Header("Content-Disposition", "inline")
	}

	if _, err := io.Copy(c.Writer, reader); err != nil {
		c.Error(err)
	}
}
