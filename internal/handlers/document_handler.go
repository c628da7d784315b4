package handlers

import (
	"net/http"

	"venturenest_backend/internal/middleware"
	"venturenest_backend/internal/services"
	"venturenest_backend/internal/services/dto"
	"venturenest_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	*BaseHandler
	documentService services.DocumentService
}

func NewDocumentHandler(base *BaseHandler, documentService services.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		BaseHandler:     base,
		documentService: documentService,
	}
}

func (h *DocumentHandler) RegisterRoutes(r *gin.RouterGroup) {
	documents := r.Group("/documents")
	documents.Use(middleware.AuthMiddleware())
	{
		documents.POST("", h.UploadDocument)
		documents.GET("/:documentId", h.GetDocument)
		documents.PUT("/:documentId", h.UpdateDocument)
		documents.DELETE("/:documentId", h.DeleteDocument)
		documents.GET("/:documentId/download", h.DownloadDocument)
	}

	profiles := r.Group("/business-profiles")
	profiles.Use(middleware.AuthMiddleware())
	{
		profiles.GET("/:profileId/documents", h.ListProfileDocuments)
	}
}

func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UploadDocumentRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing document file: "+err.Error()))
		return
	}

	if !h.ValidateUpload(c, fileHeader) {
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")

	document, err := h.documentService.Upload(c.Request.Context(), userID, &req, file, fileHeader.Filename, contentType)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, document)
}

func (h *DocumentHandler) ListProfileDocuments(c *gin.Context) {
	profileID := c.Param("profileId")
	if profileID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing profile ID"))
		return
	}

	documents, err := h.documentService.ListForProfile(profileID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"documents": documents})
}

func (h *DocumentHandler) GetDocument(c *gin.Context) {
	documentID := c.Param("documentId")

	document, err := h.documentService.Get(documentID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, document)
}

func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	documentID := c.Param("documentId")

	var req dto.UpdateDocumentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	document, err := h.documentService.Update(userID, documentID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, document)
}

func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	documentID := c.Param("documentId")

	if err := h.documentService.Delete(c.Request.Context(), userID, documentID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *DocumentHandler) DownloadDocument(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	documentID := c.Param("documentId")

	resp, err := h.documentService.Download(c.Request.Context(), userID, documentID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
