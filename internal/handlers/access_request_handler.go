package handlers

import (
	"net/http"

	"venturenest_backend/internal/middleware"
	"venturenest_backend/internal/services"
	"venturenest_backend/internal/services/dto"
	"venturenest_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AccessRequestHandler struct {
	*BaseHandler
	accessRequestService services.AccessRequestService
}

func NewAccessRequestHandler(base *BaseHandler, accessRequestService services.AccessRequestService) *AccessRequestHandler {
	return &AccessRequestHandler{
		BaseHandler:          base,
		accessRequestService: accessRequestService,
	}
}

func (h *AccessRequestHandler) RegisterRoutes(r *gin.RouterGroup) {
	requests := r.Group("/access-requests")
	requests.Use(middleware.AuthMiddleware())
	{
		requests.POST("", h.CreateAccessRequest)
		requests.GET("/received", h.ListReceived)
		requests.GET("/sent", h.ListSent)
		requests.PUT("/:requestId/respond", h.RespondAccessRequest)
	}
}

func (h *AccessRequestHandler) CreateAccessRequest(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateAccessRequestRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.accessRequestService.Request(userID, req.DocumentID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *AccessRequestHandler) RespondAccessRequest(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	requestID := c.Param("requestId")
	if requestID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing request ID"))
		return
	}

	var req dto.RespondAccessRequestRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.accessRequestService.Respond(userID, requestID, *req.Approved)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListReceived returns requests against the caller's documents.
func (h *AccessRequestHandler) ListReceived(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.accessRequestService.ListForOwner(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListSent returns requests the caller has made as an investor.
func (h *AccessRequestHandler) ListSent(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.accessRequestService.ListForInvestor(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
