package handlers

import (
	"net/http"

	"venturenest_backend/internal/middleware"
	"venturenest_backend/internal/services"
	"venturenest_backend/internal/services/dto"
	"venturenest_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	*BaseHandler
	listingService services.ListingService
}

func NewListingHandler(base *BaseHandler, listingService services.ListingService) *ListingHandler {
	return &ListingHandler{
		BaseHandler:    base,
		listingService: listingService,
	}
}

func (h *ListingHandler) RegisterRoutes(r *gin.RouterGroup) {
	listings := r.Group("/listings")
	listings.Use(middleware.AuthMiddleware())
	{
		listings.POST("", h.CreateListing)
		listings.GET("", h.BrowseListings)
		listings.GET("/mine", h.GetMyListings)
		listings.GET("/:listingId", h.GetListing)
		listings.PUT("/:listingId", h.UpdateListing)
		listings.POST("/:listingId/publish", h.PublishListing)
	}
}

func (h *ListingHandler) CreateListing(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateListingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	listing, err := h.listingService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, listing)
}

func (h *ListingHandler) BrowseListings(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	listings, err := h.listingService.BrowsePublished(page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, listings)
}

func (h *ListingHandler) GetMyListings(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	listings, err := h.listingService.ListMine(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, listings)
}

func (h *ListingHandler) GetListing(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	listingID := c.Param("listingId")
	if listingID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing listing ID"))
		return
	}

	listing, err := h.listingService.Get(userID, listingID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

func (h *ListingHandler) UpdateListing(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	listingID := c.Param("listingId")

	var req dto.UpdateListingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	listing, err := h.listingService.Update(userID, listingID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

func (h *ListingHandler) PublishListing(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	listingID := c.Param("listingId")

	listing, err := h.listingService.Publish(userID, listingID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, listing)
}
