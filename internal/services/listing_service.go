package services

import (
	"venturenest_backend/internal/logger"
	"venturenest_backend/internal/models"
	"venturenest_backend/internal/repositories"
	"venturenest_backend/internal/services/dto"
	"venturenest_backend/pkg/apperrors"
)

type ListingService interface {
	Create(ownerID string, req *dto.CreateListingRequest) (*dto.ListingResponse, error)
	// Get returns the listing and notifies the owner of the view when the
	// viewer is someone else.
	Get(viewerID, listingID string) (*dto.ListingResponse, error)
	ListMine(ownerID string) (*dto.ListingListResponse, error)
	BrowsePublished(page, pageSize int) (*dto.ListingListResponse, error)
	Update(ownerID, listingID string, req *dto.UpdateListingRequest) (*dto.ListingResponse, error)
	Publish(ownerID, listingID string) (*dto.ListingResponse, error)
}

type listingService struct {
	listingRepo         repositories.ListingRepository
	profileRepo         repositories.BusinessProfileRepository
	notificationService NotificationService
}

func NewListingService(
	listingRepo repositories.ListingRepository,
	profileRepo repositories.BusinessProfileRepository,
	notificationService NotificationService,
) ListingService {
	return &listingService{
		listingRepo:         listingRepo,
		profileRepo:         profileRepo,
		notificationService: notificationService,
	}
}

func (s *listingService) Create(ownerID string, req *dto.CreateListingRequest) (*dto.ListingResponse, error) {
	profile, err := s.profileRepo.FindByUserID(ownerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}

	if err := validateMonetaryFields(req.IsFullCompany, req.AskingPrice, req.EquityPercentage); err != nil {
		return nil, err
	}

	listing := &models.CompanyListing{
		BusinessProfileID: profile.ID,
		Title:             req.Title,
		Description:       req.Description,
		AskingPrice:       req.AskingPrice,
		EquityPercentage:  req.EquityPercentage,
		IsFullCompany:     req.IsFullCompany,
		Status:            models.ListingStatusDraft,
	}

	if err := s.listingRepo.Create(listing); err != nil {
		return nil, apperrors.StorageError(err)
	}

	return dto.NewListingResponse(listing), nil
}

func (s *listingService) Get(viewerID, listingID string) (*dto.ListingResponse, error) {
	listing, err := s.listingRepo.FindByID(listingID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrListingNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}

	s.recordView(viewerID, listing)

	return dto.NewListingResponse(listing), nil
}

// recordView fires the listing_view notification to the owner; never to the
// owner viewing their own listing, and never fatally.
func (s *listingService) recordView(viewerID string, listing *models.CompanyListing) {
	if viewerID == "" {
		return
	}

	profile, err := s.profileRepo.FindByID(listing.BusinessProfileID)
	if err != nil || profile.UserID == viewerID {
		return
	}

	if err := s.notificationService.NotifyListingViewed(profile.UserID, listing.Title, listing.ID); err != nil {
		logger.Warn("failed to notify listing owner of view",
			"listing_id", listing.ID, "owner_id", profile.UserID, "error", err)
	}
}

func (s *listingService) ListMine(ownerID string) (*dto.ListingListResponse, error) {
	profile, err := s.profileRepo.FindByUserID(ownerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}

	listings, err := s.listingRepo.FindByProfileID(profile.ID)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	responses := make([]*dto.ListingResponse, 0, len(listings))
	for i := range listings {
		responses = append(responses, dto.NewListingResponse(&listings[i]))
	}

	return &dto.ListingListResponse{
		Listings: responses,
		Total:    int64(len(responses)),
	}, nil
}

func (s *listingService) BrowsePublished(page, pageSize int) (*dto.ListingListResponse, error) {
	offset := (page - 1) * pageSize

	listings, total, err := s.listingRepo.FindPublished(pageSize, offset)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	responses := make([]*dto.ListingResponse, 0, len(listings))
	for i := range listings {
		responses = append(responses, dto.NewListingResponse(&listings[i]))
	}

	return &dto.ListingListResponse{
		Listings: responses,
		Total:    total,
	}, nil
}

func (s *listingService) Update(ownerID, listingID string, req *dto.UpdateListingRequest) (*dto.ListingResponse, error) {
	listing, err := s.loadOwnedListing(ownerID, listingID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		listing.Title = *req.Title
	}
	if req.Description != nil {
		listing.Description = *req.Description
	}
	if req.AskingPrice != nil {
		listing.AskingPrice = req.AskingPrice
	}
	if req.EquityPercentage != nil {
		listing.EquityPercentage = req.EquityPercentage
	}

	if err := validateMonetaryFields(listing.IsFullCompany, listing.AskingPrice, listing.EquityPercentage); err != nil {
		return nil, err
	}

	if err := s.listingRepo.Update(listing); err != nil {
		return nil, apperrors.StorageError(err)
	}

	return dto.NewListingResponse(listing), nil
}

func (s *listingService) Publish(ownerID, listingID string) (*dto.ListingResponse, error) {
	listing, err := s.loadOwnedListing(ownerID, listingID)
	if err != nil {
		return nil, err
	}

	if err := s.listingRepo.UpdateStatus(listingID, models.ListingStatusPublished); err != nil {
		return nil, apperrors.StorageError(err)
	}

	listing.Status = models.ListingStatusPublished
	return dto.NewListingResponse(listing), nil
}

func (s *listingService) loadOwnedListing(ownerID, listingID string) (*models.CompanyListing, error) {
	listing, err := s.listingRepo.FindByID(listingID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrListingNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}

	profile, err := s.profileRepo.FindByID(listing.BusinessProfileID)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	if profile.UserID != ownerID {
		return nil, apperrors.ErrNotProfileOwner
	}

	return listing, nil
}

// validateMonetaryFields enforces the asking-price XOR equity-percentage
// rule selected by is_full_company.
func validateMonetaryFields(isFullCompany bool, askingPrice, equityPercentage *float64) error {
	if isFullCompany {
		if askingPrice == nil {
			return apperrors.ErrInvalidOperation("listings", "A full-company listing requires an asking price")
		}
		if equityPercentage != nil {
			return apperrors.ErrInvalidOperation("listings", "A full-company listing cannot carry an equity percentage")
		}
		return nil
	}

	if equityPercentage == nil {
		return apperrors.ErrInvalidOperation("listings", "An equity listing requires an equity percentage")
	}
	if askingPrice != nil {
		return apperrors.ErrInvalidOperation("listings", "An equity listing cannot carry an asking price")
	}
	return nil
}
