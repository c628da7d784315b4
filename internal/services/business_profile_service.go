package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/datatypes"

	"venturenest_backend/internal/models"
	"venturenest_backend/internal/repositories"
	"venturenest_backend/internal/services/dto"
	"venturenest_backend/internal/storage"
	"venturenest_backend/pkg/apperrors"
)

type BusinessProfileService interface {
	Create(userID string, req *dto.CreateBusinessProfileRequest) (*dto.BusinessProfileResponse, error)
	GetByUserID(userID string) (*dto.BusinessProfileResponse, error)
	GetByID(profileID string) (*dto.BusinessProfileResponse, error)
	Update(userID string, req *dto.UpdateBusinessProfileRequest) (*dto.BusinessProfileResponse, error)
	UploadLogo(ctx context.Context, userID string, file io.Reader, filename, contentType string) (*dto.UploadLogoResponse, error)
}

type businessProfileService struct {
	profileRepo repositories.BusinessProfileRepository
	userRepo    repositories.UserRepository
	store       storage.Storage
}

func NewBusinessProfileService(
	profileRepo repositories.BusinessProfileRepository,
	userRepo repositories.UserRepository,
	store storage.Storage,
) BusinessProfileService {
	return &businessProfileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		store:       store,
	}
}

func (s *businessProfileService) Create(userID string, req *dto.CreateBusinessProfileRequest) (*dto.BusinessProfileResponse, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}

	socialMedia, err := marshalSocialMedia(req.SocialMedia)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	profile := &models.BusinessProfile{
		UserID:       userID,
		CompanyName:  req.CompanyName,
		Description:  req.Description,
		LogoURL:      req.LogoURL,
		IndustryTags: dedupeTags(req.IndustryTags),
		WebsiteURL:   req.WebsiteURL,
		SocialMedia:  socialMedia,
	}

	if err := s.profileRepo.Create(profile); err != nil {
		if apperrors.Is(err, repositories.ErrProfileAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists(err)
		}
		return nil, apperrors.StorageError(err)
	}

	return dto.NewBusinessProfileResponse(profile), nil
}

func (s *businessProfileService) GetByUserID(userID string) (*dto.BusinessProfileResponse, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}
	return dto.NewBusinessProfileResponse(profile), nil
}

func (s *businessProfileService) GetByID(profileID string) (*dto.BusinessProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(profileID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}
	return dto.NewBusinessProfileResponse(profile), nil
}

func (s *businessProfileService) Update(userID string, req *dto.UpdateBusinessProfileRequest) (*dto.BusinessProfileResponse, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}

	if req.CompanyName != nil {
		profile.CompanyName = *req.CompanyName
	}
	if req.Description != nil {
		profile.Description = *req.Description
	}
	if req.LogoURL != nil {
		profile.LogoURL = *req.LogoURL
	}
	if req.IndustryTags != nil {
		profile.IndustryTags = dedupeTags(req.IndustryTags)
	}
	if req.WebsiteURL != nil {
		profile.WebsiteURL = *req.WebsiteURL
	}
	if req.SocialMedia != nil {
		socialMedia, err := marshalSocialMedia(req.SocialMedia)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		profile.SocialMedia = socialMedia
	}

	if err := s.profileRepo.Update(profile); err != nil {
		return nil, apperrors.StorageError(err)
	}

	return dto.NewBusinessProfileResponse(profile), nil
}

func (s *businessProfileService) UploadLogo(ctx context.Context, userID string, file io.Reader, filename, contentType string) (*dto.UploadLogoResponse, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}

	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	objectPath := fmt.Sprintf("business-logos/%s-%d.%s", userID, time.Now().UnixNano(), ext)

	if err := s.store.Save(ctx, objectPath, file, contentType); err != nil {
		return nil, apperrors.StorageError(err)
	}

	url, err := s.store.GetURL(ctx, objectPath)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	profile.LogoURL = url
	if err := s.profileRepo.Update(profile); err != nil {
		return nil, apperrors.StorageError(err)
	}

	return &dto.UploadLogoResponse{LogoURL: url}, nil
}

// dedupeTags removes duplicates while keeping first-seen order.
func dedupeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

func marshalSocialMedia(links map[string]string) (datatypes.JSON, error) {
	if links == nil {
		links = map[string]string{}
	}
	raw, err := json.Marshal(links)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal social media links: %w", err)
	}
	return datatypes.JSON(raw), nil
}
