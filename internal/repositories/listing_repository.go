package repositories

import (
	"errors"

	"gorm.io/gorm"

	"venturenest_backend/internal/models"
)

var ErrListingNotFound = errors.New("listing not found")

type ListingRepository interface {
	Create(listing *models.CompanyListing) error
	FindByID(id string) (*models.CompanyListing, error)
	FindByProfileID(businessProfileID string) ([]models.CompanyListing, error)
	FindPublished(limit, offset int) ([]models.CompanyListing, int64, error)
	Update(listing *models.CompanyListing) error
	UpdateStatus(id string, status models.ListingStatus) error
}

type ListingRepositoryImpl struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &ListingRepositoryImpl{db: db}
}

func (r *ListingRepositoryImpl) Create(listing *models.CompanyListing) error {
	return r.db.Create(listing).Error
}

func (r *ListingRepositoryImpl) FindByID(id string) (*models.CompanyListing, error) {
	var listing models.CompanyListing
	err := r.db.First(&listing, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return &listing, nil
}

func (r *ListingRepositoryImpl) FindByProfileID(businessProfileID string) ([]models.CompanyListing, error) {
	var listings []models.CompanyListing
	err := r.db.Where("business_profile_id = ?", businessProfileID).
		Order("created_at DESC").
		Find(&listings).Error
	return listings, err
}

func (r *ListingRepositoryImpl) FindPublished(limit, offset int) ([]models.CompanyListing, int64, error) {
	query := r.db.Model(&models.CompanyListing{}).Where("status = ?", models.ListingStatusPublished)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var listings []models.CompanyListing
	err := query.Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&listings).Error

	return listings, total, err
}

func (r *ListingRepositoryImpl) Update(listing *models.CompanyListing) error {
	return r.db.Save(listing).Error
}

func (r *ListingRepositoryImpl) UpdateStatus(id string, status models.ListingStatus) error {
	result := r.db.Model(&models.CompanyListing{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrListingNotFound
	}
	return nil
}
