package repositories

import (
	"errors"

	"gorm.io/gorm"

	"venturenest_backend/internal/models"
)

var (
	ErrProfileNotFound      = errors.New("business profile not found")
	ErrProfileAlreadyExists = errors.New("business profile already exists for this user")
)

type BusinessProfileRepository interface {
	Create(profile *models.BusinessProfile) error
	FindByID(id string) (*models.BusinessProfile, error)
	FindByUserID(userID string) (*models.BusinessProfile, error)
	Update(profile *models.BusinessProfile) error
}

type BusinessProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewBusinessProfileRepository(db *gorm.DB) BusinessProfileRepository {
	return &BusinessProfileRepositoryImpl{db: db}
}

func (r *BusinessProfileRepositoryImpl) Create(profile *models.BusinessProfile) error {
	var count int64
	if err := r.db.Model(&models.BusinessProfile{}).Where("user_id = ?", profile.UserID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrProfileAlreadyExists
	}

	return r.db.Create(profile).Error
}

func (r *BusinessProfileRepositoryImpl) FindByID(id string) (*models.BusinessProfile, error) {
	var profile models.BusinessProfile
	err := r.db.First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *BusinessProfileRepositoryImpl) FindByUserID(userID string) (*models.BusinessProfile, error) {
	var profile models.BusinessProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *BusinessProfileRepositoryImpl) Update(profile *models.BusinessProfile) error {
	return r.db.Save(profile).Error
}
