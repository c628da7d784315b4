package repositories

import (
	"errors"

	"gorm.io/gorm"

	"venturenest_backend/internal/models"
)

var ErrDocumentNotFound = errors.New("document not found")

type DocumentRepository interface {
	Create(document *models.Document) error
	FindByID(id string) (*models.Document, error)
	FindByProfileID(businessProfileID string) ([]models.Document, error)
	// FindByStoragePath resolves the record whose file URL points at the
	// given storage key.
	FindByStoragePath(path string) (*models.Document, error)
	Update(document *models.Document) error
	Delete(id string) error
}

type DocumentRepositoryImpl struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &DocumentRepositoryImpl{db: db}
}

func (r *DocumentRepositoryImpl) Create(document *models.Document) error {
	return r.db.Create(document).Error
}

func (r *DocumentRepositoryImpl) FindByID(id string) (*models.Document, error) {
	var document models.Document
	err := r.db.First(&document, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return &document, nil
}

func (r *DocumentRepositoryImpl) FindByProfileID(businessProfileID string) ([]models.Document, error) {
	var documents []models.Document
	err := r.db.Where("business_profile_id = ?", businessProfileID).
		Order("created_at DESC").
		Find(&documents).Error
	return documents, err
}

func (r *DocumentRepositoryImpl) FindByStoragePath(path string) (*models.Document, error) {
	var document models.Document
	err := r.db.First(&document, "file_url LIKE ?", "%/"+path).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return &document, nil
}

func (r *DocumentRepositoryImpl) Update(document *models.Document) error {
	return r.db.Save(document).Error
}

func (r *DocumentRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Document{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}
