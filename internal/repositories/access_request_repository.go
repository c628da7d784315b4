package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"venturenest_backend/internal/models"
)

var ErrAccessRequestNotFound = errors.New("access request not found")

type AccessRequestRepository interface {
	Create(request *models.DocumentAccessRequest) error
	FindByID(id string) (*models.DocumentAccessRequest, error)
	// FindPending returns the pending request for the (document, investor)
	// pair, or ErrAccessRequestNotFound when there is none.
	FindPending(documentID, investorID string) (*models.DocumentAccessRequest, error)
	// HasApproved reports whether the investor holds an approved request
	// for the document.
	HasApproved(documentID, investorID string) (bool, error)
	FindByBusinessProfileID(businessProfileID string) ([]models.DocumentAccessRequest, error)
	FindByInvestorID(investorID string) ([]models.DocumentAccessRequest, error)
	UpdateResponse(id string, status models.AccessRequestStatus, respondedAt time.Time) error
}

type AccessRequestRepositoryImpl struct {
	db *gorm.DB
}

func NewAccessRequestRepository(db *gorm.DB) AccessRequestRepository {
	return &AccessRequestRepositoryImpl{db: db}
}

func (r *AccessRequestRepositoryImpl) Create(request *models.DocumentAccessRequest) error {
	return r.db.Create(request).Error
}

func (r *AccessRequestRepositoryImpl) FindByID(id string) (*models.DocumentAccessRequest, error) {
	var request models.DocumentAccessRequest
	err := r.db.First(&request, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccessRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *AccessRequestRepositoryImpl) FindPending(documentID, investorID string) (*models.DocumentAccessRequest, error) {
	var request models.DocumentAccessRequest
	err := r.db.Where("document_id = ? AND investor_id = ? AND status = ?",
		documentID, investorID, models.AccessRequestStatusPending).
		First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccessRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *AccessRequestRepositoryImpl) HasApproved(documentID, investorID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.DocumentAccessRequest{}).
		Where("document_id = ? AND investor_id = ? AND status = ?",
			documentID, investorID, models.AccessRequestStatusApproved).
		Count(&count).Error
	return count > 0, err
}

func (r *AccessRequestRepositoryImpl) FindByBusinessProfileID(businessProfileID string) ([]models.DocumentAccessRequest, error) {
	var requests []models.DocumentAccessRequest
	err := r.db.
		Joins("JOIN documents ON documents.id = document_access_requests.document_id").
		Where("documents.business_profile_id = ?", businessProfileID).
		Preload("Document").
		Order("document_access_requests.requested_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *AccessRequestRepositoryImpl) FindByInvestorID(investorID string) ([]models.DocumentAccessRequest, error) {
	var requests []models.DocumentAccessRequest
	err := r.db.Where("investor_id = ?", investorID).
		Preload("Document").
		Order("requested_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *AccessRequestRepositoryImpl) UpdateResponse(id string, status models.AccessRequestStatus, respondedAt time.Time) error {
	result := r.db.Model(&models.DocumentAccessRequest{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":       status,
		"responded_at": respondedAt,
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccessRequestNotFound
	}
	return nil
}
