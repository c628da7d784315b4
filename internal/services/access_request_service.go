package services

import (
	"time"

	"venturenest_backend/internal/logger"
	"venturenest_backend/internal/models"
	"venturenest_backend/internal/repositories"
	"venturenest_backend/internal/services/dto"
	"venturenest_backend/pkg/apperrors"
)

// AccessRequestService governs the lifecycle of confidential-document
// access requests: pending on creation, approved or rejected once the
// owner responds.
type AccessRequestService interface {
	// Request creates a pending request, or returns the existing pending
	// request for the same (document, investor) pair unchanged.
	Request(investorID, documentID string) (*dto.AccessRequestResponse, error)
	// Respond approves or rejects a request. Responding again overwrites
	// the previous response; the last write wins.
	Respond(ownerID, requestID string, approved bool) (*dto.AccessRequestResponse, error)
	ListForOwner(ownerID string) (*dto.AccessRequestListResponse, error)
	ListForInvestor(investorID string) (*dto.AccessRequestListResponse, error)
}

type accessRequestService struct {
	accessRequestRepo   repositories.AccessRequestRepository
	documentRepo        repositories.DocumentRepository
	profileRepo         repositories.BusinessProfileRepository
	notificationService NotificationService
}

func NewAccessRequestService(
	accessRequestRepo repositories.AccessRequestRepository,
	documentRepo repositories.DocumentRepository,
	profileRepo repositories.BusinessProfileRepository,
	notificationService NotificationService,
) AccessRequestService {
	return &accessRequestService{
		accessRequestRepo:   accessRequestRepo,
		documentRepo:        documentRepo,
		profileRepo:         profileRepo,
		notificationService: notificationService,
	}
}

func (s *accessRequestService) Request(investorID, documentID string) (*dto.AccessRequestResponse, error) {
	document, err := s.documentRepo.FindByID(documentID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrDocumentNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}

	if !document.IsConfidential {
		return nil, apperrors.ErrNotConfidential
	}

	// Idempotent on a still-pending pair: hand back the existing request
	// instead of creating a duplicate.
	existing, err := s.accessRequestRepo.FindPending(documentID, investorID)
	if err == nil {
		return dto.NewAccessRequestResponse(existing), nil
	}
	if !apperrors.Is(err, repositories.ErrAccessRequestNotFound) {
		return nil, apperrors.StorageError(err)
	}

	request := &models.DocumentAccessRequest{
		DocumentID:  documentID,
		InvestorID:  investorID,
		Status:      models.AccessRequestStatusPending,
		RequestedAt: time.Now(),
	}

	if err := s.accessRequestRepo.Create(request); err != nil {
		return nil, apperrors.StorageError(err)
	}

	s.notifyOwner(document, request)

	return dto.NewAccessRequestResponse(request), nil
}

// notifyOwner is best-effort: the request stands even when the notification
// cannot be delivered.
func (s *accessRequestService) notifyOwner(document *models.Document, request *models.DocumentAccessRequest) {
	profile, err := s.profileRepo.FindByID(document.BusinessProfileID)
	if err != nil {
		logger.Warn("failed to resolve document owner for notification",
			"document_id", document.ID, "error", err)
		return
	}

	if err := s.notificationService.NotifyAccessRequested(profile.UserID, document.Name, request.ID); err != nil {
		logger.Warn("failed to notify document owner",
			"document_id", document.ID, "owner_id", profile.UserID, "error", err)
	}
}

func (s *accessRequestService) Respond(ownerID, requestID string, approved bool) (*dto.AccessRequestResponse, error) {
	request, err := s.accessRequestRepo.FindByID(requestID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAccessRequestNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}

	document, err := s.documentRepo.FindByID(request.DocumentID)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	profile, err := s.profileRepo.FindByID(document.BusinessProfileID)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	if profile.UserID != ownerID {
		return nil, apperrors.ErrNotProfileOwner
	}

	status := models.AccessRequestStatusApproved
	if !approved {
		status = models.AccessRequestStatusRejected
	}

	respondedAt := time.Now()
	if err := s.accessRequestRepo.UpdateResponse(requestID, status, respondedAt); err != nil {
		return nil, apperrors.StorageError(err)
	}

	request.Status = status
	request.RespondedAt = &respondedAt

	if err := s.notificationService.NotifyAccessResponse(request.InvestorID, document.Name, approved, request.ID); err != nil {
		logger.Warn("failed to notify investor of access response",
			"request_id", request.ID, "investor_id", request.InvestorID, "error", err)
	}

	return dto.NewAccessRequestResponse(request), nil
}

func (s *accessRequestService) ListForOwner(ownerID string) (*dto.AccessRequestListResponse, error) {
	profile, err := s.profileRepo.FindByUserID(ownerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}

	requests, err := s.accessRequestRepo.FindByBusinessProfileID(profile.ID)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	return buildAccessRequestList(requests), nil
}

func (s *accessRequestService) ListForInvestor(investorID string) (*dto.AccessRequestListResponse, error) {
	requests, err := s.accessRequestRepo.FindByInvestorID(investorID)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	return buildAccessRequestList(requests), nil
}

func buildAccessRequestList(requests []models.DocumentAccessRequest) *dto.AccessRequestListResponse {
	responses := make([]*dto.AccessRequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, dto.NewAccessRequestResponse(&requests[i]))
	}
	return &dto.AccessRequestListResponse{
		Requests: responses,
		Total:    len(responses),
	}
}
