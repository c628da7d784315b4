package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"venturenest_backend/internal/logger"
	"venturenest_backend/internal/models"
	"venturenest_backend/internal/repositories"
	"venturenest_backend/internal/services/dto"
	"venturenest_backend/internal/storage"
	"venturenest_backend/pkg/apperrors"
)

const signedURLExpiry = 15 * time.Minute

type DocumentService interface {
	Upload(ctx context.Context, ownerID string, req *dto.UploadDocumentRequest, file io.Reader, filename string, contentType string) (*dto.DocumentResponse, error)
	ListForProfile(businessProfileID string) ([]*dto.DocumentResponse, error)
	Get(documentID string) (*dto.DocumentResponse, error)
	Update(ownerID, documentID string, req *dto.UpdateDocumentRequest) (*dto.DocumentResponse, error)
	// Delete removes the record and, best-effort, the backing object.
	Delete(ctx context.Context, ownerID, documentID string) error
	// Download resolves a URL the caller may fetch the file from. For a
	// confidential document the caller must be the owner or hold an
	// approved access request.
	Download(ctx context.Context, userID, documentID string) (*dto.DocumentDownloadResponse, error)
	// OpenFile streams the object at the given storage path. Objects under
	// documents/ are matched to their record and confidential documents
	// are gated the same way as Download; viewerID may be empty for an
	// anonymous caller.
	OpenFile(ctx context.Context, viewerID, objectPath string) (io.ReadCloser, error)
}

type documentService struct {
	documentRepo      repositories.DocumentRepository
	profileRepo       repositories.BusinessProfileRepository
	accessRequestRepo repositories.AccessRequestRepository
	store             storage.Storage
}

func NewDocumentService(
	documentRepo repositories.DocumentRepository,
	profileRepo repositories.BusinessProfileRepository,
	accessRequestRepo repositories.AccessRequestRepository,
	store storage.Storage,
) DocumentService {
	return &documentService{
		documentRepo:      documentRepo,
		profileRepo:       profileRepo,
		accessRequestRepo: accessRequestRepo,
		store:             store,
	}
}

func (s *documentService) Upload(ctx context.Context, ownerID string, req *dto.UploadDocumentRequest, file io.Reader, filename string, contentType string) (*dto.DocumentResponse, error) {
	profile, err := s.profileRepo.FindByUserID(ownerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}

	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	objectPath := fmt.Sprintf("documents/%s-%d.%s", profile.ID, time.Now().UnixNano(), ext)

	if err := s.store.Save(ctx, objectPath, file, contentType); err != nil {
		return nil, apperrors.StorageError(err)
	}

	fileURL, err := s.store.GetURL(ctx, objectPath)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	document := &models.Document{
		BusinessProfileID: profile.ID,
		Name:              req.Name,
		FileURL:           fileURL,
		FileType:          ext,
		DocumentType:      models.DocumentType(req.DocumentType),
		Description:       req.Description,
		IsConfidential:    req.IsConfidential,
		Version:           1,
	}

	if err := s.documentRepo.Create(document); err != nil {
		return nil, apperrors.StorageError(err)
	}

	return dto.NewDocumentResponse(document), nil
}

func (s *documentService) ListForProfile(businessProfileID string) ([]*dto.DocumentResponse, error) {
	documents, err := s.documentRepo.FindByProfileID(businessProfileID)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	responses := make([]*dto.DocumentResponse, 0, len(documents))
	for i := range documents {
		responses = append(responses, dto.NewDocumentResponse(&documents[i]))
	}
	return responses, nil
}

func (s *documentService) Get(documentID string) (*dto.DocumentResponse, error) {
	document, err := s.documentRepo.FindByID(documentID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrDocumentNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}
	return dto.NewDocumentResponse(document), nil
}

func (s *documentService) Update(ownerID, documentID string, req *dto.UpdateDocumentRequest) (*dto.DocumentResponse, error) {
	document, err := s.loadOwnedDocument(ownerID, documentID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		document.Name = *req.Name
	}
	if req.DocumentType != nil {
		document.DocumentType = models.DocumentType(*req.DocumentType)
	}
	if req.Description != nil {
		document.Description = *req.Description
	}
	if req.IsConfidential != nil {
		document.IsConfidential = *req.IsConfidential
	}

	if err := s.documentRepo.Update(document); err != nil {
		return nil, apperrors.StorageError(err)
	}

	return dto.NewDocumentResponse(document), nil
}

func (s *documentService) Delete(ctx context.Context, ownerID, documentID string) error {
	document, err := s.loadOwnedDocument(ownerID, documentID)
	if err != nil {
		return err
	}

	// Releasing the object is best-effort; a storage failure must not
	// keep the record alive.
	if objectPath := objectPathFromURL(document.FileURL); objectPath != "" {
		if err := s.store.Delete(ctx, objectPath); err != nil {
			logger.Warn("failed to delete document object from storage",
				"document_id", document.ID, "path", objectPath, "error", err)
		}
	}

	if err := s.documentRepo.Delete(documentID); err != nil {
		return apperrors.StorageError(err)
	}
	return nil
}

func (s *documentService) Download(ctx context.Context, userID, documentID string) (*dto.DocumentDownloadResponse, error) {
	document, err := s.documentRepo.FindByID(documentID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrDocumentNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}

	if document.IsConfidential {
		allowed, err := s.mayViewConfidential(userID, document)
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, apperrors.NewForbiddenError("An approved access request is required to view this document")
		}
	}

	objectPath := objectPathFromURL(document.FileURL)
	url, err := s.store.GetSignedURL(ctx, objectPath, signedURLExpiry)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	return &dto.DocumentDownloadResponse{
		URL:       url,
		ExpiresAt: time.Now().Add(signedURLExpiry),
	}, nil
}

func (s *documentService) OpenFile(ctx context.Context, viewerID, objectPath string) (io.ReadCloser, error) {
	if strings.HasPrefix(objectPath, "documents/") {
		document, err := s.documentRepo.FindByStoragePath(objectPath)
		if err != nil {
			if apperrors.Is(err, repositories.ErrDocumentNotFound) {
				return nil, apperrors.ErrNotFound(err)
			}
			return nil, apperrors.StorageError(err)
		}

		if document.IsConfidential {
			allowed, err := s.mayViewConfidential(viewerID, document)
			if err != nil {
				return nil, err
			}
			if !allowed {
				return nil, apperrors.NewForbiddenError("An approved access request is required to view this document")
			}
		}
	}

	reader, err := s.store.Open(ctx, objectPath)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	return reader, nil
}

func (s *documentService) mayViewConfidential(userID string, document *models.Document) (bool, error) {
	profile, err := s.profileRepo.FindByID(document.BusinessProfileID)
	if err != nil {
		return false, apperrors.StorageError(err)
	}
	if profile.UserID == userID {
		return true, nil
	}

	approved, err := s.accessRequestRepo.HasApproved(document.ID, userID)
	if err != nil {
		return false, apperrors.StorageError(err)
	}
	return approved, nil
}

func (s *documentService) loadOwnedDocument(ownerID, documentID string) (*models.Document, error) {
	document, err := s.documentRepo.FindByID(documentID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrDocumentNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}

	profile, err := s.profileRepo.FindByID(document.BusinessProfileID)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	if profile.UserID != ownerID {
		return nil, apperrors.ErrNotProfileOwner
	}

	return document, nil
}

// objectPathFromURL recovers the storage key from the persisted public URL.
// Document objects all live under the documents/ prefix.
func objectPathFromURL(fileURL string) string {
	idx := strings.LastIndex(fileURL, "/")
	if idx < 0 || idx == len(fileURL)-1 {
		return ""
	}
	return "documents/" + fileURL[idx+1:]
}
