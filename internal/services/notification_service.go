package services

import (
	"fmt"

	"venturenest_backend/internal/email"
	"venturenest_backend/internal/logger"
	"venturenest_backend/internal/models"
	"venturenest_backend/internal/repositories"
	"venturenest_backend/internal/services/dto"
	"venturenest_backend/pkg/apperrors"
)

// RealtimePublisher is the push side of the notification channel; the
// websocket hub implements it.
type RealtimePublisher interface {
	PushToUser(userID string, payload any)
}

type NotificationService interface {
	// Create persists and fans out a notification, unless the recipient
	// has opted out of the category. A suppressed notification is returned
	// with the "skipped" ID marker and leaves no trace: no row, no push,
	// no unread-count change.
	Create(req *dto.CreateNotificationRequest) (*dto.NotificationResponse, error)
	ListForUser(userID string) (*dto.NotificationListResponse, error)
	MarkAsRead(userID, notificationID string) error
	MarkAllAsRead(userID string) error
	UnreadCount(userID string) (int64, error)

	GetPreferences(userID string) (*dto.PreferencesResponse, error)
	UpdatePreferences(userID string, req *dto.UpdatePreferencesRequest) (*dto.PreferencesResponse, error)

	// Factory methods for the workflow side effects.
	NotifyAccessRequested(ownerID, documentName, requestID string) error
	NotifyAccessResponse(investorID, documentName string, approved bool, requestID string) error
	NotifyListingViewed(ownerID, listingTitle, listingID string) error
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
	publisher        RealtimePublisher
	emailProvider    email.Provider
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
	publisher RealtimePublisher,
	emailProvider email.Provider,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		publisher:        publisher,
		emailProvider:    emailProvider,
	}
}

func (s *notificationService) Create(req *dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	user, err := s.userRepo.FindByID(req.UserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StorageError(err)
	}

	prefs, err := s.notificationRepo.FindPreferences(req.UserID)
	if err != nil && !apperrors.Is(err, repositories.ErrPreferencesNotFound) {
		return nil, apperrors.StorageError(err)
	}

	// A missing preferences row means everything is enabled.
	if prefs != nil && !categoryEnabled(prefs, req.Type) {
		return &dto.NotificationResponse{
			ID:        dto.SkippedNotificationID,
			UserID:    req.UserID,
			Title:     req.Title,
			Message:   req.Message,
			Type:      req.Type,
			IsRead:    false,
			RelatedID: req.RelatedID,
		}, nil
	}

	notification := &models.Notification{
		UserID:    req.UserID,
		Type:      req.Type,
		Title:     req.Title,
		Message:   req.Message,
		IsRead:    false,
		RelatedID: req.RelatedID,
	}

	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, apperrors.StorageError(err)
	}

	resp := dto.NewNotificationResponse(notification)

	if prefs == nil || prefs.PushNotifications {
		s.publisher.PushToUser(req.UserID, resp)
	}

	if s.emailProvider != nil && (prefs == nil || prefs.EmailNotifications) {
		s.sendEmail(user, notification)
	}

	return resp, nil
}

// sendEmail is best-effort: a failed delivery never fails the notification.
func (s *notificationService) sendEmail(user *models.User, notification *models.Notification) {
	err := s.emailProvider.Send(&email.Email{
		To:      []string{user.Email},
		Subject: notification.Title,
		Body:    notification.Message,
	})
	if err != nil {
		logger.Warn("failed to send notification email",
			"user_id", user.ID,
			"type", notification.Type,
			"error", err,
		)
	}
}

func (s *notificationService) ListForUser(userID string) (*dto.NotificationListResponse, error) {
	notifications, err := s.notificationRepo.FindByUserID(userID)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	responses := make([]*dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, dto.NewNotificationResponse(&notifications[i]))
	}

	return &dto.NotificationListResponse{
		Notifications: responses,
		Total:         len(responses),
	}, nil
}

func (s *notificationService) MarkAsRead(userID, notificationID string) error {
	notification, err := s.notificationRepo.FindByID(notificationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.StorageError(err)
	}
	if notification.UserID != userID {
		return apperrors.NewForbiddenError("Notification belongs to another user")
	}

	if err := s.notificationRepo.MarkAsRead(notificationID); err != nil {
		return apperrors.StorageError(err)
	}
	return nil
}

func (s *notificationService) MarkAllAsRead(userID string) error {
	if err := s.notificationRepo.MarkAllAsRead(userID); err != nil {
		return apperrors.StorageError(err)
	}
	return nil
}

func (s *notificationService) UnreadCount(userID string) (int64, error) {
	count, err := s.notificationRepo.UnreadCount(userID)
	if err != nil {
		return 0, apperrors.StorageError(err)
	}
	return count, nil
}

func (s *notificationService) GetPreferences(userID string) (*dto.PreferencesResponse, error) {
	prefs, err := s.notificationRepo.FindPreferences(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPreferencesNotFound) {
			// No row yet: report the implicit all-enabled defaults.
			return dto.NewPreferencesResponse(defaultPreferences(userID)), nil
		}
		return nil, apperrors.StorageError(err)
	}
	return dto.NewPreferencesResponse(prefs), nil
}

func (s *notificationService) UpdatePreferences(userID string, req *dto.UpdatePreferencesRequest) (*dto.PreferencesResponse, error) {
	prefs, err := s.notificationRepo.FindPreferences(userID)
	if err != nil {
		if !apperrors.Is(err, repositories.ErrPreferencesNotFound) {
			return nil, apperrors.StorageError(err)
		}
		// Lazily create the row; unspecified flags stay enabled.
		prefs = defaultPreferences(userID)
		applyPreferencePatch(prefs, req)
		if err := s.notificationRepo.CreatePreferences(prefs); err != nil {
			return nil, apperrors.StorageError(err)
		}
		return dto.NewPreferencesResponse(prefs), nil
	}

	applyPreferencePatch(prefs, req)
	if err := s.notificationRepo.UpdatePreferences(prefs); err != nil {
		return nil, apperrors.StorageError(err)
	}
	return dto.NewPreferencesResponse(prefs), nil
}

// ---------------- Factory methods ----------------

func (s *notificationService) NotifyAccessRequested(ownerID, documentName, requestID string) error {
	_, err := s.Create(&dto.CreateNotificationRequest{
		UserID:    ownerID,
		Title:     "New document access request",
		Message:   fmt.Sprintf("An investor requested access to '%s'", documentName),
		Type:      repositories.NotificationTypeDocumentAccessRequest,
		RelatedID: requestID,
	})
	return err
}

func (s *notificationService) NotifyAccessResponse(investorID, documentName string, approved bool, requestID string) error {
	notificationType := repositories.NotificationTypeDocumentAccessApproved
	title := "Document access approved"
	message := fmt.Sprintf("Your request to view '%s' was approved", documentName)
	if !approved {
		notificationType = repositories.NotificationTypeDocumentAccessRejected
		title = "Document access rejected"
		message = fmt.Sprintf("Your request to view '%s' was rejected", documentName)
	}

	_, err := s.Create(&dto.CreateNotificationRequest{
		UserID:    investorID,
		Title:     title,
		Message:   message,
		Type:      notificationType,
		RelatedID: requestID,
	})
	return err
}

func (s *notificationService) NotifyListingViewed(ownerID, listingTitle, listingID string) error {
	_, err := s.Create(&dto.CreateNotificationRequest{
		UserID:    ownerID,
		Title:     "Your listing was viewed",
		Message:   fmt.Sprintf("Someone viewed your listing '%s'", listingTitle),
		Type:      repositories.NotificationTypeListingView,
		RelatedID: listingID,
	})
	return err
}

// ---------------- Helpers ----------------

// categoryEnabled resolves the per-category flag for a notification type.
// Both access-response types share the document_access_response flag.
func categoryEnabled(prefs *models.NotificationPreferences, notificationType string) bool {
	switch notificationType {
	case repositories.NotificationTypeListingView:
		return prefs.ListingView
	case repositories.NotificationTypeListingSave:
		return prefs.ListingSave
	case repositories.NotificationTypeConnectionRequest:
		return prefs.ConnectionRequest
	case repositories.NotificationTypeDocumentAccessRequest:
		return prefs.DocumentAccessRequest
	case repositories.NotificationTypeDocumentAccessApproved,
		repositories.NotificationTypeDocumentAccessRejected:
		return prefs.DocumentAccessResponse
	case repositories.NotificationTypeMessageReceived:
		return prefs.MessageReceived
	default:
		return true
	}
}

func defaultPreferences(userID string) *models.NotificationPreferences {
	return &models.NotificationPreferences{
		UserID:                 userID,
		EmailNotifications:     true,
		PushNotifications:      true,
		ListingView:            true,
		ListingSave:            true,
		ConnectionRequest:      true,
		DocumentAccessRequest:  true,
		DocumentAccessResponse: true,
		MessageReceived:        true,
	}
}

func applyPreferencePatch(prefs *models.NotificationPreferences, req *dto.UpdatePreferencesRequest) {
	if req.EmailNotifications != nil {
		prefs.EmailNotifications = *req.EmailNotifications
	}
	if req.PushNotifications != nil {
		prefs.PushNotifications = *req.PushNotifications
	}
	if req.ListingView != nil {
		prefs.ListingView = *req.ListingView
	}
	if req.ListingSave != nil {
		prefs.ListingSave = *req.ListingSave
	}
	if req.ConnectionRequest != nil {
		prefs.ConnectionRequest = *req.ConnectionRequest
	}
	if req.DocumentAccessRequest != nil {
		prefs.DocumentAccessRequest = *req.DocumentAccessRequest
	}
	if req.DocumentAccessResponse != nil {
		prefs.DocumentAccessResponse = *req.DocumentAccessResponse
	}
	if req.MessageReceived != nil {
		prefs.MessageReceived = *req.MessageReceived
	}
}
