package repositories

import (
	"errors"

	"gorm.io/gorm"

	"venturenest_backend/internal/models"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrPreferencesNotFound  = errors.New("notification preferences not found")
)

// Notification type constants. The seven categories mirror what the mobile
// client renders.
const (
	NotificationTypeListingView            = "listing_view"
	NotificationTypeListingSave            = "listing_save"
	NotificationTypeConnectionRequest      = "connection_request"
	NotificationTypeDocumentAccessRequest  = "document_access_request"
	NotificationTypeDocumentAccessApproved = "document_access_approved"
	NotificationTypeDocumentAccessRejected = "document_access_rejected"
	NotificationTypeMessageReceived        = "message_received"
)

type NotificationRepository interface {
	Create(notification *models.Notification) error
	FindByID(id string) (*models.Notification, error)
	FindByUserID(userID string) ([]models.Notification, error)
	MarkAsRead(notificationID string) error
	MarkAllAsRead(userID string) error
	UnreadCount(userID string) (int64, error)

	// Preference operations
	FindPreferences(userID string) (*models.NotificationPreferences, error)
	CreatePreferences(prefs *models.NotificationPreferences) error
	UpdatePreferences(prefs *models.NotificationPreferences) error
}

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) FindByID(id string) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

func (r *NotificationRepositoryImpl) FindByUserID(userID string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

// MarkAsRead is idempotent: flipping an already-read notification is a no-op.
func (r *NotificationRepositoryImpl) MarkAsRead(notificationID string) error {
	result := r.db.Model(&models.Notification{}).Where("id = ?", notificationID).Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// MarkAllAsRead flips every unread row for the user in a single UPDATE, so
// the unread count can never observe a partial flip.
func (r *NotificationRepositoryImpl) MarkAllAsRead(userID string) error {
	result := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	return result.Error
}

// UnreadCount is recomputed from the rows on every call; there is no
// incrementally maintained counter that could drift.
func (r *NotificationRepositoryImpl) UnreadCount(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (r *NotificationRepositoryImpl) FindPreferences(userID string) (*models.NotificationPreferences, error) {
	var prefs models.NotificationPreferences
	err := r.db.First(&prefs, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPreferencesNotFound
		}
		return nil, err
	}
	return &prefs, nil
}

func (r *NotificationRepositoryImpl) CreatePreferences(prefs *models.NotificationPreferences) error {
	return r.db.Create(prefs).Error
}

func (r *NotificationRepositoryImpl) UpdatePreferences(prefs *models.NotificationPreferences) error {
	return r.db.Save(prefs).Error
}
