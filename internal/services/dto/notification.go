package dto

import (
	"time"

	"venturenest_backend/internal/models"
)

// SkippedNotificationID marks a notification the dispatcher suppressed
// because of the recipient's preferences. The object is synthetic: nothing
// was written and no realtime push happened.
const SkippedNotificationID = "skipped"

// ---------------- Requests ----------------

type CreateNotificationRequest struct {
	// UserID is never read from the request body. The handler stamps the
	// authenticated caller and the workflow services set the recipient
	// themselves.
	UserID    string `json:"-" validate:"omitempty,uuid"`
	Title     string `json:"title" validate:"required,max=100"`
	Message   string `json:"message" validate:"omitempty,max=1000"`
	Type      string `json:"type" validate:"required,oneof=listing_view listing_save connection_request document_access_request document_access_approved document_access_rejected message_received"`
	RelatedID string `json:"related_id,omitempty" validate:"omitempty,uuid"`
}

// UpdatePreferencesRequest is a partial update; absent fields keep their
// current value, or default to enabled when the row is created lazily.
type UpdatePreferencesRequest struct {
	EmailNotifications     *bool `json:"email_notifications,omitempty"`
	PushNotifications      *bool `json:"push_notifications,omitempty"`
	ListingView            *bool `json:"listing_view,omitempty"`
	ListingSave            *bool `json:"listing_save,omitempty"`
	ConnectionRequest      *bool `json:"connection_request,omitempty"`
	DocumentAccessRequest  *bool `json:"document_access_request,omitempty"`
	DocumentAccessResponse *bool `json:"document_access_response,omitempty"`
	MessageReceived        *bool `json:"message_received,omitempty"`
}

// ---------------- Responses ----------------

type NotificationResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"is_read"`
	RelatedID string    `json:"related_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []*NotificationResponse `json:"notifications"`
	Total         int                     `json:"total"`
}

type UnreadCountResponse struct {
	UnreadCount int64 `json:"unread_count"`
}

type PreferencesResponse struct {
	UserID                 string `json:"user_id"`
	EmailNotifications     bool   `json:"email_notifications"`
	PushNotifications      bool   `json:"push_notifications"`
	ListingView            bool   `json:"listing_view"`
	ListingSave            bool   `json:"listing_save"`
	ConnectionRequest      bool   `json:"connection_request"`
	DocumentAccessRequest  bool   `json:"document_access_request"`
	DocumentAccessResponse bool   `json:"document_access_response"`
	MessageReceived        bool   `json:"message_received"`
}

func NewNotificationResponse(notification *models.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:        notification.ID,
		UserID:    notification.UserID,
		Title:     notification.Title,
		Message:   notification.Message,
		Type:      notification.Type,
		IsRead:    notification.IsRead,
		RelatedID: notification.RelatedID,
		CreatedAt: notification.CreatedAt,
	}
}

func NewPreferencesResponse(prefs *models.NotificationPreferences) *PreferencesResponse {
	return &PreferencesResponse{
		UserID:                 prefs.UserID,
		EmailNotifications:     prefs.EmailNotifications,
		PushNotifications:      prefs.PushNotifications,
		ListingView:            prefs.ListingView,
		ListingSave:            prefs.ListingSave,
		ConnectionRequest:      prefs.ConnectionRequest,
		DocumentAccessRequest:  prefs.DocumentAccessRequest,
		DocumentAccessResponse: prefs.DocumentAccessResponse,
		MessageReceived:        prefs.MessageReceived,
	}
}
