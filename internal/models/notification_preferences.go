package models

// NotificationPreferences holds the per-category opt-out flags plus the two
// delivery channel flags. Rows are created lazily with everything enabled;
// a missing row means "all enabled".
type NotificationPreferences struct {
	BaseModel
	UserID                 string `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	EmailNotifications     bool   `gorm:"default:true" json:"email_notifications"`
	PushNotifications      bool   `gorm:"default:true" json:"push_notifications"`
	ListingView            bool   `gorm:"default:true" json:"listing_view"`
	ListingSave            bool   `gorm:"default:true" json:"listing_save"`
	ConnectionRequest      bool   `gorm:"default:true" json:"connection_request"`
	DocumentAccessRequest  bool   `gorm:"default:true" json:"document_access_request"`
	DocumentAccessResponse bool   `gorm:"default:true" json:"document_access_response"`
	MessageReceived        bool   `gorm:"default:true" json:"message_received"`
}
