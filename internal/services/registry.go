package services

import (
	"gorm.io/gorm"

	"venturenest_backend/internal/email"
	"venturenest_backend/internal/repositories"
	"venturenest_backend/internal/storage"
)

// ServiceContainer wires every service over a shared set of repositories.
type ServiceContainer struct {
	Auth          AuthService
	Profile       BusinessProfileService
	Listing       ListingService
	Document      DocumentService
	AccessRequest AccessRequestService
	Notification  NotificationService
}

func NewServiceContainer(
	db *gorm.DB,
	store storage.Storage,
	emailProvider email.Provider,
	publisher RealtimePublisher,
) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewBusinessProfileRepository(db)
	listingRepo := repositories.NewListingRepository(db)
	documentRepo := repositories.NewDocumentRepository(db)
	accessRequestRepo := repositories.NewAccessRequestRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)

	notificationService := NewNotificationService(notificationRepo, userRepo, publisher, emailProvider)

	return &ServiceContainer{
		Auth:          NewAuthService(userRepo),
		Profile:       NewBusinessProfileService(profileRepo, userRepo, store),
		Listing:       NewListingService(listingRepo, profileRepo, notificationService),
		Document:      NewDocumentService(documentRepo, profileRepo, accessRequestRepo, store),
		AccessRequest: NewAccessRequestService(accessRequestRepo, documentRepo, profileRepo, notificationService),
		Notification:  notificationService,
	}
}
