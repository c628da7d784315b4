package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	HealthHandler        *HealthHandler
	AuthHandler          *AuthHandler
	ProfileHandler       *ProfileHandler
	ListingHandler       *ListingHandler
	DocumentHandler      *DocumentHandler
	AccessRequestHandler *AccessRequestHandler
	NotificationHandler  *NotificationHandler
	FileHandler          *FileHandler
}
