package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venturenest_backend/internal/models"
	"venturenest_backend/internal/repositories"
	"venturenest_backend/internal/services/dto"
)

func boolPtr(b bool) *bool { return &b }

func newNotificationFixture() (*fakeNotificationRepo, *fakeUserRepo, *fakePublisher, *fakeEmailProvider, NotificationService) {
	notificationRepo := newFakeNotificationRepo()
	userRepo := newFakeUserRepo()
	publisher := newFakePublisher()
	emailProvider := &fakeEmailProvider{}
	svc := NewNotificationService(notificationRepo, userRepo, publisher, emailProvider)
	return notificationRepo, userRepo, publisher, emailProvider, svc
}

func TestCreateNotification_DefaultPreferences(t *testing.T) {
	notificationRepo, userRepo, publisher, emailProvider, svc := newNotificationFixture()
	user := userRepo.seed("owner@example.com")

	resp, err := svc.Create(&dto.CreateNotificationRequest{
		UserID:  user.ID,
		Title:   "Your listing was viewed",
		Message: "Someone viewed your listing 'Acme'",
		Type:    repositories.NotificationTypeListingView,
	})
	require.NoError(t, err)
	require.NotEqual(t, dto.SkippedNotificationID, resp.ID)

	// No preferences row means every channel and category is enabled.
	stored, err := notificationRepo.FindByID(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.UserID)
	assert.False(t, stored.IsRead)

	assert.Len(t, publisher.pushes[user.ID], 1)
	assert.Len(t, emailProvider.sent, 1)
	assert.Equal(t, []string{user.Email}, emailProvider.sent[0].To)
}

func TestCreateNotification_SuppressedCategory(t *testing.T) {
	notificationRepo, userRepo, publisher, emailProvider, svc := newNotificationFixture()
	user := userRepo.seed("owner@example.com")

	prefs := defaultPreferences(user.ID)
	prefs.ListingView = false
	require.NoError(t, notificationRepo.CreatePreferences(prefs))

	resp, err := svc.Create(&dto.CreateNotificationRequest{
		UserID: user.ID,
		Title:  "Your listing was viewed",
		Type:   repositories.NotificationTypeListingView,
	})
	require.NoError(t, err)

	// Suppression is not an error: the caller gets the skipped marker and
	// nothing is stored, pushed or mailed.
	assert.Equal(t, dto.SkippedNotificationID, resp.ID)
	assert.Empty(t, notificationRepo.notifications)
	assert.Empty(t, publisher.pushes[user.ID])
	assert.Empty(t, emailProvider.sent)

	count, err := svc.UnreadCount(user.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCreateNotification_ResponseTypesShareOneFlag(t *testing.T) {
	notificationRepo, userRepo, _, _, svc := newNotificationFixture()
	user := userRepo.seed("investor@example.com")

	prefs := defaultPreferences(user.ID)
	prefs.DocumentAccessResponse = false
	require.NoError(t, notificationRepo.CreatePreferences(prefs))

	for _, notificationType := range []string{
		repositories.NotificationTypeDocumentAccessApproved,
		repositories.NotificationTypeDocumentAccessRejected,
	} {
		resp, err := svc.Create(&dto.CreateNotificationRequest{
			UserID: user.ID,
			Title:  "Document access decision",
			Type:   notificationType,
		})
		require.NoError(t, err)
		assert.Equal(t, dto.SkippedNotificationID, resp.ID, notificationType)
	}
	assert.Empty(t, notificationRepo.notifications)
}

func TestCreateNotification_PushChannelDisabled(t *testing.T) {
	notificationRepo, userRepo, publisher, emailProvider, svc := newNotificationFixture()
	user := userRepo.seed("owner@example.com")

	prefs := defaultPreferences(user.ID)
	prefs.PushNotifications = false
	require.NoError(t, notificationRepo.CreatePreferences(prefs))

	resp, err := svc.Create(&dto.CreateNotificationRequest{
		UserID: user.ID,
		Title:  "Your listing was viewed",
		Type:   repositories.NotificationTypeListingView,
	})
	require.NoError(t, err)

	// The row is still written, only the realtime push is skipped.
	assert.NotEqual(t, dto.SkippedNotificationID, resp.ID)
	assert.Empty(t, publisher.pushes[user.ID])
	assert.Len(t, emailProvider.sent, 1)
}

func TestCreateNotification_UnknownUser(t *testing.T) {
	_, _, _, _, svc := newNotificationFixture()

	_, err := svc.Create(&dto.CreateNotificationRequest{
		UserID: newID(),
		Title:  "hello",
		Type:   repositories.NotificationTypeListingView,
	})
	assert.Error(t, err)
}

func TestMarkAllAsRead(t *testing.T) {
	notificationRepo, userRepo, _, _, svc := newNotificationFixture()
	alice := userRepo.seed("alice@example.com")
	bob := userRepo.seed("bob@example.com")

	for i := 0; i < 3; i++ {
		require.NoError(t, notificationRepo.Create(&models.Notification{
			UserID: alice.ID,
			Type:   repositories.NotificationTypeListingView,
			Title:  "viewed",
		}))
	}
	require.NoError(t, notificationRepo.Create(&models.Notification{
		UserID: bob.ID,
		Type:   repositories.NotificationTypeListingView,
		Title:  "viewed",
	}))

	require.NoError(t, svc.MarkAllAsRead(alice.ID))

	aliceCount, err := svc.UnreadCount(alice.ID)
	require.NoError(t, err)
	assert.Zero(t, aliceCount)

	// Another user's notifications stay untouched.
	bobCount, err := svc.UnreadCount(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), bobCount)
}

func TestMarkAsRead_OtherUsersNotification(t *testing.T) {
	notificationRepo, userRepo, _, _, svc := newNotificationFixture()
	alice := userRepo.seed("alice@example.com")
	bob := userRepo.seed("bob@example.com")

	notification := &models.Notification{
		UserID: alice.ID,
		Type:   repositories.NotificationTypeListingView,
		Title:  "viewed",
	}
	require.NoError(t, notificationRepo.Create(notification))

	err := svc.MarkAsRead(bob.ID, notification.ID)
	assert.Error(t, err)

	stored, _ := notificationRepo.FindByID(notification.ID)
	assert.False(t, stored.IsRead)
}

func TestGetPreferences_AbsentRowReportsDefaults(t *testing.T) {
	notificationRepo, userRepo, _, _, svc := newNotificationFixture()
	user := userRepo.seed("owner@example.com")

	prefs, err := svc.GetPreferences(user.ID)
	require.NoError(t, err)
	assert.True(t, prefs.EmailNotifications)
	assert.True(t, prefs.PushNotifications)
	assert.True(t, prefs.ListingView)
	assert.True(t, prefs.DocumentAccessResponse)

	// Reading defaults does not materialize a row.
	assert.Empty(t, notificationRepo.preferences)
}

func TestUpdatePreferences_LazyCreateKeepsUnsetFlagsEnabled(t *testing.T) {
	notificationRepo, userRepo, _, _, svc := newNotificationFixture()
	user := userRepo.seed("owner@example.com")

	prefs, err := svc.UpdatePreferences(user.ID, &dto.UpdatePreferencesRequest{
		ListingView: boolPtr(false),
	})
	require.NoError(t, err)

	assert.False(t, prefs.ListingView)
	assert.True(t, prefs.ListingSave)
	assert.True(t, prefs.EmailNotifications)

	stored, err := notificationRepo.FindPreferences(user.ID)
	require.NoError(t, err)
	assert.False(t, stored.ListingView)
	assert.True(t, stored.MessageReceived)
}

func TestUpdatePreferences_PatchesExistingRow(t *testing.T) {
	notificationRepo, userRepo, _, _, svc := newNotificationFixture()
	user := userRepo.seed("owner@example.com")

	existing := defaultPreferences(user.ID)
	existing.ListingView = false
	require.NoError(t, notificationRepo.CreatePreferences(existing))

	prefs, err := svc.UpdatePreferences(user.ID, &dto.UpdatePreferencesRequest{
		EmailNotifications: boolPtr(false),
	})
	require.NoError(t, err)

	// The earlier opt-out survives a patch that does not mention it.
	assert.False(t, prefs.ListingView)
	assert.False(t, prefs.EmailNotifications)
	assert.True(t, prefs.PushNotifications)
}
