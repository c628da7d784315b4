package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venturenest_backend/internal/services/dto"
)

func newProfileFixture() (*fakeProfileRepo, *fakeUserRepo, *fakeStorage, BusinessProfileService) {
	profileRepo := newFakeProfileRepo()
	userRepo := newFakeUserRepo()
	store := newFakeStorage()
	svc := NewBusinessProfileService(profileRepo, userRepo, store)
	return profileRepo, userRepo, store, svc
}

func TestCreateProfile(t *testing.T) {
	_, userRepo, _, svc := newProfileFixture()
	user := userRepo.seed("founder@example.com")

	resp, err := svc.Create(user.ID, &dto.CreateBusinessProfileRequest{
		CompanyName:  "Acme Holdings",
		Description:  "We make everything",
		IndustryTags: []string{"saas", "fintech", "saas", " fintech "},
		SocialMedia:  map[string]string{"linkedin": "https://linkedin.com/company/acme"},
	})
	require.NoError(t, err)

	assert.Equal(t, user.ID, resp.UserID)
	assert.Equal(t, "Acme Holdings", resp.CompanyName)
	// Tags are deduplicated and trimmed, first occurrence wins.
	assert.Equal(t, []string{"saas", "fintech"}, resp.IndustryTags)
	assert.Equal(t, "https://linkedin.com/company/acme", resp.SocialMedia["linkedin"])
}

func TestCreateProfile_OnePerUser(t *testing.T) {
	_, userRepo, _, svc := newProfileFixture()
	user := userRepo.seed("founder@example.com")

	_, err := svc.Create(user.ID, &dto.CreateBusinessProfileRequest{CompanyName: "Acme"})
	require.NoError(t, err)

	_, err = svc.Create(user.ID, &dto.CreateBusinessProfileRequest{CompanyName: "Acme Again"})
	assert.Error(t, err)
}

func TestCreateProfile_UnknownUser(t *testing.T) {
	_, _, _, svc := newProfileFixture()

	_, err := svc.Create(newID(), &dto.CreateBusinessProfileRequest{CompanyName: "Ghost Co"})
	assert.Error(t, err)
}

func TestUpdateProfile_PartialPatch(t *testing.T) {
	_, userRepo, _, svc := newProfileFixture()
	user := userRepo.seed("founder@example.com")

	_, err := svc.Create(user.ID, &dto.CreateBusinessProfileRequest{
		CompanyName: "Acme Holdings",
		Description: "Original description",
	})
	require.NoError(t, err)

	updated, err := svc.Update(user.ID, &dto.UpdateBusinessProfileRequest{
		Description: strPtr("New description"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme Holdings", updated.CompanyName)
	assert.Equal(t, "New description", updated.Description)
}

func TestUploadLogo(t *testing.T) {
	_, userRepo, store, svc := newProfileFixture()
	user := userRepo.seed("founder@example.com")

	_, err := svc.Create(user.ID, &dto.CreateBusinessProfileRequest{CompanyName: "Acme"})
	require.NoError(t, err)

	resp, err := svc.UploadLogo(context.Background(), user.ID, strings.NewReader("png-bytes"), "logo.png", "image/png")
	require.NoError(t, err)
	assert.Contains(t, resp.LogoURL, "business-logos/")
	assert.Len(t, store.objects, 1)

	// The profile record picks up the new URL.
	profile, err := svc.GetByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.LogoURL, profile.LogoURL)
}
