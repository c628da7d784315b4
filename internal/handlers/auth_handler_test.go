package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venturenest_backend/internal/models"
	"venturenest_backend/internal/repositories"
	"venturenest_backend/internal/services"
	"venturenest_backend/internal/services/dto"
	"venturenest_backend/internal/validator"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Setenv("DATABASE_URL", "postgres://test")
	os.Setenv("JWT_SECRET", "test-secret")
	os.Exit(m.Run())
}

type memoryUserRepo struct {
	users map[string]*models.User
}

func (r *memoryUserRepo) Create(user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrEmailTaken
		}
	}
	if user.ID == "" {
		user.ID = "11111111-1111-4111-8111-111111111111"
	}
	r.users[user.ID] = user
	return nil
}

func (r *memoryUserRepo) FindByID(id string) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return user, nil
}

func (r *memoryUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *memoryUserRepo) Update(user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func newAuthTestRouter() *gin.Engine {
	userRepo := &memoryUserRepo{users: map[string]*models.User{}}
	authService := services.NewAuthService(userRepo)

	base := NewBaseHandler(validator.New())
	handler := NewAuthHandler(base, authService)

	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterLoginMe(t *testing.T) {
	router := newAuthTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", dto.RegisterRequest{
		Email:          "founder@example.com",
		Password:       "str0ngPassword",
		FullName:       "Ada Founder",
		IsEntrepreneur: true,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var registered dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registered))
	require.NotEmpty(t, registered.AccessToken)

	w = doJSON(t, router, http.MethodGet, "/api/v1/users/me", nil, registered.AccessToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var me dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	assert.Equal(t, "founder@example.com", me.Email)
	assert.True(t, me.IsEntrepreneur)
}

func TestRegister_ValidationFailure(t *testing.T) {
	router := newAuthTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", map[string]any{
		"email":    "not-an-email",
		"password": "short",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}

func TestMe_RequiresToken(t *testing.T) {
	router := newAuthTestRouter()

	w := doJSON(t, router, http.MethodGet, "/api/v1/users/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/users/me", nil, "garbage-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	router := newAuthTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", dto.RegisterRequest{
		Email:    "founder@example.com",
		Password: "str0ngPassword",
		FullName: "Ada Founder",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{
		Email:    "founder@example.com",
		Password: "wrongPassword1",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
