package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venturenest_backend/internal/auth"
	"venturenest_backend/internal/config"
	"venturenest_backend/internal/models"
	"venturenest_backend/internal/services/dto"
	"venturenest_backend/internal/validator"
)

func newDocumentTestRouter(stub *stubDocumentService) *gin.Engine {
	base := NewBaseHandler(validator.New())
	handler := NewDocumentHandler(base, stub)

	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)
	return router
}

// setUploadLimits narrows the configured limits for the duration of a test.
func setUploadLimits(t *testing.T, maxSize int64, allowedTypes []string) {
	t.Helper()
	cfg := config.GetConfig()
	prev := cfg.Upload
	cfg.Upload.MaxSize = maxSize
	cfg.Upload.AllowedTypes = allowedTypes
	t.Cleanup(func() { cfg.Upload = prev })
}

func doUpload(t *testing.T, router *gin.Engine, token, contentType string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("name", "Q2 financials"))
	require.NoError(t, writer.WriteField("document_type", string(models.DocumentTypeFinancialStatement)))

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="financials.pdf"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUploadDocument_RejectsOversizedFile(t *testing.T) {
	setUploadLimits(t, 16, []string{"application/pdf"})

	stub := &stubDocumentService{
		uploadFn: func(ownerID string, req *dto.UploadDocumentRequest) (*dto.DocumentResponse, error) {
			t.Fatal("upload must not reach the service")
			return nil, nil
		},
	}
	router := newDocumentTestRouter(stub)

	token, err := auth.GenerateToken("aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaaa")
	require.NoError(t, err)

	w := doUpload(t, router, token, "application/pdf", bytes.Repeat([]byte("x"), 64))
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}

func TestUploadDocument_RejectsDisallowedType(t *testing.T) {
	setUploadLimits(t, 1024, []string{"application/pdf"})

	stub := &stubDocumentService{
		uploadFn: func(ownerID string, req *dto.UploadDocumentRequest) (*dto.DocumentResponse, error) {
			t.Fatal("upload must not reach the service")
			return nil, nil
		},
	}
	router := newDocumentTestRouter(stub)

	token, err := auth.GenerateToken("aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaaa")
	require.NoError(t, err)

	w := doUpload(t, router, token, "application/x-msdownload", []byte("MZ"))
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}

func TestUploadDocument_AllowedFilePasses(t *testing.T) {
	setUploadLimits(t, 1024, []string{"application/pdf"})

	ownerID := "aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaaa"
	var gotOwner string
	stub := &stubDocumentService{
		uploadFn: func(owner string, req *dto.UploadDocumentRequest) (*dto.DocumentResponse, error) {
			gotOwner = owner
			return &dto.DocumentResponse{Name: req.Name}, nil
		},
	}
	router := newDocumentTestRouter(stub)

	token, err := auth.GenerateToken(ownerID)
	require.NoError(t, err)

	w := doUpload(t, router, token, "application/pdf", []byte("pdf-bytes"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, ownerID, gotOwner)
}
