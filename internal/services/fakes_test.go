package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"venturenest_backend/internal/email"
	"venturenest_backend/internal/models"
	"venturenest_backend/internal/repositories"
)

// In-memory repository fakes shared by the service tests.

func newID() string {
	return fmt.Sprintf("00000000-0000-4000-8000-%012d", nextID())
}

var idCounter int
var idMu sync.Mutex

func nextID() int {
	idMu.Lock()
	defer idMu.Unlock()
	idCounter++
	return idCounter
}

// ---------------- users ----------------

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrEmailTaken
		}
	}
	if user.ID == "" {
		user.ID = newID()
	}
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(emailAddr string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == emailAddr {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Update(user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) seed(email string) *models.User {
	user := &models.User{Email: email, PasswordHash: "x"}
	user.ID = newID()
	r.users[user.ID] = user
	return user
}

// ---------------- business profiles ----------------

type fakeProfileRepo struct {
	profiles map[string]*models.BusinessProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]*models.BusinessProfile{}}
}

func (r *fakeProfileRepo) Create(profile *models.BusinessProfile) error {
	for _, p := range r.profiles {
		if p.UserID == profile.UserID {
			return repositories.ErrProfileAlreadyExists
		}
	}
	if profile.ID == "" {
		profile.ID = newID()
	}
	r.profiles[profile.ID] = profile
	return nil
}

func (r *fakeProfileRepo) FindByID(id string) (*models.BusinessProfile, error) {
	profile, ok := r.profiles[id]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	return profile, nil
}

func (r *fakeProfileRepo) FindByUserID(userID string) (*models.BusinessProfile, error) {
	for _, p := range r.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, repositories.ErrProfileNotFound
}

func (r *fakeProfileRepo) Update(profile *models.BusinessProfile) error {
	if _, ok := r.profiles[profile.ID]; !ok {
		return repositories.ErrProfileNotFound
	}
	r.profiles[profile.ID] = profile
	return nil
}

func (r *fakeProfileRepo) seed(userID, companyName string) *models.BusinessProfile {
	profile := &models.BusinessProfile{UserID: userID, CompanyName: companyName}
	profile.ID = newID()
	r.profiles[profile.ID] = profile
	return profile
}

// ---------------- listings ----------------

type fakeListingRepo struct {
	listings map[string]*models.CompanyListing
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: map[string]*models.CompanyListing{}}
}

func (r *fakeListingRepo) Create(listing *models.CompanyListing) error {
	if listing.ID == "" {
		listing.ID = newID()
	}
	r.listings[listing.ID] = listing
	return nil
}

func (r *fakeListingRepo) FindByID(id string) (*models.CompanyListing, error) {
	listing, ok := r.listings[id]
	if !ok {
		return nil, repositories.ErrListingNotFound
	}
	copied := *listing
	return &copied, nil
}

func (r *fakeListingRepo) FindByProfileID(businessProfileID string) ([]models.CompanyListing, error) {
	var out []models.CompanyListing
	for _, l := range r.listings {
		if l.BusinessProfileID == businessProfileID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *fakeListingRepo) FindPublished(limit, offset int) ([]models.CompanyListing, int64, error) {
	var out []models.CompanyListing
	for _, l := range r.listings {
		if l.Status == models.ListingStatusPublished {
			out = append(out, *l)
		}
	}
	total := int64(len(out))
	if offset >= len(out) {
		return nil, total, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func (r *fakeListingRepo) Update(listing *models.CompanyListing) error {
	if _, ok := r.listings[listing.ID]; !ok {
		return repositories.ErrListingNotFound
	}
	r.listings[listing.ID] = listing
	return nil
}

func (r *fakeListingRepo) UpdateStatus(id string, status models.ListingStatus) error {
	listing, ok := r.listings[id]
	if !ok {
		return repositories.ErrListingNotFound
	}
	listing.Status = status
	return nil
}

// ---------------- documents ----------------

type fakeDocumentRepo struct {
	documents map[string]*models.Document
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{documents: map[string]*models.Document{}}
}

func (r *fakeDocumentRepo) Create(document *models.Document) error {
	if document.ID == "" {
		document.ID = newID()
	}
	r.documents[document.ID] = document
	return nil
}

func (r *fakeDocumentRepo) FindByID(id string) (*models.Document, error) {
	document, ok := r.documents[id]
	if !ok {
		return nil, repositories.ErrDocumentNotFound
	}
	copied := *document
	return &copied, nil
}

func (r *fakeDocumentRepo) FindByProfileID(businessProfileID string) ([]models.Document, error) {
	var out []models.Document
	for _, d := range r.documents {
		if d.BusinessProfileID == businessProfileID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeDocumentRepo) FindByStoragePath(path string) (*models.Document, error) {
	for _, d := range r.documents {
		if strings.HasSuffix(d.FileURL, "/"+path) {
			copied := *d
			return &copied, nil
		}
	}
	return nil, repositories.ErrDocumentNotFound
}

func (r *fakeDocumentRepo) Update(document *models.Document) error {
	if _, ok := r.documents[document.ID]; !ok {
		return repositories.ErrDocumentNotFound
	}
	r.documents[document.ID] = document
	return nil
}

func (r *fakeDocumentRepo) Delete(id string) error {
	if _, ok := r.documents[id]; !ok {
		return repositories.ErrDocumentNotFound
	}
	delete(r.documents, id)
	return nil
}

func (r *fakeDocumentRepo) seed(profileID, name string, confidential bool) *models.Document {
	document := &models.Document{
		BusinessProfileID: profileID,
		Name:              name,
		FileURL:           "/api/v1/files/documents/" + name,
		DocumentType:      models.DocumentTypeFinancialStatement,
		IsConfidential:    confidential,
		Version:           1,
	}
	document.ID = newID()
	r.documents[document.ID] = document
	return document
}

// ---------------- access requests ----------------

type fakeAccessRequestRepo struct {
	requests map[string]*models.DocumentAccessRequest
}

func newFakeAccessRequestRepo() *fakeAccessRequestRepo {
	return &fakeAccessRequestRepo{requests: map[string]*models.DocumentAccessRequest{}}
}

func (r *fakeAccessRequestRepo) Create(request *models.DocumentAccessRequest) error {
	if request.ID == "" {
		request.ID = newID()
	}
	r.requests[request.ID] = request
	return nil
}

func (r *fakeAccessRequestRepo) FindByID(id string) (*models.DocumentAccessRequest, error) {
	request, ok := r.requests[id]
	if !ok {
		return nil, repositories.ErrAccessRequestNotFound
	}
	copied := *request
	return &copied, nil
}

func (r *fakeAccessRequestRepo) FindPending(documentID, investorID string) (*models.DocumentAccessRequest, error) {
	for _, req := range r.requests {
		if req.DocumentID == documentID && req.InvestorID == investorID && req.Status == models.AccessRequestStatusPending {
			copied := *req
			return &copied, nil
		}
	}
	return nil, repositories.ErrAccessRequestNotFound
}

func (r *fakeAccessRequestRepo) HasApproved(documentID, investorID string) (bool, error) {
	for _, req := range r.requests {
		if req.DocumentID == documentID && req.InvestorID == investorID && req.Status == models.AccessRequestStatusApproved {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAccessRequestRepo) FindByBusinessProfileID(businessProfileID string) ([]models.DocumentAccessRequest, error) {
	var out []models.DocumentAccessRequest
	for _, req := range r.requests {
		if req.Document != nil && req.Document.BusinessProfileID == businessProfileID {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (r *fakeAccessRequestRepo) FindByInvestorID(investorID string) ([]models.DocumentAccessRequest, error) {
	var out []models.DocumentAccessRequest
	for _, req := range r.requests {
		if req.InvestorID == investorID {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (r *fakeAccessRequestRepo) UpdateResponse(id string, status models.AccessRequestStatus, respondedAt time.Time) error {
	request, ok := r.requests[id]
	if !ok {
		return repositories.ErrAccessRequestNotFound
	}
	request.Status = status
	request.RespondedAt = &respondedAt
	return nil
}

// ---------------- notifications ----------------

type fakeNotificationRepo struct {
	notifications map[string]*models.Notification
	preferences   map[string]*models.NotificationPreferences
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{
		notifications: map[string]*models.Notification{},
		preferences:   map[string]*models.NotificationPreferences{},
	}
}

func (r *fakeNotificationRepo) Create(notification *models.Notification) error {
	if notification.ID == "" {
		notification.ID = newID()
	}
	notification.CreatedAt = time.Now()
	r.notifications[notification.ID] = notification
	return nil
}

func (r *fakeNotificationRepo) FindByID(id string) (*models.Notification, error) {
	notification, ok := r.notifications[id]
	if !ok {
		return nil, repositories.ErrNotificationNotFound
	}
	return notification, nil
}

func (r *fakeNotificationRepo) FindByUserID(userID string) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) MarkAsRead(notificationID string) error {
	notification, ok := r.notifications[notificationID]
	if !ok {
		return repositories.ErrNotificationNotFound
	}
	notification.IsRead = true
	return nil
}

func (r *fakeNotificationRepo) MarkAllAsRead(userID string) error {
	for _, n := range r.notifications {
		if n.UserID == userID {
			n.IsRead = true
		}
	}
	return nil
}

func (r *fakeNotificationRepo) UnreadCount(userID string) (int64, error) {
	var count int64
	for _, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) FindPreferences(userID string) (*models.NotificationPreferences, error) {
	prefs, ok := r.preferences[userID]
	if !ok {
		return nil, repositories.ErrPreferencesNotFound
	}
	return prefs, nil
}

func (r *fakeNotificationRepo) CreatePreferences(prefs *models.NotificationPreferences) error {
	if prefs.ID == "" {
		prefs.ID = newID()
	}
	r.preferences[prefs.UserID] = prefs
	return nil
}

func (r *fakeNotificationRepo) UpdatePreferences(prefs *models.NotificationPreferences) error {
	if _, ok := r.preferences[prefs.UserID]; !ok {
		return repositories.ErrPreferencesNotFound
	}
	r.preferences[prefs.UserID] = prefs
	return nil
}

// ---------------- realtime and email ----------------

type fakePublisher struct {
	pushes map[string][]any
}

func newFakePublisher() *fakePublisher {
	return &fakePublisher{pushes: map[string][]any{}}
}

func (p *fakePublisher) PushToUser(userID string, payload any) {
	p.pushes[userID] = append(p.pushes[userID], payload)
}

type fakeEmailProvider struct {
	sent []*email.Email
}

func (p *fakeEmailProvider) Send(msg *email.Email) error {
	p.sent = append(p.sent, msg)
	return nil
}

func (p *fakeEmailProvider) Close() error { return nil }

// ---------------- object storage ----------------

type fakeStorage struct {
	objects map[string][]byte
	deleted []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}}
}

func (s *fakeStorage) Save(ctx context.Context, path string, reader io.Reader, contentType string) error {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return err
	}
	s.objects[path] = buf.Bytes()
	return nil
}

func (s *fakeStorage) Delete(ctx context.Context, path string) error {
	delete(s.objects, path)
	s.deleted = append(s.deleted, path)
	return nil
}

func (s *fakeStorage) Exists(ctx context.Context, path string) (bool, error) {
	_, ok := s.objects[path]
	return ok, nil
}

func (s *fakeStorage) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	data, ok := s.objects[path]
	if !ok {
		return nil, fmt.Errorf("object not found: %s", path)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *fakeStorage) GetURL(ctx context.Context, path string) (string, error) {
	return "/api/v1/files/" + path, nil
}

func (s *fakeStorage) GetSignedURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return "/api/v1/files/" + path + "?signed=1", nil
}
