package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shootfed/src/app/http/dto"
	"shootfed/src/app/middleware"
	"shootfed/src/core/domain"
	"shootfed/src/core/ports"
	"shootfed/src/core/usecase"
	"shootfed/src/infra/logger"
)

const (
	eventID = "5b8e0c3a-2f1d-4e6a-9c7b-1a2b3c4d5e6f"
	adminID = "7a0c2f4e-1a9b-4c3d-8e5f-6b7a8c9d0e1f"
)

// fakeEvents is an in-memory ResourceService for events.
type fakeEvents struct {
	created     ports.Values
	updated     ports.Values
	listed      domain.ListParams
	deactivated string
}

func (f *fakeEvents) Create(_ context.Context, v ports.Values) (*domain.Event, error) {
	f.created = v
	return &domain.Event{
		PublicID:  eventID,
		Title:     v["title"].(string),
		StartDate: v["start_date"].(time.Time),
		EndDate:   v["end_date"].(time.Time),
		IsActive:  true,
	}, nil
}

func (f *fakeEvents) Get(_ context.Context, id string) (*domain.Event, error) {
	if id != eventID {
		return nil, domain.NewNotFoundError("event")
	}
	return &domain.Event{PublicID: eventID, Title: "Nationals"}, nil
}

func (f *fakeEvents) List(_ context.Context, p domain.ListParams) (domain.Page[domain.Event], error) {
	f.listed = p
	return domain.Page[domain.Event]{
		Items: []domain.Event{{PublicID: eventID, Title: "Nationals"}},
		Total: 11,
		Page:  p.Page,
		Limit: p.Limit,
	}, nil
}

func (f *fakeEvents) Update(_ context.Context, id string, v ports.Values) (*domain.Event, error) {
	f.updated = v
	return &domain.Event{PublicID: id, Title: "Renamed"}, nil
}

func (f *fakeEvents) Deactivate(_ context.Context, id string) error {
	f.deactivated = id
	return nil
}

func init() {
	gin.SetMode(gin.TestMode)
}

func pass(c *gin.Context) { c.Next() }

func eventRouter(svc *fakeEvents) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	h := NewResourceHandler(svc, dto.UpdateEvent, dto.BindList[dto.EventQuery], dto.NewEventResponse)
	h.Register(r.Group("/events"), pass)
	return r
}

func send(r http.Handler, method, path, body string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type errorBody struct {
	Error struct {
		Code   string                  `json:"code"`
		Fields []domain.FieldViolation `json:"fields"`
	} `json:"error"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func fieldNames(b errorBody) []string {
	var out []string
	for _, f := range b.Error.Fields {
		out = append(out, f.Field)
	}
	return out
}

func TestResourceHandler_Create(t *testing.T) {
	svc := &fakeEvents{}
	w := send(eventRouter(svc), http.MethodPost, "/events",
		`{"title":"Nationals","slug":"nationals-2025","event_type":"RIFLE","start_date":"2025-11-03","end_date":"2025-11-07"}`)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var body struct {
		Data dto.EventResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, eventID, body.Data.ID)
	assert.Equal(t, "2025-11-03", body.Data.StartDate)
	assert.NotContains(t, svc.created, "is_active")
	assert.NotContains(t, svc.created, "venue_id")
}

func TestResourceHandler_CreateValidation(t *testing.T) {
	w := send(eventRouter(&fakeEvents{}), http.MethodPost, "/events",
		`{"title":"Nationals","event_type":"SHOTGUN","start_date":"2025-11-03"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.ElementsMatch(t, []string{"slug", "event_type", "end_date"}, fieldNames(body))
}

func TestResourceHandler_List(t *testing.T) {
	svc := &fakeEvents{}
	w := send(eventRouter(svc), http.MethodGet, "/events?is_featured=true", "")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var body struct {
		Data       []dto.EventResponse `json:"data"`
		Total      int64               `json:"total"`
		Page       int                 `json:"page"`
		PerPage    int                 `json:"per_page"`
		TotalPages int                 `json:"total_pages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data, 1)
	assert.Equal(t, int64(11), body.Total)
	assert.Equal(t, 1, body.Page)
	assert.Equal(t, 10, body.PerPage)
	assert.Equal(t, 2, body.TotalPages)
	assert.Equal(t, map[string]any{"is_featured": true}, svc.listed.Filters)
}

func TestResourceHandler_ListRejectsBadPaging(t *testing.T) {
	for _, q := range []string{"page=0", "limit=101", "sortBy=slug"} {
		w := send(eventRouter(&fakeEvents{}), http.MethodGet, "/events?"+q, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}

func TestResourceHandler_Get(t *testing.T) {
	r := eventRouter(&fakeEvents{})

	assert.Equal(t, http.StatusOK, send(r, http.MethodGet, "/events/"+eventID, "").Code)
	assert.Equal(t, http.StatusNotFound, send(r, http.MethodGet, "/events/00000000-0000-4000-8000-000000000000", "").Code)

	w := send(r, http.MethodGet, "/events/17", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"id"}, fieldNames(decodeError(t, w)))
}

func TestResourceHandler_Update(t *testing.T) {
	svc := &fakeEvents{}
	r := eventRouter(svc)

	w := send(r, http.MethodPatch, "/events/"+eventID, `{"title":"Renamed","category":null}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, ports.Values{"title": "Renamed"}, svc.updated)

	w = send(r, http.MethodPatch, "/events/"+eventID, `{"owner":"me"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"owner"}, fieldNames(decodeError(t, w)))
}

func TestResourceHandler_Deactivate(t *testing.T) {
	svc := &fakeEvents{}
	w := send(eventRouter(svc), http.MethodDelete, "/events/"+eventID, "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, eventID, svc.deactivated)
}

// fakeCategories records the actor of each governed write.
type fakeCategories struct {
	actor domain.Actor
}

func (f *fakeCategories) Create(_ context.Context, a domain.Actor, v ports.Values) (*domain.DisabilityCategory, error) {
	f.actor = a
	return &domain.DisabilityCategory{PublicID: eventID, Code: v["code"].(string), EventType: domain.EventType(v["event_type"].(string)), IsActive: true}, nil
}

func (f *fakeCategories) Get(context.Context, string) (*domain.DisabilityCategory, error) {
	return nil, domain.NewNotFoundError("disability category")
}

func (f *fakeCategories) List(context.Context, domain.ListParams) (domain.Page[domain.DisabilityCategory], error) {
	return domain.Page[domain.DisabilityCategory]{}, nil
}

func (f *fakeCategories) Update(_ context.Context, a domain.Actor, id string, _ ports.Values) (*domain.DisabilityCategory, error) {
	f.actor = a
	return &domain.DisabilityCategory{PublicID: id}, nil
}

func (f *fakeCategories) Deactivate(_ context.Context, a domain.Actor, _ string) error {
	f.actor = a
	return nil
}

func TestGovernedHandler_PassesActor(t *testing.T) {
	svc := &fakeCategories{}
	guard := func(c *gin.Context) {
		c.Set(middleware.ActorKey, domain.Actor{UserID: adminID, Roles: []string{domain.RoleAdmin}})
		c.Next()
	}
	r := gin.New()
	NewGovernedHandler(svc, dto.UpdateDisabilityCategory, dto.BindList[dto.DisabilityCategoryQuery], dto.NewDisabilityCategoryResponse).
		Register(r.Group("/disability-categories"), guard)

	w := send(r, http.MethodPost, "/disability-categories", `{"code":"SH1","name":"Rifle","event_type":"HYBRID"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"event_type"}, fieldNames(decodeError(t, w)))
	assert.Empty(t, svc.actor.UserID)

	w = send(r, http.MethodPost, "/disability-categories", `{"code":"SH1","name":"Rifle","event_type":"BOTH"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, adminID, svc.actor.UserID)
	assert.Contains(t, w.Body.String(), `"is_active":true`)

	w = send(r, http.MethodDelete, "/disability-categories/"+eventID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestGovernedHandler_GuardBlocksWrites(t *testing.T) {
	svc := &fakeCategories{}
	deny := func(c *gin.Context) { c.AbortWithStatus(http.StatusForbidden) }
	r := gin.New()
	NewGovernedHandler(svc, dto.UpdateDisabilityCategory, dto.BindList[dto.DisabilityCategoryQuery], dto.NewDisabilityCategoryResponse).
		Register(r.Group("/disability-categories"), deny)

	w := send(r, http.MethodPatch, "/disability-categories/"+eventID, `{"name":"Pistol"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, http.StatusOK, send(r, http.MethodGet, "/disability-categories", "").Code)
}

// memUsers is an in-memory user and role repository.
type memUsers struct {
	users map[string]*domain.User
	roles map[int64][]string
}

func newMemUsers() *memUsers {
	return &memUsers{users: map[string]*domain.User{}, roles: map[int64][]string{}}
}

func (m *memUsers) CreateUser(_ context.Context, v ports.Values) (*domain.User, error) {
	u := &domain.User{
		ID:           int64(len(m.users) + 1),
		PublicID:     adminID,
		Email:        v["email"].(string),
		PasswordHash: v["password_hash"].(string),
		FirstName:    v["first_name"].(string),
		LastName:     v["last_name"].(string),
		IsActive:     true,
	}
	m.users[u.PublicID] = u
	return u, nil
}

func (m *memUsers) GetUser(_ context.Context, id string) (*domain.User, error) {
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.NewNotFoundError("user")
}

func (m *memUsers) ListUsers(context.Context, domain.ListParams) (domain.Page[domain.User], error) {
	return domain.Page[domain.User]{}, nil
}

func (m *memUsers) UpdateUser(ctx context.Context, id string, _ ports.Values) (*domain.User, error) {
	return m.GetUser(ctx, id)
}

func (m *memUsers) UserRoleNames(_ context.Context, ids ...int64) (map[int64][]string, error) {
	out := map[int64][]string{}
	for _, id := range ids {
		out[id] = m.roles[id]
	}
	return out, nil
}

func (m *memUsers) AssignRole(_ context.Context, userID int64, role string, _ *string) error {
	if role != domain.RoleAdmin && role != domain.RoleEditor && role != domain.RoleViewer {
		return domain.NewNotFoundError("role")
	}
	m.roles[userID] = append(m.roles[userID], role)
	return nil
}

func (m *memUsers) RevokeRole(context.Context, int64, string) error { return nil }

func (m *memUsers) ListRoles(context.Context) ([]domain.Role, error) {
	return []domain.Role{{PublicID: eventID, Name: domain.RoleAdmin}}, nil
}

func (m *memUsers) GetRoleByName(context.Context, string) (*domain.Role, error) {
	return nil, domain.NewNotFoundError("role")
}

type prefixHasher struct{}

func (prefixHasher) Hash(p string) (string, error) { return "hashed:" + p, nil }

func userRouter(repo *memUsers) *gin.Engine {
	svc := usecase.NewUserService(repo, repo, prefixHasher{}, logger.Discard())
	r := gin.New()
	r.Use(middleware.RequestID())
	NewUserHandler(svc).Register(r.Group("/api/v1"), middleware.RequireRole(svc, domain.RoleAdmin))
	return r
}

func TestUserHandler_CreateNeverLeaksPassword(t *testing.T) {
	w := send(userRouter(newMemUsers()), http.MethodPost, "/api/v1/users",
		`{"email":"ada@example.com","password":"hunter22hunter","first_name":"Ada","last_name":"Lovelace"}`)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "hunter22hunter")
	assert.NotContains(t, w.Body.String(), "password")
	assert.Contains(t, w.Body.String(), `"full_name":"Ada Lovelace"`)
}

func TestUserHandler_CreateRejectsOverlongPassword(t *testing.T) {
	body := `{"email":"ada@example.com","password":"` + strings.Repeat("a", 100) +
		`","first_name":"Ada","last_name":"Lovelace"}`
	w := send(userRouter(newMemUsers()), http.MethodPost, "/api/v1/users", body)

	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	b := decodeError(t, w)
	assert.Equal(t, "VALIDATION_ERROR", b.Error.Code)
	assert.Equal(t, []string{"password"}, fieldNames(b))
}

func TestUserHandler_PatchRejectsPassword(t *testing.T) {
	repo := newMemUsers()
	repo.users[adminID] = &domain.User{ID: 1, PublicID: adminID, IsActive: true}
	repo.roles[1] = []string{domain.RoleAdmin}

	w := send(userRouter(repo), http.MethodPatch, "/api/v1/users/"+adminID, `{"password":"newsecret123"}`,
		middleware.UserIDHeader, adminID)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"password"}, fieldNames(decodeError(t, w)))
}

func TestUserHandler_AssignRoleRequiresAdmin(t *testing.T) {
	repo := newMemUsers()
	repo.users[adminID] = &domain.User{ID: 1, PublicID: adminID, IsActive: true}
	r := userRouter(repo)

	w := send(r, http.MethodPut, "/api/v1/users/"+adminID+"/roles/editor", "", middleware.UserIDHeader, adminID)
	assert.Equal(t, http.StatusForbidden, w.Code)

	repo.roles[1] = []string{domain.RoleAdmin}
	w = send(r, http.MethodPut, "/api/v1/users/"+adminID+"/roles/editor", "", middleware.UserIDHeader, adminID)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"roles":["admin","editor"]`)

	w = send(r, http.MethodPut, "/api/v1/users/"+adminID+"/roles/owner", "", middleware.UserIDHeader, adminID)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

type failingCheck struct{}

func (failingCheck) Health(context.Context) error { return errors.New("connection refused") }

func TestHealthHandler(t *testing.T) {
	h := NewHealthHandler(usecase.NewHealthService(logger.Discard(), map[string]usecase.HealthChecker{"database": failingCheck{}}))
	r := gin.New()
	r.GET("/health", h.Health)
	r.GET("/health/detailed", h.DetailedHealth)

	assert.Equal(t, http.StatusOK, send(r, http.MethodGet, "/health", "").Code)

	w := send(r, http.MethodGet, "/health/detailed", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}

// memMedia stores media items and files in memory.
type memMedia struct {
	created ports.Values
	stored  bytes.Buffer
}

func (m *memMedia) CreateMedia(_ context.Context, v ports.Values) (*domain.MediaItem, error) {
	m.created = v
	return &domain.MediaItem{
		PublicID:  eventID,
		Title:     v["title"].(string),
		MediaType: v["media_type"].(domain.MediaType),
		URL:       v["url"].(string),
	}, nil
}

func (m *memMedia) GetMedia(context.Context, string) (*domain.MediaItem, error) {
	return nil, domain.NewNotFoundError("media item")
}

func (m *memMedia) ListMedia(context.Context, domain.ListParams) (domain.Page[domain.MediaItem], error) {
	return domain.Page[domain.MediaItem]{}, nil
}

func (m *memMedia) UpdateMedia(context.Context, string, ports.Values) (*domain.MediaItem, error) {
	return nil, domain.NewNotFoundError("media item")
}

func (m *memMedia) Health(context.Context) error { return nil }

func (m *memMedia) Put(_ context.Context, key string, body io.Reader, size int64, contentType string) (*ports.StoredObject, error) {
	if _, err := m.stored.ReadFrom(body); err != nil {
		return nil, err
	}
	return &ports.StoredObject{Key: key, URL: "https://cdn.example/" + key, ContentType: contentType, Size: size}, nil
}

func TestMediaHandler_Upload(t *testing.T) {
	mem := &memMedia{}
	svc := usecase.NewMediaService(mem, mem, 1<<20, logger.Discard())
	r := gin.New()
	NewMediaHandler(svc).Register(r.Group("/media"), pass)

	png := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "Podium"))
	fw, err := mw.CreateFormFile("file", "podium.png")
	require.NoError(t, err)
	_, err = fw.Write(png)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/media/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, domain.MediaImage, mem.created["media_type"])
	assert.Equal(t, "image/png", mem.created["content_type"])
	assert.Equal(t, png, mem.stored.Bytes())
	assert.Contains(t, w.Body.String(), `"url":"https://cdn.example/media/`)
}

func TestMediaHandler_UploadRequiresFile(t *testing.T) {
	mem := &memMedia{}
	r := gin.New()
	NewMediaHandler(usecase.NewMediaService(mem, mem, 1<<20, logger.Discard())).Register(r.Group("/media"), pass)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "Podium"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/media/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"file"`)
}

func TestMediaHandler_UploadWithoutStorage(t *testing.T) {
	mem := &memMedia{}
	r := gin.New()
	NewMediaHandler(usecase.NewMediaService(mem, nil, 1<<20, logger.Discard())).Register(r.Group("/media"), pass)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "Podium"))
	fw, err := mw.CreateFormFile("file", "podium.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("\x89PNG\r\n\x1a\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/media/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusServiceUnavailable, w.Code, w.Body.String())
	assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, w).Error.Code)
	assert.Nil(t, mem.created)
}
