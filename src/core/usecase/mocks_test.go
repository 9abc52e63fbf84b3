package usecase

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"shootfed/src/core/domain"
	"shootfed/src/core/ports"
)

// inlineTx runs fn without a real transaction and records how often it ran.
type inlineTx struct {
	calls int
}

func (t *inlineTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

type mockAuditRepo struct {
	mock.Mock
}

func (m *mockAuditRepo) CreateAuditLog(ctx context.Context, entry *domain.AuditLog) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *mockAuditRepo) ListAuditLogs(ctx context.Context, p domain.ListParams) (domain.Page[domain.AuditLog], error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.Page[domain.AuditLog]), args.Error(1)
}

type mockVenueRepo struct {
	mock.Mock
}

func (m *mockVenueRepo) CreateVenue(ctx context.Context, v ports.Values) (*domain.Venue, error) {
	args := m.Called(ctx, v)
	if e := args.Get(0); e != nil {
		return e.(*domain.Venue), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVenueRepo) GetVenue(ctx context.Context, id string) (*domain.Venue, error) {
	args := m.Called(ctx, id)
	if e := args.Get(0); e != nil {
		return e.(*domain.Venue), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVenueRepo) ListVenues(ctx context.Context, p domain.ListParams) (domain.Page[domain.Venue], error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.Page[domain.Venue]), args.Error(1)
}

func (m *mockVenueRepo) UpdateVenue(ctx context.Context, id string, v ports.Values) (*domain.Venue, error) {
	args := m.Called(ctx, id, v)
	if e := args.Get(0); e != nil {
		return e.(*domain.Venue), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) CreateUser(ctx context.Context, v ports.Values) (*domain.User, error) {
	args := m.Called(ctx, v)
	if e := args.Get(0); e != nil {
		return e.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUser(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if e := args.Get(0); e != nil {
		return e.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) ListUsers(ctx context.Context, p domain.ListParams) (domain.Page[domain.User], error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.Page[domain.User]), args.Error(1)
}

func (m *mockUserRepo) UpdateUser(ctx context.Context, id string, v ports.Values) (*domain.User, error) {
	args := m.Called(ctx, id, v)
	if e := args.Get(0); e != nil {
		return e.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) UserRoleNames(ctx context.Context, ids ...int64) (map[int64][]string, error) {
	args := m.Called(ctx, ids)
	if e := args.Get(0); e != nil {
		return e.(map[int64][]string), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) AssignRole(ctx context.Context, userID int64, role string, by *string) error {
	return m.Called(ctx, userID, role, by).Error(0)
}

func (m *mockUserRepo) RevokeRole(ctx context.Context, userID int64, role string) error {
	return m.Called(ctx, userID, role).Error(0)
}

type fakeHasher struct{}

func (fakeHasher) Hash(p string) (string, error) { return "hashed:" + p, nil }

type mockNewsRepo struct {
	mock.Mock
}

func (m *mockNewsRepo) CreateNews(ctx context.Context, v ports.Values) (*domain.NewsArticle, error) {
	args := m.Called(ctx, v)
	if e := args.Get(0); e != nil {
		return e.(*domain.NewsArticle), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNewsRepo) GetNews(ctx context.Context, id string) (*domain.NewsArticle, error) {
	args := m.Called(ctx, id)
	if e := args.Get(0); e != nil {
		return e.(*domain.NewsArticle), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNewsRepo) GetNewsBySlug(ctx context.Context, slug string) (*domain.NewsArticle, error) {
	args := m.Called(ctx, slug)
	if e := args.Get(0); e != nil {
		return e.(*domain.NewsArticle), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNewsRepo) ListNews(ctx context.Context, p domain.ListParams) (domain.Page[domain.NewsArticle], error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.Page[domain.NewsArticle]), args.Error(1)
}

func (m *mockNewsRepo) UpdateNews(ctx context.Context, id string, v ports.Values) (*domain.NewsArticle, error) {
	args := m.Called(ctx, id, v)
	if e := args.Get(0); e != nil {
		return e.(*domain.NewsArticle), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockMediaRepo struct {
	mock.Mock
}

func (m *mockMediaRepo) CreateMedia(ctx context.Context, v ports.Values) (*domain.MediaItem, error) {
	args := m.Called(ctx, v)
	if e := args.Get(0); e != nil {
		return e.(*domain.MediaItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMediaRepo) GetMedia(ctx context.Context, id string) (*domain.MediaItem, error) {
	args := m.Called(ctx, id)
	if e := args.Get(0); e != nil {
		return e.(*domain.MediaItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMediaRepo) ListMedia(ctx context.Context, p domain.ListParams) (domain.Page[domain.MediaItem], error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.Page[domain.MediaItem]), args.Error(1)
}

func (m *mockMediaRepo) UpdateMedia(ctx context.Context, id string, v ports.Values) (*domain.MediaItem, error) {
	args := m.Called(ctx, id, v)
	if e := args.Get(0); e != nil {
		return e.(*domain.MediaItem), args.Error(1)
	}
	return nil, args.Error(1)
}

// memStore keeps the last uploaded object in memory.
type memStore struct {
	key         string
	body        []byte
	contentType string
}

func (s *memStore) Health(context.Context) error { return nil }

func (s *memStore) Put(_ context.Context, key string, body io.Reader, size int64, contentType string) (*ports.StoredObject, error) {
	b, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	s.key, s.body, s.contentType = key, b, contentType
	return &ports.StoredObject{Key: key, URL: "https://cdn.test/" + key, ContentType: contentType, Size: size}, nil
}
