// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"shootfed/src/core/domain"
)

// Values maps column names to the values to write. Keys always originate
// from a request DTO's declared fields, never from raw client input.
type Values map[string]any

// Transactor runs fn inside a single storage transaction. Repository calls
// made with the context passed to fn join that transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserRepository persists users and their role assignments.
type UserRepository interface {
	CreateUser(ctx context.Context, values Values) (*domain.User, error)
	GetUser(ctx context.Context, publicID string) (*domain.User, error)
	ListUsers(ctx context.Context, params domain.ListParams) (domain.Page[domain.User], error)
	UpdateUser(ctx context.Context, publicID string, values Values) (*domain.User, error)
	// UserRoleNames returns role names keyed by internal user id.
	UserRoleNames(ctx context.Context, userIDs ...int64) (map[int64][]string, error)
	AssignRole(ctx context.Context, userID int64, role string, assignedBy *string) error
	RevokeRole(ctx context.Context, userID int64, role string) error
}

// RoleRepository reads the role catalogue.
type RoleRepository interface {
	ListRoles(ctx context.Context) ([]domain.Role, error)
	GetRoleByName(ctx context.Context, name string) (*domain.Role, error)
}

// StateAssociationRepository persists state associations.
type StateAssociationRepository interface {
	CreateStateAssociation(ctx context.Context, values Values) (*domain.StateAssociation, error)
	GetStateAssociation(ctx context.Context, publicID string) (*domain.StateAssociation, error)
	ListStateAssociations(ctx context.Context, params domain.ListParams) (domain.Page[domain.StateAssociation], error)
	UpdateStateAssociation(ctx context.Context, publicID string, values Values) (*domain.StateAssociation, error)
}

// DisabilityCategoryRepository persists disability categories.
type DisabilityCategoryRepository interface {
	CreateDisabilityCategory(ctx context.Context, values Values) (*domain.DisabilityCategory, error)
	GetDisabilityCategory(ctx context.Context, publicID string) (*domain.DisabilityCategory, error)
	ListDisabilityCategories(ctx context.Context, params domain.ListParams) (domain.Page[domain.DisabilityCategory], error)
	UpdateDisabilityCategory(ctx context.Context, publicID string, values Values) (*domain.DisabilityCategory, error)
}

// VenueRepository persists venues.
type VenueRepository interface {
	CreateVenue(ctx context.Context, values Values) (*domain.Venue, error)
	GetVenue(ctx context.Context, publicID string) (*domain.Venue, error)
	ListVenues(ctx context.Context, params domain.ListParams) (domain.Page[domain.Venue], error)
	UpdateVenue(ctx context.Context, publicID string, values Values) (*domain.Venue, error)
}

// EventRepository persists events.
type EventRepository interface {
	CreateEvent(ctx context.Context, values Values) (*domain.Event, error)
	GetEvent(ctx context.Context, publicID string) (*domain.Event, error)
	ListEvents(ctx context.Context, params domain.ListParams) (domain.Page[domain.Event], error)
	UpdateEvent(ctx context.Context, publicID string, values Values) (*domain.Event, error)
}

// NewsRepository persists news articles.
type NewsRepository interface {
	CreateNews(ctx context.Context, values Values) (*domain.NewsArticle, error)
	GetNews(ctx context.Context, publicID string) (*domain.NewsArticle, error)
	GetNewsBySlug(ctx context.Context, slug string) (*domain.NewsArticle, error)
	ListNews(ctx context.Context, params domain.ListParams) (domain.Page[domain.NewsArticle], error)
	UpdateNews(ctx context.Context, publicID string, values Values) (*domain.NewsArticle, error)
}

// MediaRepository persists media items.
type MediaRepository interface {
	CreateMedia(ctx context.Context, values Values) (*domain.MediaItem, error)
	GetMedia(ctx context.Context, publicID string) (*domain.MediaItem, error)
	ListMedia(ctx context.Context, params domain.ListParams) (domain.Page[domain.MediaItem], error)
	UpdateMedia(ctx context.Context, publicID string, values Values) (*domain.MediaItem, error)
}

// ClassificationRepository persists shooter classifications.
type ClassificationRepository interface {
	CreateClassification(ctx context.Context, values Values) (*domain.Classification, error)
	GetClassification(ctx context.Context, publicID string) (*domain.Classification, error)
	ListClassifications(ctx context.Context, params domain.ListParams) (domain.Page[domain.Classification], error)
	UpdateClassification(ctx context.Context, publicID string, values Values) (*domain.Classification, error)
}

// ResultRepository persists event results.
type ResultRepository interface {
	CreateResult(ctx context.Context, values Values) (*domain.Result, error)
	GetResult(ctx context.Context, publicID string) (*domain.Result, error)
	ListResults(ctx context.Context, params domain.ListParams) (domain.Page[domain.Result], error)
}

// AuditRepository appends and reads audit entries. Entries are never
// updated or deleted.
type AuditRepository interface {
	CreateAuditLog(ctx context.Context, entry *domain.AuditLog) error
	ListAuditLogs(ctx context.Context, params domain.ListParams) (domain.Page[domain.AuditLog], error)
}
