package usecase

import (
	"context"
	"log/slog"

	"shootfed/src/core/domain"
	"shootfed/src/core/ports"
)

// Store is the persistence surface shared by every mutable resource.
// Concrete repositories plug their per-resource methods in.
type Store[E any] struct {
	Create func(ctx context.Context, values ports.Values) (*E, error)
	Get    func(ctx context.Context, publicID string) (*E, error)
	List   func(ctx context.Context, params domain.ListParams) (domain.Page[E], error)
	Update func(ctx context.Context, publicID string, values ports.Values) (*E, error)
}

// ResourceService implements create/read/update/deactivate for a resource
// whose writes are not audited.
type ResourceService[E any] struct {
	store Store[E]
	name  string
	log   *slog.Logger
}

func NewResourceService[E any](name string, store Store[E], log *slog.Logger) *ResourceService[E] {
	return &ResourceService[E]{store: store, name: name, log: log}
}

func (s *ResourceService[E]) Create(ctx context.Context, values ports.Values) (*E, error) {
	e, err := s.store.Create(ctx, values)
	if err != nil {
		return nil, err
	}
	s.log.Debug("created", "resource", s.name)
	return e, nil
}

func (s *ResourceService[E]) Get(ctx context.Context, publicID string) (*E, error) {
	return s.store.Get(ctx, publicID)
}

func (s *ResourceService[E]) List(ctx context.Context, params domain.ListParams) (domain.Page[E], error) {
	return s.store.List(ctx, params)
}

func (s *ResourceService[E]) Update(ctx context.Context, publicID string, values ports.Values) (*E, error) {
	return s.store.Update(ctx, publicID, values)
}

// Deactivate clears is_active. Deactivating an inactive record succeeds.
func (s *ResourceService[E]) Deactivate(ctx context.Context, publicID string) error {
	if _, err := s.store.Update(ctx, publicID, ports.Values{"is_active": false}); err != nil {
		return err
	}
	s.log.Info("deactivated", "resource", s.name, "id", publicID)
	return nil
}
