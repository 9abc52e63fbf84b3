package usecase

import (
	"context"
	"log/slog"

	"shootfed/src/core/domain"
	"shootfed/src/core/ports"
)

// GovernedService is a ResourceService whose writes run in a transaction
// together with an audit entry.
type GovernedService[E any] struct {
	store      Store[E]
	entityType string
	idOf       func(*E) string
	tx         ports.Transactor
	audit      *AuditService
	log        *slog.Logger
}

func NewGovernedService[E any](
	entityType string,
	store Store[E],
	idOf func(*E) string,
	tx ports.Transactor,
	audit *AuditService,
	log *slog.Logger,
) *GovernedService[E] {
	return &GovernedService[E]{
		store:      store,
		entityType: entityType,
		idOf:       idOf,
		tx:         tx,
		audit:      audit,
		log:        log,
	}
}

func (s *GovernedService[E]) Create(ctx context.Context, actor domain.Actor, values ports.Values) (*E, error) {
	var out *E
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		e, err := s.store.Create(ctx, values)
		if err != nil {
			return err
		}
		out = e
		return s.audit.Record(ctx, actor, domain.AuditCreate, s.entityType, s.idOf(e), values)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GovernedService[E]) Get(ctx context.Context, publicID string) (*E, error) {
	return s.store.Get(ctx, publicID)
}

func (s *GovernedService[E]) List(ctx context.Context, params domain.ListParams) (domain.Page[E], error) {
	return s.store.List(ctx, params)
}

// Update applies values. An empty change set is a read and is not audited.
func (s *GovernedService[E]) Update(ctx context.Context, actor domain.Actor, publicID string, values ports.Values) (*E, error) {
	if len(values) == 0 {
		return s.store.Get(ctx, publicID)
	}
	return s.write(ctx, actor, domain.AuditUpdate, publicID, values)
}

func (s *GovernedService[E]) Deactivate(ctx context.Context, actor domain.Actor, publicID string) error {
	_, err := s.write(ctx, actor, domain.AuditDeactivate, publicID, ports.Values{"is_active": false})
	return err
}

func (s *GovernedService[E]) write(ctx context.Context, actor domain.Actor, action domain.AuditAction, publicID string, values ports.Values) (*E, error) {
	var out *E
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		e, err := s.store.Update(ctx, publicID, values)
		if err != nil {
			return err
		}
		out = e
		return s.audit.Record(ctx, actor, action, s.entityType, publicID, values)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
