package repo

import (
	"context"

	"shootfed/src/core/domain"
	"shootfed/src/core/ports"
)

// State associations

func (r *PostgresRepository) CreateStateAssociation(ctx context.Context, values ports.Values) (*domain.StateAssociation, error) {
	return r.states.insert(ctx, r.db.Q(ctx), values)
}

func (r *PostgresRepository) GetStateAssociation(ctx context.Context, publicID string) (*domain.StateAssociation, error) {
	return r.states.get(ctx, r.db.Q(ctx), publicID)
}

func (r *PostgresRepository) ListStateAssociations(ctx context.Context, params domain.ListParams) (domain.Page[domain.StateAssociation], error) {
	return r.states.list(ctx, r.db.Q(ctx), params)
}

func (r *PostgresRepository) UpdateStateAssociation(ctx context.Context, publicID string, values ports.Values) (*domain.StateAssociation, error) {
	return r.states.update(ctx, r.db.Q(ctx), publicID, values)
}

// Disability categories

func (r *PostgresRepository) CreateDisabilityCategory(ctx context.Context, values ports.Values) (*domain.DisabilityCategory, error) {
	return r.categories.insert(ctx, r.db.Q(ctx), values)
}

func (r *PostgresRepository) GetDisabilityCategory(ctx context.Context, publicID string) (*domain.DisabilityCategory, error) {
	return r.categories.get(ctx, r.db.Q(ctx), publicID)
}

func (r *PostgresRepository) ListDisabilityCategories(ctx context.Context, params domain.ListParams) (domain.Page[domain.DisabilityCategory], error) {
	return r.categories.list(ctx, r.db.Q(ctx), params)
}

func (r *PostgresRepository) UpdateDisabilityCategory(ctx context.Context, publicID string, values ports.Values) (*domain.DisabilityCategory, error) {
	return r.categories.update(ctx, r.db.Q(ctx), publicID, values)
}

// Venues

func (r *PostgresRepository) CreateVenue(ctx context.Context, values ports.Values) (*domain.Venue, error) {
	return r.venues.insert(ctx, r.db.Q(ctx), values)
}

func (r *PostgresRepository) GetVenue(ctx context.Context, publicID string) (*domain.Venue, error) {
	return r.venues.get(ctx, r.db.Q(ctx), publicID)
}

func (r *PostgresRepository) ListVenues(ctx context.Context, params domain.ListParams) (domain.Page[domain.Venue], error) {
	return r.venues.list(ctx, r.db.Q(ctx), params)
}

func (r *PostgresRepository) UpdateVenue(ctx context.Context, publicID string, values ports.Values) (*domain.Venue, error) {
	return r.venues.update(ctx, r.db.Q(ctx), publicID, values)
}

// Audit log

func (r *PostgresRepository) CreateAuditLog(ctx context.Context, entry *domain.AuditLog) error {
	values := ports.Values{
		"action":      entry.Action,
		"entity_type": entry.EntityType,
		"entity_id":   entry.EntityID,
	}
	if entry.ActorUserID != nil {
		values["actor_user_id"] = *entry.ActorUserID
	}
	if len(entry.Changes) > 0 {
		values["changes"] = entry.Changes
	}
	if entry.IPAddress != nil {
		values["ip_address"] = *entry.IPAddress
	}
	if entry.UserAgent != nil {
		values["user_agent"] = *entry.UserAgent
	}

	saved, err := r.audit.insert(ctx, r.db.Q(ctx), values)
	if err != nil {
		return err
	}
	*entry = *saved
	return nil
}

func (r *PostgresRepository) ListAuditLogs(ctx context.Context, params domain.ListParams) (domain.Page[domain.AuditLog], error) {
	return r.audit.list(ctx, r.db.Q(ctx), params)
}
