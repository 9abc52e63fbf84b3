package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"shootfed/src/core/domain"
	"shootfed/src/core/ports"
)

// AuditService appends audit entries for governed writes.
type AuditService struct {
	repo ports.AuditRepository
	log  *slog.Logger
}

func NewAuditService(repo ports.AuditRepository, log *slog.Logger) *AuditService {
	return &AuditService{repo: repo, log: log}
}

// Record writes one entry. Called inside the mutation's transaction so the
// entry and the change commit together.
func (s *AuditService) Record(ctx context.Context, actor domain.Actor, action domain.AuditAction, entityType, entityID string, changes ports.Values) error {
	entry := &domain.AuditLog{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
	}
	if actor.UserID != "" {
		entry.ActorUserID = &actor.UserID
	}
	if actor.IPAddress != "" {
		entry.IPAddress = &actor.IPAddress
	}
	if actor.UserAgent != "" {
		entry.UserAgent = &actor.UserAgent
	}
	if len(changes) > 0 {
		raw, err := json.Marshal(changes)
		if err != nil {
			return fmt.Errorf("encode audit changes: %w", err)
		}
		entry.Changes = raw
	}

	if err := s.repo.CreateAuditLog(ctx, entry); err != nil {
		return fmt.Errorf("write audit entry: %w", err)
	}

	s.log.Info("audit",
		"action", string(action),
		"entity_type", entityType,
		"entity_id", entityID,
		"actor", actor.UserID,
	)
	return nil
}

func (s *AuditService) List(ctx context.Context, params domain.ListParams) (domain.Page[domain.AuditLog], error) {
	return s.repo.ListAuditLogs(ctx, params)
}
