package usecase

import (
	"context"
	"log/slog"

	"shootfed/src/core/domain"
	"shootfed/src/core/ports"
)

// ResultService records and lists event results. Results are immutable once entered.
type ResultService struct {
	repo ports.ResultRepository
	log  *slog.Logger
}

func NewResultService(repo ports.ResultRepository, log *slog.Logger) *ResultService {
	return &ResultService{repo: repo, log: log}
}

func (s *ResultService) Create(ctx context.Context, values ports.Values) (*domain.Result, error) {
	return s.repo.CreateResult(ctx, values)
}

func (s *ResultService) Get(ctx context.Context, publicID string) (*domain.Result, error) {
	return s.repo.GetResult(ctx, publicID)
}

func (s *ResultService) List(ctx context.Context, params domain.ListParams) (domain.Page[domain.Result], error) {
	return s.repo.ListResults(ctx, params)
}
