package repo

import (
	"context"

	"shootfed/src/core/domain"
	"shootfed/src/core/ports"
)

// Events

func (r *PostgresRepository) CreateEvent(ctx context.Context, values ports.Values) (*domain.Event, error) {
	return r.events.insert(ctx, r.db.Q(ctx), values)
}

func (r *PostgresRepository) GetEvent(ctx context.Context, publicID string) (*domain.Event, error) {
	return r.events.get(ctx, r.db.Q(ctx), publicID)
}

func (r *PostgresRepository) ListEvents(ctx context.Context, params domain.ListParams) (domain.Page[domain.Event], error) {
	return r.events.list(ctx, r.db.Q(ctx), params)
}

func (r *PostgresRepository) UpdateEvent(ctx context.Context, publicID string, values ports.Values) (*domain.Event, error) {
	return r.events.update(ctx, r.db.Q(ctx), publicID, values)
}

// News

func (r *PostgresRepository) CreateNews(ctx context.Context, values ports.Values) (*domain.NewsArticle, error) {
	return r.news.insert(ctx, r.db.Q(ctx), values)
}

func (r *PostgresRepository) GetNews(ctx context.Context, publicID string) (*domain.NewsArticle, error) {
	return r.news.get(ctx, r.db.Q(ctx), publicID)
}

func (r *PostgresRepository) GetNewsBySlug(ctx context.Context, slug string) (*domain.NewsArticle, error) {
	return r.news.getBy(ctx, r.db.Q(ctx), "slug", slug)
}

func (r *PostgresRepository) ListNews(ctx context.Context, params domain.ListParams) (domain.Page[domain.NewsArticle], error) {
	return r.news.list(ctx, r.db.Q(ctx), params)
}

func (r *PostgresRepository) UpdateNews(ctx context.Context, publicID string, values ports.Values) (*domain.NewsArticle, error) {
	return r.news.update(ctx, r.db.Q(ctx), publicID, values)
}

// Media

func (r *PostgresRepository) CreateMedia(ctx context.Context, values ports.Values) (*domain.MediaItem, error) {
	return r.media.insert(ctx, r.db.Q(ctx), values)
}

func (r *PostgresRepository) GetMedia(ctx context.Context, publicID string) (*domain.MediaItem, error) {
	return r.media.get(ctx, r.db.Q(ctx), publicID)
}

func (r *PostgresRepository) ListMedia(ctx context.Context, params domain.ListParams) (domain.Page[domain.MediaItem], error) {
	return r.media.list(ctx, r.db.Q(ctx), params)
}

func (r *PostgresRepository) UpdateMedia(ctx context.Context, publicID string, values ports.Values) (*domain.MediaItem, error) {
	return r.media.update(ctx, r.db.Q(ctx), publicID, values)
}

// Classifications

func (r *PostgresRepository) CreateClassification(ctx context.Context, values ports.Values) (*domain.Classification, error) {
	return r.classifications.insert(ctx, r.db.Q(ctx), values)
}

func (r *PostgresRepository) GetClassification(ctx context.Context, publicID string) (*domain.Classification, error) {
	return r.classifications.get(ctx, r.db.Q(ctx), publicID)
}

func (r *PostgresRepository) ListClassifications(ctx context.Context, params domain.ListParams) (domain.Page[domain.Classification], error) {
	return r.classifications.list(ctx, r.db.Q(ctx), params)
}

func (r *PostgresRepository) UpdateClassification(ctx context.Context, publicID string, values ports.Values) (*domain.Classification, error) {
	return r.classifications.update(ctx, r.db.Q(ctx), publicID, values)
}

// Results

func (r *PostgresRepository) CreateResult(ctx context.Context, values ports.Values) (*domain.Result, error) {
	return r.results.insert(ctx, r.db.Q(ctx), values)
}

func (r *PostgresRepository) GetResult(ctx context.Context, publicID string) (*domain.Result, error) {
	return r.results.get(ctx, r.db.Q(ctx), publicID)
}

func (r *PostgresRepository) ListResults(ctx context.Context, params domain.ListParams) (domain.Page[domain.Result], error) {
	return r.results.list(ctx, r.db.Q(ctx), params)
}
