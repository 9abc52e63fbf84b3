package usecase

import (
	"context"
	"log/slog"
	"time"

	"shootfed/src/core/domain"
	"shootfed/src/core/ports"
)

// NewsService manages news articles. Publishing an article without an
// explicit published_at stamps it with the current time.
type NewsService struct {
	*ResourceService[domain.NewsArticle]
	repo ports.NewsRepository
	now  func() time.Time
}

func NewNewsService(repo ports.NewsRepository, log *slog.Logger) *NewsService {
	return &NewsService{
		ResourceService: NewResourceService("news article", NewsStore(repo), log),
		repo:            repo,
		now:             time.Now,
	}
}

func (s *NewsService) Create(ctx context.Context, values ports.Values) (*domain.NewsArticle, error) {
	return s.ResourceService.Create(ctx, s.stampPublished(values))
}

func (s *NewsService) Update(ctx context.Context, publicID string, values ports.Values) (*domain.NewsArticle, error) {
	if published, _ := values["is_published"].(bool); published {
		if _, set := values["published_at"]; !set {
			current, err := s.repo.GetNews(ctx, publicID)
			if err != nil {
				return nil, err
			}
			if current.PublishedAt == nil {
				values = s.stampPublished(values)
			}
		}
	}
	return s.ResourceService.Update(ctx, publicID, values)
}

// BySlug returns a published, active article.
func (s *NewsService) BySlug(ctx context.Context, slug string) (*domain.NewsArticle, error) {
	article, err := s.repo.GetNewsBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !article.IsActive || !article.IsPublished {
		return nil, domain.NewNotFoundError("news article")
	}
	return article, nil
}

func (s *NewsService) stampPublished(values ports.Values) ports.Values {
	published, _ := values["is_published"].(bool)
	if _, set := values["published_at"]; !published || set {
		return values
	}
	out := make(ports.Values, len(values)+1)
	for k, v := range values {
		out[k] = v
	}
	out["published_at"] = s.now().UTC()
	return out
}
