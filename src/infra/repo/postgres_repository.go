package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"shootfed/src/core/domain"
	"shootfed/src/infra/db"
)

// PostgresRepository implements every repository port in src/core/ports using pgx.
type PostgresRepository struct {
	db  *db.Postgres
	log *slog.Logger

	users           table[domain.User]
	roles           table[domain.Role]
	states          table[domain.StateAssociation]
	categories      table[domain.DisabilityCategory]
	venues          table[domain.Venue]
	events          table[domain.Event]
	news            table[domain.NewsArticle]
	media           table[domain.MediaItem]
	classifications table[domain.Classification]
	results         table[domain.Result]
	audit           table[domain.AuditLog]
}

// NewPostgresRepository constructs a repository backed by Postgres.
func NewPostgresRepository(pg *db.Postgres, log *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		db:  pg,
		log: log,

		users: newTable[domain.User]("users", "user",
			"created_at", "updated_at", "email", "first_name", "last_name"),
		roles: newTable[domain.Role]("roles", "role", "created_at", "name"),
		states: newTable[domain.StateAssociation]("state_associations", "state association",
			"created_at", "updated_at", "code", "name", "region"),
		categories: newTable[domain.DisabilityCategory]("disability_categories", "disability category",
			"created_at", "updated_at", "code", "name"),
		venues: newTable[domain.Venue]("venues", "venue",
			"created_at", "updated_at", "name", "city", "state"),
		events: newTable[domain.Event]("events", "event",
			"created_at", "updated_at", "start_date", "end_date", "title"),
		news: newTable[domain.NewsArticle]("news_articles", "news article",
			"created_at", "updated_at", "published_at", "title"),
		media: newTable[domain.MediaItem]("media_items", "media item",
			"created_at", "updated_at", "title"),
		classifications: newTable[domain.Classification]("classifications", "classification",
			"created_at", "updated_at", "shooter_name", "classified_on", "review_date"),
		results: newTable[domain.Result]("results", "result",
			"created_at", "score", "rank", "shooter_name"),
		audit: newTable[domain.AuditLog]("audit_logs", "audit log", "created_at"),
	}
}

func (r *PostgresRepository) Health(ctx context.Context) error {
	return r.db.Health(ctx)
}

// WithinTx runs fn in one transaction; repository calls made with the
// context fn receives join it.
func (r *PostgresRepository) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.db.WithinTx(ctx, fn)
}

// mapPgError turns constraint failures into domain errors. Anything else is
// returned wrapped with the table name.
func mapPgError(err error, tableName, resource string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %w", tableName, err)
	}

	switch pgErr.Code {
	case "23505":
		field := constraintField(pgErr.ConstraintName, tableName, "_key")
		if field == "" {
			return domain.NewConflictError(resource + " already exists")
		}
		return &domain.DomainError{
			Base:    domain.ErrConflict,
			Message: fmt.Sprintf("%s with this %s already exists", resource, field),
			Field:   field,
		}
	case "23503":
		field := constraintField(pgErr.ConstraintName, tableName, "_fkey")
		verr := &domain.ValidationErrors{}
		verr.Add(field, "exists", "referenced record does not exist")
		return verr
	case "23514", "23502", "22P02", "22007", "22008":
		verr := &domain.ValidationErrors{}
		field := pgErr.ColumnName
		if field == "" {
			field = constraintField(pgErr.ConstraintName, tableName, "_check")
		}
		verr.Add(field, "invalid", pgErr.Message)
		return verr
	}
	return fmt.Errorf("%s: %w", tableName, err)
}

// constraintField recovers the column from Postgres' default constraint
// names, e.g. events_venue_id_fkey -> venue_id.
func constraintField(constraint, tableName, suffix string) string {
	if !strings.HasPrefix(constraint, tableName+"_") || !strings.HasSuffix(constraint, suffix) {
		return ""
	}
	return strings.TrimSuffix(strings.TrimPrefix(constraint, tableName+"_"), suffix)
}
