package server

import (
	"github.com/gin-gonic/gin"

	"shootfed/src/app/http/dto"
	"shootfed/src/app/http/handler"
	"shootfed/src/app/middleware"
	"shootfed/src/core/domain"
	"shootfed/src/core/ports"
	"shootfed/src/core/usecase"
	"shootfed/src/infra/logger"
	"shootfed/src/infra/repo"
)

// Deps are the adapters the API is composed from.
type Deps struct {
	Repo   *repo.PostgresRepository
	Hasher ports.PasswordHasher

	// Files stores media uploads. Nil makes POST /media/upload answer 503.
	Files ports.MediaStore
}

// module is one resource's slice of the API.
type module struct {
	name     string
	register func(g *gin.RouterGroup)
}

// buildModules wires every resource explicitly. Governed resources share
// the audit service and run their writes through the repository's
// transactor.
func (s *Server) buildModules(deps Deps) []module {
	r := deps.Repo
	log := s.log

	users := usecase.NewUserService(r, r, deps.Hasher, logger.WithComponent(log, "users"))
	audit := usecase.NewAuditService(r, logger.WithComponent(log, "audit"))

	admin := middleware.RequireRole(users, domain.RoleAdmin)
	staff := middleware.RequireRole(users, domain.RoleAdmin, domain.RoleEditor)

	states := usecase.NewGovernedService(domain.EntityStateAssociation, usecase.StateAssociationStore(r),
		func(e *domain.StateAssociation) string { return e.PublicID }, r, audit, logger.WithComponent(log, "states"))
	categories := usecase.NewGovernedService(domain.EntityDisabilityCategory, usecase.DisabilityCategoryStore(r),
		func(e *domain.DisabilityCategory) string { return e.PublicID }, r, audit, logger.WithComponent(log, "categories"))
	venues := usecase.NewGovernedService(domain.EntityVenue, usecase.VenueStore(r),
		func(e *domain.Venue) string { return e.PublicID }, r, audit, logger.WithComponent(log, "venues"))

	events := usecase.NewResourceService("event", usecase.EventStore(r), logger.WithComponent(log, "events"))
	classifications := usecase.NewResourceService("classification", usecase.ClassificationStore(r),
		logger.WithComponent(log, "classifications"))
	news := usecase.NewNewsService(r, logger.WithComponent(log, "news"))
	media := usecase.NewMediaService(r, deps.Files, s.cfg.Storage.MaxUploadBytes, logger.WithComponent(log, "media"))
	results := usecase.NewResultService(r, logger.WithComponent(log, "results"))

	return []module{
		{"users", func(g *gin.RouterGroup) {
			handler.NewUserHandler(users).Register(g, admin)
		}},
		{"states", func(g *gin.RouterGroup) {
			handler.NewGovernedHandler(states, dto.UpdateStateAssociation,
				dto.BindList[dto.StateAssociationQuery], dto.NewStateAssociationResponse).
				Register(g.Group("/states"), admin)
		}},
		{"disability-categories", func(g *gin.RouterGroup) {
			handler.NewGovernedHandler(categories, dto.UpdateDisabilityCategory,
				dto.BindList[dto.DisabilityCategoryQuery], dto.NewDisabilityCategoryResponse).
				Register(g.Group("/disability-categories"), admin)
		}},
		{"venues", func(g *gin.RouterGroup) {
			handler.NewGovernedHandler(venues, dto.UpdateVenue,
				dto.BindList[dto.VenueQuery], dto.NewVenueResponse).
				Register(g.Group("/venues"), admin)
		}},
		{"events", func(g *gin.RouterGroup) {
			handler.NewResourceHandler(events, dto.UpdateEvent,
				dto.BindList[dto.EventQuery], dto.NewEventResponse).
				Register(g.Group("/events"), staff)
		}},
		{"news", func(g *gin.RouterGroup) {
			handler.NewNewsHandler(news).Register(g.Group("/news"), staff)
		}},
		{"media", func(g *gin.RouterGroup) {
			handler.NewMediaHandler(media).Register(g.Group("/media"), staff)
		}},
		{"classifications", func(g *gin.RouterGroup) {
			handler.NewResourceHandler(classifications, dto.UpdateClassification,
				dto.BindList[dto.ClassificationQuery], dto.NewClassificationResponse).
				Register(g.Group("/classifications", admin), proceed)
		}},
		{"results", func(g *gin.RouterGroup) {
			handler.NewResultHandler(results).Register(g.Group("/results"), staff)
		}},
		{"audit-logs", func(g *gin.RouterGroup) {
			g.GET("/audit-logs", admin, handler.NewAuditHandler(audit).List)
		}},
	}
}

// proceed is the write guard of groups already guarded as a whole.
func proceed(c *gin.Context) { c.Next() }

// healthChecks lists the components /health/detailed checks.
func healthChecks(deps Deps) map[string]usecase.HealthChecker {
	checks := map[string]usecase.HealthChecker{"database": deps.Repo}
	if deps.Files != nil {
		checks["storage"] = deps.Files
	}
	return checks
}
