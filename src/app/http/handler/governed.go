package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"shootfed/src/app/http/dto"
	"shootfed/src/app/http/response"
	"shootfed/src/app/middleware"
	"shootfed/src/core/domain"
	"shootfed/src/core/ports"
)

// GovernedService is the use case surface of an audited resource. Writes
// carry the acting user.
type GovernedService[E any] interface {
	Create(ctx context.Context, actor domain.Actor, values ports.Values) (*E, error)
	Get(ctx context.Context, publicID string) (*E, error)
	List(ctx context.Context, params domain.ListParams) (domain.Page[E], error)
	Update(ctx context.Context, actor domain.Actor, publicID string, values ports.Values) (*E, error)
	Deactivate(ctx context.Context, actor domain.Actor, publicID string) error
}

// GovernedHandler serves an audited resource. Every write takes its actor
// from the role guard.
type GovernedHandler[E, C, R any] struct {
	svc    GovernedService[E]
	update *dto.Deriver[C, dto.NoExtras]
	list   ListBinder
	render func(*E) R
}

func NewGovernedHandler[E, C, R any](
	svc GovernedService[E],
	update *dto.Deriver[C, dto.NoExtras],
	list ListBinder,
	render func(*E) R,
) *GovernedHandler[E, C, R] {
	return &GovernedHandler[E, C, R]{svc: svc, update: update, list: list, render: render}
}

// Register mounts the resource's routes on g. guard must run before any
// write so the actor is known.
func (h *GovernedHandler[E, C, R]) Register(g gin.IRoutes, guard gin.HandlerFunc) {
	g.POST("", guard, h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PATCH("/:id", guard, h.Update)
	g.DELETE("/:id", guard, h.Deactivate)
}

func (h *GovernedHandler[E, C, R]) Create(c *gin.Context) {
	var req C
	if err := dto.BindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	item, err := h.svc.Create(c.Request.Context(), middleware.GetActor(c), dto.ToValues(&req))
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, h.render(item))
}

func (h *GovernedHandler[E, C, R]) List(c *gin.Context) {
	params, err := h.list(c)
	if err != nil {
		fail(c, err)
		return
	}
	page, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		fail(c, err)
		return
	}
	response.PageOf(c, page, h.render)
}

func (h *GovernedHandler[E, C, R]) Get(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	item, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, h.render(item))
}

func (h *GovernedHandler[E, C, R]) Update(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	body, ok := readBody(c)
	if !ok {
		return
	}
	upd, err := h.update.Decode(body)
	if err != nil {
		fail(c, err)
		return
	}
	item, err := h.svc.Update(c.Request.Context(), middleware.GetActor(c), id, upd.Changes())
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, h.render(item))
}

func (h *GovernedHandler[E, C, R]) Deactivate(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	if err := h.svc.Deactivate(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		fail(c, err)
		return
	}
	response.NoContent(c)
}
