package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"shootfed/src/app/http/dto"
	"shootfed/src/app/http/response"
	"shootfed/src/core/domain"
	"shootfed/src/core/ports"
)

// ResourceService is the use case surface of an unaudited resource.
type ResourceService[E any] interface {
	Create(ctx context.Context, values ports.Values) (*E, error)
	Get(ctx context.Context, publicID string) (*E, error)
	List(ctx context.Context, params domain.ListParams) (domain.Page[E], error)
	Update(ctx context.Context, publicID string, values ports.Values) (*E, error)
	Deactivate(ctx context.Context, publicID string) error
}

// ListBinder binds a list request's query parameters.
type ListBinder func(c *gin.Context) (domain.ListParams, error)

// ResourceHandler serves create, list, get, patch, and delete for one
// resource. C is the create request; the patch shape is derived from it.
type ResourceHandler[E, C, R any] struct {
	svc    ResourceService[E]
	update *dto.Deriver[C, dto.NoExtras]
	list   ListBinder
	render func(*E) R
}

func NewResourceHandler[E, C, R any](
	svc ResourceService[E],
	update *dto.Deriver[C, dto.NoExtras],
	list ListBinder,
	render func(*E) R,
) *ResourceHandler[E, C, R] {
	return &ResourceHandler[E, C, R]{svc: svc, update: update, list: list, render: render}
}

// Register mounts the resource's routes on g. write guards the mutations.
func (h *ResourceHandler[E, C, R]) Register(g gin.IRoutes, write gin.HandlerFunc) {
	g.POST("", write, h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PATCH("/:id", write, h.Update)
	g.DELETE("/:id", write, h.Deactivate)
}

func (h *ResourceHandler[E, C, R]) Create(c *gin.Context) {
	var req C
	if err := dto.BindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	item, err := h.svc.Create(c.Request.Context(), dto.ToValues(&req))
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, h.render(item))
}

func (h *ResourceHandler[E, C, R]) List(c *gin.Context) {
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

func (h *ResourceHandler[E, C, R]) Get(c *gin.Context) {
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

func (h *ResourceHandler[E, C, R]) Update(c *gin.Context) {
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
	item, err := h.svc.Update(c.Request.Context(), id, upd.Changes())
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, h.render(item))
}

// Deactivate soft-deletes the resource by clearing is_active.
func (h *ResourceHandler[E, C, R]) Deactivate(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	if err := h.svc.Deactivate(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.NoContent(c)
}
