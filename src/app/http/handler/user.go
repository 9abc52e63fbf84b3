package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"shootfed/src/app/http/dto"
	"shootfed/src/app/http/response"
	"shootfed/src/app/middleware"
	"shootfed/src/core/domain"
	"shootfed/src/core/usecase"
)

// UserHandler handles accounts, role assignments, and the role catalogue.
type UserHandler struct {
	users *usecase.UserService
}

func NewUserHandler(users *usecase.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Register mounts /users and /roles. Sign-up is open; everything else
// requires admin.
func (h *UserHandler) Register(g *gin.RouterGroup, admin gin.HandlerFunc) {
	users := g.Group("/users")
	users.POST("", h.Create)
	users.GET("", admin, h.List)
	users.GET("/:id", admin, h.Get)
	users.PATCH("/:id", admin, h.Update)
	users.DELETE("/:id", admin, h.Deactivate)
	users.PUT("/:id/roles/:role", admin, h.AssignRole)
	users.DELETE("/:id/roles/:role", admin, h.RevokeRole)

	g.GET("/roles", admin, h.Roles)
}

// Create registers an account.
// POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := dto.BindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	user, err := h.users.Create(c.Request.Context(), dto.ToValues(&req))
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, dto.NewUserResponse(user))
}

// List pages through accounts.
// GET /users
func (h *UserHandler) List(c *gin.Context) {
	params, err := dto.BindList[dto.UserQuery](c)
	if err != nil {
		fail(c, err)
		return
	}
	page, err := h.users.List(c.Request.Context(), params)
	if err != nil {
		fail(c, err)
		return
	}
	response.PageOf(c, page, dto.NewUserResponse)
}

// GET /users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, dto.NewUserResponse(user))
}

// Update applies a partial update. The password cannot be changed here.
// PATCH /users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	body, ok := readBody(c)
	if !ok {
		return
	}
	upd, err := dto.UpdateUser.Decode(body)
	if err != nil {
		fail(c, err)
		return
	}
	user, err := h.users.Update(c.Request.Context(), id, upd.Changes())
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, dto.NewUserResponse(user))
}

// DELETE /users/:id
func (h *UserHandler) Deactivate(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	if err := h.users.Deactivate(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.NoContent(c)
}

// PUT /users/:id/roles/:role
func (h *UserHandler) AssignRole(c *gin.Context) {
	h.changeRole(c, h.users.AssignRole)
}

// DELETE /users/:id/roles/:role
func (h *UserHandler) RevokeRole(c *gin.Context) {
	h.changeRole(c, h.users.RevokeRole)
}

type roleChange func(ctx context.Context, actor domain.Actor, publicID, role string) (*domain.User, error)

func (h *UserHandler) changeRole(c *gin.Context, change roleChange) {
	var p dto.RoleParam
	if err := dto.BindURI(c, &p); err != nil {
		fail(c, err)
		return
	}
	user, err := change(c.Request.Context(), middleware.GetActor(c), p.ID, p.Role)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, dto.NewUserResponse(user))
}

// GET /roles
func (h *UserHandler) Roles(c *gin.Context) {
	roles, err := h.users.Roles(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]dto.RoleResponse, len(roles))
	for i := range roles {
		out[i] = dto.NewRoleResponse(&roles[i])
	}
	response.OK(c, out)
}
