package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shootfed/src/app/http/response"
	"shootfed/src/core/domain"
)

// UserIDHeader carries the caller's public user id on guarded routes.
const UserIDHeader = "X-User-Id"

// ActorKey is the context key the role guard stores the caller under.
const ActorKey = "actor"

// RoleResolver looks up the roles of an active user.
type RoleResolver interface {
	ActorRoles(ctx context.Context, publicID string) ([]string, error)
}

// RequireRole admits a request only when the X-User-Id header names an
// active user holding at least one of roles. The resolved domain.Actor is
// stored in the context under ActorKey.
func RequireRole(resolver RoleResolver, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := GetRequestID(c)

		userID := c.GetHeader(UserIDHeader)
		if userID == "" {
			response.Unauthorized(c, "missing X-User-Id header", requestID)
			c.Abort()
			return
		}
		if _, err := uuid.Parse(userID); err != nil {
			response.ValidationError(c, UserIDHeader, "must be a UUID", requestID)
			c.Abort()
			return
		}

		held, err := resolver.ActorRoles(c.Request.Context(), userID)
		if err != nil {
			response.FromDomainError(c, err, requestID)
			c.Abort()
			return
		}

		actor := domain.Actor{
			UserID:    userID,
			Roles:     held,
			IPAddress: c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}
		if !actor.HasAnyRole(roles...) {
			response.Forbidden(c, "requires role: "+strings.Join(roles, " or "), requestID)
			c.Abort()
			return
		}

		c.Set(ActorKey, actor)
		c.Next()
	}
}

// GetActor returns the caller stored by RequireRole. On unguarded routes it
// returns an anonymous actor carrying only the client address.
func GetActor(c *gin.Context) domain.Actor {
	if v, ok := c.Get(ActorKey); ok {
		if actor, ok := v.(domain.Actor); ok {
			return actor
		}
	}
	return domain.Actor{IPAddress: c.ClientIP(), UserAgent: c.Request.UserAgent()}
}
