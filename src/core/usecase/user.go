package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"shootfed/src/core/domain"
	"shootfed/src/core/ports"
)

// UserService manages accounts and their role assignments.
type UserService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	hasher ports.PasswordHasher
	log    *slog.Logger
}

func NewUserService(users ports.UserRepository, roles ports.RoleRepository, hasher ports.PasswordHasher, log *slog.Logger) *UserService {
	return &UserService{users: users, roles: roles, hasher: hasher, log: log}
}

// Create stores a new user. The plaintext "password" value is replaced by
// its hash before anything reaches the repository.
func (s *UserService) Create(ctx context.Context, values ports.Values) (*domain.User, error) {
	password, ok := values["password"].(string)
	if !ok || password == "" {
		return nil, domain.NewValidationError("password", "password is required")
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	row := make(ports.Values, len(values))
	for k, v := range values {
		if k != "password" {
			row[k] = v
		}
	}
	row["password_hash"] = hash

	user, err := s.users.CreateUser(ctx, row)
	if err != nil {
		return nil, err
	}
	s.log.Info("user created", "user_id", user.PublicID)
	return user, nil
}

func (s *UserService) Get(ctx context.Context, publicID string) (*domain.User, error) {
	user, err := s.users.GetUser(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if err := s.attachRoles(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context, params domain.ListParams) (domain.Page[domain.User], error) {
	page, err := s.users.ListUsers(ctx, params)
	if err != nil {
		return page, err
	}
	ids := make([]int64, len(page.Items))
	for i, u := range page.Items {
		ids[i] = u.ID
	}
	roles, err := s.users.UserRoleNames(ctx, ids...)
	if err != nil {
		return page, err
	}
	for i := range page.Items {
		page.Items[i].Roles = roles[page.Items[i].ID]
	}
	return page, nil
}

func (s *UserService) Update(ctx context.Context, publicID string, values ports.Values) (*domain.User, error) {
	user, err := s.users.UpdateUser(ctx, publicID, values)
	if err != nil {
		return nil, err
	}
	if err := s.attachRoles(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Deactivate(ctx context.Context, publicID string) error {
	_, err := s.users.UpdateUser(ctx, publicID, ports.Values{"is_active": false})
	return err
}

// AssignRole grants a role by name; assignedBy is the acting admin's public id.
func (s *UserService) AssignRole(ctx context.Context, actor domain.Actor, publicID, role string) (*domain.User, error) {
	user, err := s.users.GetUser(ctx, publicID)
	if err != nil {
		return nil, err
	}
	var assignedBy *string
	if actor.UserID != "" {
		assignedBy = &actor.UserID
	}
	if err := s.users.AssignRole(ctx, user.ID, role, assignedBy); err != nil {
		return nil, err
	}
	s.log.Info("role assigned", "user_id", publicID, "role", role, "by", actor.UserID)

	if err := s.attachRoles(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) RevokeRole(ctx context.Context, actor domain.Actor, publicID, role string) (*domain.User, error) {
	user, err := s.users.GetUser(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if err := s.users.RevokeRole(ctx, user.ID, role); err != nil {
		return nil, err
	}
	s.log.Info("role revoked", "user_id", publicID, "role", role, "by", actor.UserID)

	if err := s.attachRoles(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Roles lists the role catalogue.
func (s *UserService) Roles(ctx context.Context) ([]domain.Role, error) {
	return s.roles.ListRoles(ctx)
}

// ActorRoles resolves the role names held by an active user. Used by the
// role guard to authorize requests.
func (s *UserService) ActorRoles(ctx context.Context, publicID string) ([]string, error) {
	user, err := s.users.GetUser(ctx, publicID)
	if err != nil {
		if domain.IsNotFound(err) || domain.IsValidationError(err) {
			return nil, domain.NewUnauthorizedError("unknown user")
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.NewForbiddenError("user is deactivated")
	}
	roles, err := s.users.UserRoleNames(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return roles[user.ID], nil
}

func (s *UserService) attachRoles(ctx context.Context, user *domain.User) error {
	roles, err := s.users.UserRoleNames(ctx, user.ID)
	if err != nil {
		return err
	}
	user.Roles = roles[user.ID]
	return nil
}
