package repo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"shootfed/src/core/domain"
	"shootfed/src/core/ports"
)

func (r *PostgresRepository) CreateUser(ctx context.Context, values ports.Values) (*domain.User, error) {
	return r.users.insert(ctx, r.db.Q(ctx), values)
}

func (r *PostgresRepository) GetUser(ctx context.Context, publicID string) (*domain.User, error) {
	return r.users.get(ctx, r.db.Q(ctx), publicID)
}

func (r *PostgresRepository) ListUsers(ctx context.Context, params domain.ListParams) (domain.Page[domain.User], error) {
	return r.users.list(ctx, r.db.Q(ctx), params)
}

func (r *PostgresRepository) UpdateUser(ctx context.Context, publicID string, values ports.Values) (*domain.User, error) {
	return r.users.update(ctx, r.db.Q(ctx), publicID, values)
}

func (r *PostgresRepository) UserRoleNames(ctx context.Context, userIDs ...int64) (map[int64][]string, error) {
	const q = `
		SELECT ur.user_id, r.name
		FROM user_roles ur
		JOIN roles r ON r.id = ur.role_id
		WHERE ur.user_id = ANY($1)
		ORDER BY ur.user_id, r.name
	`
	out := make(map[int64][]string, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}
	rows, err := r.db.Q(ctx).Query(ctx, q, userIDs)
	if err != nil {
		return nil, err
	}
	var (
		userID int64
		name   string
	)
	_, err = pgx.ForEachRow(rows, []any{&userID, &name}, func() error {
		out[userID] = append(out[userID], name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AssignRole grants role to the user. Granting a role the user already holds is a no-op.
func (r *PostgresRepository) AssignRole(ctx context.Context, userID int64, role string, assignedBy *string) error {
	const q = `
		INSERT INTO user_roles (user_id, role_id, assigned_by)
		SELECT $1, id, $3 FROM roles WHERE name = $2
		ON CONFLICT (user_id, role_id) DO NOTHING
	`
	if _, err := r.GetRoleByName(ctx, role); err != nil {
		return err
	}
	if _, err := r.db.Q(ctx).Exec(ctx, q, userID, role, assignedBy); err != nil {
		return mapPgError(err, "user_roles", "role assignment")
	}
	return nil
}

func (r *PostgresRepository) RevokeRole(ctx context.Context, userID int64, role string) error {
	const q = `
		DELETE FROM user_roles
		WHERE user_id = $1 AND role_id = (SELECT id FROM roles WHERE name = $2)
	`
	tag, err := r.db.Q(ctx).Exec(ctx, q, userID, role)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("role assignment")
	}
	return nil
}

// Roles

func (r *PostgresRepository) ListRoles(ctx context.Context) ([]domain.Role, error) {
	q := "SELECT " + r.roles.selectList() + " FROM roles ORDER BY name"
	rows, err := r.db.Q(ctx).Query(ctx, q)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[domain.Role])
}

func (r *PostgresRepository) GetRoleByName(ctx context.Context, name string) (*domain.Role, error) {
	return r.roles.getBy(ctx, r.db.Q(ctx), "name", name)
}
