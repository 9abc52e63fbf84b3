package repo

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"

	"shootfed/src/core/domain"
	"shootfed/src/core/ports"
	"shootfed/src/infra/db"
)

// table maps an entity struct onto one SQL table. Column names come from the
// struct's `db` tags, so every SELECT/RETURNING list matches what
// pgx.RowToStructByName expects.
type table[E any] struct {
	name       string
	resource   string
	columns    []string
	columnSet  map[string]struct{}
	sortable   map[string]struct{}
	hasUpdated bool
}

func newTable[E any](name, resource string, sortable ...string) table[E] {
	var zero E
	typ := reflect.TypeOf(zero)

	t := table[E]{
		name:      name,
		resource:  resource,
		columnSet: make(map[string]struct{}),
		sortable:  make(map[string]struct{}, len(sortable)),
	}
	for i := 0; i < typ.NumField(); i++ {
		col := typ.Field(i).Tag.Get("db")
		if col == "" || col == "-" {
			continue
		}
		t.columns = append(t.columns, col)
		t.columnSet[col] = struct{}{}
		if col == "updated_at" {
			t.hasUpdated = true
		}
	}
	for _, s := range sortable {
		if _, ok := t.columnSet[s]; !ok {
			panic(fmt.Sprintf("repo: %s has no sortable column %q", name, s))
		}
		t.sortable[s] = struct{}{}
	}
	return t
}

func (t table[E]) selectList() string {
	return strings.Join(t.columns, ", ")
}

func (t table[E]) checkColumns(values ports.Values) error {
	for col := range values {
		if _, ok := t.columnSet[col]; !ok {
			return fmt.Errorf("repo: %s has no column %q", t.name, col)
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// buildInsert returns an INSERT ... RETURNING statement for the given values.
func (t table[E]) buildInsert(values ports.Values) (string, pgx.NamedArgs, error) {
	if err := t.checkColumns(values); err != nil {
		return "", nil, err
	}
	if len(values) == 0 {
		return fmt.Sprintf("INSERT INTO %s DEFAULT VALUES RETURNING %s", t.name, t.selectList()), pgx.NamedArgs{}, nil
	}

	cols := sortedKeys(values)
	params := make([]string, len(cols))
	args := make(pgx.NamedArgs, len(cols))
	for i, c := range cols {
		params[i] = "@" + c
		args[c] = values[c]
	}
	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		t.name, strings.Join(cols, ", "), strings.Join(params, ", "), t.selectList())
	return sql, args, nil
}

// buildUpdate returns an UPDATE ... RETURNING statement touching only the given columns.
func (t table[E]) buildUpdate(publicID string, values ports.Values) (string, pgx.NamedArgs, error) {
	if err := t.checkColumns(values); err != nil {
		return "", nil, err
	}
	if _, ok := values["public_id"]; ok {
		return "", nil, fmt.Errorf("repo: public_id of %s is immutable", t.name)
	}

	cols := sortedKeys(values)
	sets := make([]string, 0, len(cols)+1)
	args := make(pgx.NamedArgs, len(cols)+1)
	for _, c := range cols {
		sets = append(sets, c+" = @"+c)
		args[c] = values[c]
	}
	if _, touched := values["updated_at"]; t.hasUpdated && !touched {
		sets = append(sets, "updated_at = now()")
	}
	args["public_id"] = publicID

	sql := fmt.Sprintf("UPDATE %s SET %s WHERE public_id = @public_id RETURNING %s",
		t.name, strings.Join(sets, ", "), t.selectList())
	return sql, args, nil
}

// buildWhere turns equality filters into a WHERE clause. Filter keys are
// column names and are checked against the table's columns.
func (t table[E]) buildWhere(filters map[string]any) (string, pgx.NamedArgs, error) {
	args := pgx.NamedArgs{}
	if len(filters) == 0 {
		return "", args, nil
	}
	conds := make([]string, 0, len(filters))
	for _, col := range sortedKeys(filters) {
		if _, ok := t.columnSet[col]; !ok {
			return "", nil, fmt.Errorf("repo: %s has no filter column %q", t.name, col)
		}
		name := "f_" + col
		conds = append(conds, col+" = @"+name)
		args[name] = filters[col]
	}
	return " WHERE " + strings.Join(conds, " AND "), args, nil
}

// buildList returns the count and page queries for params.
func (t table[E]) buildList(p domain.ListParams) (countSQL, pageSQL string, args pgx.NamedArgs, err error) {
	sortBy := p.SortBy
	if sortBy == "" {
		sortBy = domain.DefaultSortBy
	}
	if _, ok := t.sortable[sortBy]; !ok {
		verr := &domain.ValidationErrors{}
		verr.Add("sortBy", "oneof", fmt.Sprintf("%s cannot be sorted by %q", t.resource, sortBy))
		return "", "", nil, verr
	}
	order := "DESC"
	if p.SortOrder == domain.SortAsc {
		order = "ASC"
	}

	where, args, err := t.buildWhere(p.Filters)
	if err != nil {
		return "", "", nil, err
	}

	countSQL = fmt.Sprintf("SELECT count(*) FROM %s%s", t.name, where)
	pageSQL = fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s %s, id %s LIMIT @limit OFFSET @offset",
		t.selectList(), t.name, where, sortBy, order, order)
	args["limit"] = p.Limit
	args["offset"] = p.Offset()
	return countSQL, pageSQL, args, nil
}

func (t table[E]) getBy(ctx context.Context, q db.Querier, column string, value any) (*E, error) {
	sql := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", t.selectList(), t.name, column)
	rows, err := q.Query(ctx, sql, value)
	if err != nil {
		return nil, t.mapError(err)
	}
	e, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[E])
	if err != nil {
		return nil, t.mapError(err)
	}
	return e, nil
}

func (t table[E]) get(ctx context.Context, q db.Querier, publicID string) (*E, error) {
	return t.getBy(ctx, q, "public_id", publicID)
}

func (t table[E]) insert(ctx context.Context, q db.Querier, values ports.Values) (*E, error) {
	sql, args, err := t.buildInsert(values)
	if err != nil {
		return nil, err
	}
	return t.one(ctx, q, sql, args)
}

func (t table[E]) update(ctx context.Context, q db.Querier, publicID string, values ports.Values) (*E, error) {
	if len(values) == 0 {
		return t.get(ctx, q, publicID)
	}
	sql, args, err := t.buildUpdate(publicID, values)
	if err != nil {
		return nil, err
	}
	return t.one(ctx, q, sql, args)
}

func (t table[E]) one(ctx context.Context, q db.Querier, sql string, args pgx.NamedArgs) (*E, error) {
	rows, err := q.Query(ctx, sql, args)
	if err != nil {
		return nil, t.mapError(err)
	}
	e, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[E])
	if err != nil {
		return nil, t.mapError(err)
	}
	return e, nil
}

func (t table[E]) list(ctx context.Context, q db.Querier, p domain.ListParams) (domain.Page[E], error) {
	countSQL, pageSQL, args, err := t.buildList(p)
	if err != nil {
		return domain.Page[E]{}, err
	}

	var total int64
	if err := q.QueryRow(ctx, countSQL, args).Scan(&total); err != nil {
		return domain.Page[E]{}, t.mapError(err)
	}

	rows, err := q.Query(ctx, pageSQL, args)
	if err != nil {
		return domain.Page[E]{}, t.mapError(err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[E])
	if err != nil {
		return domain.Page[E]{}, t.mapError(err)
	}

	return domain.Page[E]{Items: items, Total: total, Page: p.Page, Limit: p.Limit}, nil
}

func (t table[E]) mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NewNotFoundError(t.resource)
	}
	return mapPgError(err, t.name, t.resource)
}
