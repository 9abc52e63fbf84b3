package repo

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shootfed/src/core/domain"
	"shootfed/src/core/ports"
)

type sample struct {
	ID        int64  `db:"id"`
	PublicID  string `db:"public_id"`
	Name      string `db:"name"`
	City      string `db:"city"`
	Ignored   string `db:"-"`
	UpdatedAt string `db:"updated_at"`
	CreatedAt string `db:"created_at"`
}

func sampleTable() table[sample] {
	return newTable[sample]("samples", "sample", "created_at", "name")
}

func TestNewTable_ColumnsFromTags(t *testing.T) {
	tb := sampleTable()

	assert.Equal(t, []string{"id", "public_id", "name", "city", "updated_at", "created_at"}, tb.columns)
	assert.True(t, tb.hasUpdated)
	assert.NotContains(t, tb.columnSet, "-")
}

func TestNewTable_PanicsOnUnknownSortColumn(t *testing.T) {
	assert.Panics(t, func() {
		newTable[sample]("samples", "sample", "nope")
	})
}

func TestBuildInsert(t *testing.T) {
	tb := sampleTable()

	sql, args, err := tb.buildInsert(ports.Values{"name": "Range A", "city": "Pune"})
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO samples (city, name) VALUES (@city, @name) RETURNING id, public_id, name, city, updated_at, created_at",
		sql)
	assert.Equal(t, "Pune", args["city"])
	assert.Equal(t, "Range A", args["name"])
}

func TestBuildInsert_RejectsUnknownColumn(t *testing.T) {
	_, _, err := sampleTable().buildInsert(ports.Values{"password": "x"})
	assert.Error(t, err)
}

func TestBuildUpdate_TouchesUpdatedAt(t *testing.T) {
	tb := sampleTable()

	sql, args, err := tb.buildUpdate("11111111-1111-1111-1111-111111111111", ports.Values{"city": "Delhi"})
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE samples SET city = @city, updated_at = now() WHERE public_id = @public_id RETURNING id, public_id, name, city, updated_at, created_at",
		sql)
	assert.Equal(t, "Delhi", args["city"])
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", args["public_id"])
}

func TestBuildUpdate_PublicIDImmutable(t *testing.T) {
	_, _, err := sampleTable().buildUpdate("x", ports.Values{"public_id": "y"})
	assert.Error(t, err)
}

func TestBuildList(t *testing.T) {
	tb := sampleTable()

	countSQL, pageSQL, args, err := tb.buildList(domain.ListParams{
		Page:      3,
		Limit:     20,
		SortBy:    "name",
		SortOrder: domain.SortAsc,
		Filters:   map[string]any{"city": "Pune"},
	})
	require.NoError(t, err)

	assert.Equal(t, "SELECT count(*) FROM samples WHERE city = @f_city", countSQL)
	assert.Equal(t,
		"SELECT id, public_id, name, city, updated_at, created_at FROM samples WHERE city = @f_city ORDER BY name ASC, id ASC LIMIT @limit OFFSET @offset",
		pageSQL)
	assert.Equal(t, 20, args["limit"])
	assert.Equal(t, 40, args["offset"])
	assert.Equal(t, "Pune", args["f_city"])
}

func TestBuildList_DefaultsToCreatedAtDesc(t *testing.T) {
	_, pageSQL, _, err := sampleTable().buildList(domain.ListParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Contains(t, pageSQL, "ORDER BY created_at DESC, id DESC")
}

func TestBuildList_RejectsUnsortableColumn(t *testing.T) {
	_, _, _, err := sampleTable().buildList(domain.ListParams{Page: 1, Limit: 10, SortBy: "city"})

	var verr *domain.ValidationErrors
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("sortBy"))
}

func TestBuildList_RejectsUnknownFilter(t *testing.T) {
	_, _, _, err := sampleTable().buildList(domain.ListParams{
		Page: 1, Limit: 10, Filters: map[string]any{"password_hash": "x"},
	})
	assert.Error(t, err)
}

func TestMapPgError(t *testing.T) {
	t.Run("unique violation becomes conflict on the column", func(t *testing.T) {
		err := mapPgError(&pgconn.PgError{Code: "23505", ConstraintName: "venues_code_key"}, "venues", "venue")

		var derr *domain.DomainError
		require.ErrorAs(t, err, &derr)
		assert.True(t, domain.IsConflict(err))
		assert.Equal(t, "code", derr.Field)
	})

	t.Run("foreign key violation becomes a field violation", func(t *testing.T) {
		err := mapPgError(&pgconn.PgError{Code: "23503", ConstraintName: "events_venue_id_fkey"}, "events", "event")

		var verr *domain.ValidationErrors
		require.ErrorAs(t, err, &verr)
		assert.True(t, verr.Has("venue_id"))
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("other errors pass through wrapped", func(t *testing.T) {
		base := errors.New("connection reset")
		err := mapPgError(base, "events", "event")
		assert.ErrorIs(t, err, base)
		assert.False(t, domain.IsValidationError(err))
	})
}

func TestConstraintField(t *testing.T) {
	assert.Equal(t, "disability_category_id", constraintField("results_disability_category_id_fkey", "results", "_fkey"))
	assert.Equal(t, "", constraintField("custom_name", "results", "_fkey"))
}
