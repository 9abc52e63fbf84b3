// Package repo contains the PostgreSQL implementation of the repository ports.
//
// PostgresRepository satisfies every interface in src/core/ports. Each table
// is described once by a table[E] value whose column list comes from the
// entity's `db` struct tags; inserts and updates take a ports.Values map and
// use pgx named arguments, reads scan with pgx.RowToStructByName.
//
// Every query goes through db.Postgres.Q(ctx), so calls made inside
// WithinTx share the caller's transaction.
package repo
