// Package db owns the Postgres pool, context-scoped transactions, and the
// embedded goose migrations that create the federation schema.
//
// The API opens one pool at startup and hands it to the repository:
//
//	pg, err := db.New(ctx, cfg.Database, log)
//	if err != nil {
//	    return err
//	}
//	defer pg.Close()
//
// Schema changes ship as SQL files under migrations/ and are applied by
// `shootfed migrate up` or `shootfed api --migrate`, both of which call
// Migrate(ctx, pg, MigrateUp).
package db
