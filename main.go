// Package main is the entry point for the shootfed API and web servers.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"shootfed/src/app/server"
	"shootfed/src/app/web"
	"shootfed/src/core/domain"
	"shootfed/src/core/ports"
	"shootfed/src/core/usecase"
	"shootfed/src/infra/config"
	"shootfed/src/infra/db"
	"shootfed/src/infra/logger"
	"shootfed/src/infra/repo"
	"shootfed/src/infra/security"
	"shootfed/src/infra/storage"
)

func main() {
	args := os.Args
	if len(args) == 1 {
		args = append(args, "--help")
	}

	root := &cli.Command{
		Name:  "shootfed",
		Usage: "Shooting sports federation API and website",
		Commands: []*cli.Command{
			apiCommand(),
			webCommand(),
			migrateCommand(),
			grantRoleCommand(),
		},
	}

	if err := root.Run(context.Background(), args); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func apiCommand() *cli.Command {
	return &cli.Command{
		Name:  "api",
		Usage: "Run the REST API server",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "migrate", Usage: "apply pending migrations before serving"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.New(cfg.Log)
			log.Info("starting api", "port", cfg.Server.Port, "log_level", cfg.Log.Level)

			pg, err := db.New(ctx, cfg.Database, log)
			if err != nil {
				return err
			}
			defer pg.Close()

			if c.Bool("migrate") {
				if err := db.Migrate(ctx, pg, db.MigrateUp); err != nil {
					return err
				}
			}

			deps := server.Deps{
				Repo:   repo.NewPostgresRepository(pg, logger.WithComponent(log, "repo")),
				Hasher: security.NewBcryptHasher(security.DefaultCost),
			}
			files, err := storage.NewS3Store(ctx, cfg.Storage, logger.WithComponent(log, "storage"))
			if err != nil {
				log.Warn("media storage unavailable, uploads disabled", "error", err)
			} else {
				deps.Files = files
			}

			return server.New(cfg, log, deps).Run(ctx)
		},
	}
}

func webCommand() *cli.Command {
	return &cli.Command{
		Name:  "web",
		Usage: "Run the public website server that proxies to the API",
		Action: func(ctx context.Context, _ *cli.Command) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return web.New(cfg, logger.New(cfg.Log)).Run(ctx)
		},
	}
}

func migrateCommand() *cli.Command {
	step := func(direction db.MigrateDirection, usage string) *cli.Command {
		return &cli.Command{
			Name:  string(direction),
			Usage: usage,
			Action: func(ctx context.Context, _ *cli.Command) error {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				log := logger.New(cfg.Log)
				pg, err := db.New(ctx, cfg.Database, log)
				if err != nil {
					return err
				}
				defer pg.Close()
				return db.Migrate(ctx, pg, direction)
			},
		}
	}
	return &cli.Command{
		Name:  "migrate",
		Usage: "Manage the database schema",
		Commands: []*cli.Command{
			step(db.MigrateUp, "apply all pending migrations"),
			step(db.MigrateDown, "roll back the latest migration"),
			step(db.MigrateStatus, "print migration status"),
		},
	}
}

// grantRoleCommand assigns a role without going through the API, which is
// how the first admin gets created.
func grantRoleCommand() *cli.Command {
	return &cli.Command{
		Name:  "grant-role",
		Usage: "Assign a role to a user directly in the database",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "user", Required: true, Usage: "user public id"},
			&cli.StringFlag{Name: "role", Value: domain.RoleAdmin, Usage: "role name"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.New(cfg.Log)
			pg, err := db.New(ctx, cfg.Database, log)
			if err != nil {
				return err
			}
			defer pg.Close()

			r := repo.NewPostgresRepository(pg, log)
			var hasher ports.PasswordHasher = security.NewBcryptHasher(security.DefaultCost)
			users := usecase.NewUserService(r, r, hasher, log)

			user, err := users.AssignRole(ctx, domain.Actor{}, c.String("user"), c.String("role"))
			if err != nil {
				return err
			}
			fmt.Printf("%s now holds %v\n", user.Email, user.Roles)
			return nil
		},
	}
}
