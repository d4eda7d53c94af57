package main

import (
	"context"
	"flag"
	"log/slog"

	"mentorship/config"
	logs "mentorship/internal/infra/log"
	"mentorship/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	DB     *gorm.DB
	Logger *slog.Logger
}

func main() {
	dryRun := flag.Bool("dry-run", false, "Print the models and statements without touching the database")
	flag.Parse()

	if *dryRun {
		postgres.PrintPlan(slog.Default())

		return
	}

	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(runMigrate),
	).Run()
}

// runMigrate migrates once the database is reachable and then stops the app.
func runMigrate(params migrateParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := postgres.Migrate(ctx, params.DB, params.Logger); err != nil {
				params.Logger.Error("Migration failed", slog.Any("error", err))

				return params.Shutdown(fx.ExitCode(1))
			}

			return params.Shutdown()
		},
	})
}
