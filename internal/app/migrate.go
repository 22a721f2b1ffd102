package app

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/jackc/pgx/v4/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"

	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Migrate brings the schema up to the newest embedded goose migration.
// Applied versions are tracked in goose_db_version, so re-running only
// applies what is new.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	migrations, err := fs.Sub(schemaFS, "schema")
	if err != nil {
		return err
	}

	db := stdlib.OpenDB(*pool.Config().ConnConfig)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations)
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	for _, r := range results {
		utils.Logger.WithFields(logrus.Fields{
			"version":  r.Source.Version,
			"file":     r.Source.Path,
			"duration": r.Duration.String(),
		}).Info("Applied migration")
	}
	return nil
}
