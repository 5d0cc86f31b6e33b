package migrate

import (
	"context"
	"fmt"

	"github.com/angelmondragon/quizwizard-backend/pkg/config"
	"github.com/angelmondragon/quizwizard-backend/pkg/db"
	"github.com/angelmondragon/quizwizard-backend/pkg/db/models"
	"github.com/angelmondragon/quizwizard-backend/pkg/logger"
)

// MaybeRunDev prepares the schema for local runs. SQLite stores are always
// auto-migrated from the models; Postgres runs goose only in dev with the flag set.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if cfg.DB.IsSQLite() {
		ctx = logg.WithField(ctx, "driver", "sqlite")
		if err := client.DB().WithContext(ctx).AutoMigrate(&models.Item{}); err != nil {
			return fmt.Errorf("auto-migrating sqlite schema: %w", err)
		}
		logg.Info(ctx, "sqlite schema ready")
		return nil
	}

	if !cfg.App.IsDev() || !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	sqlDB, err := client.SQL()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	ctx = logg.WithFields(ctx, map[string]any{"env": cfg.App.Env, "dir": DefaultDir})
	logg.Info(ctx, "running goose migrations (dev auto-run)")

	if err := Run(ctx, sqlDB, DefaultDir, "up"); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}

	logg.Info(ctx, "goose migrations completed")
	return nil
}
