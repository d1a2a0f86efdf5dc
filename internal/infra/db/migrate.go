package db

import (
	"context"
	"fmt"
	"log/slog"

	"mynbala-backend/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Migrate applies pending migrations from cfg.MigrationsDir with the atlas CLI.
func Migrate(ctx context.Context, cfg config.DBConfig, logger *slog.Logger) error {
	client, err := atlasexec.NewClient(".", cfg.AtlasBin)
	if err != nil {
		return fmt.Errorf("failed to init atlas client: %w", err)
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.BuildURL(),
		DirURL: cfg.MigrationsDir,
	})
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	logger.Info("migrations applied", "count", len(res.Applied), "target", res.Target)
	return nil
}
