package main

import (
	"context"
	"fmt"
	"os"

	"atelier/internal/config"
	"atelier/internal/db"
	applog "atelier/internal/log"
	"atelier/models"
)

var loadConfigFunc = config.Load

func main() {
	ctx := context.Background()
	if err := run(ctx, config.OSEnv()); err != nil {
		fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, env config.Env) error {
	defer applog.Sync()

	cfg, err := loadConfigFunc()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := applog.SetLevel(cfg.Logging.Level); err != nil {
		return fmt.Errorf("set log level: %w", err)
	}

	url, err := env.Require("DATABASE_URL")
	if err != nil {
		return err
	}
	cfg.Database.URL = url

	database, err := db.Configure(cfg.Database)
	if err != nil {
		return fmt.Errorf("configure database: %w", err)
	}
	defer func() {
		if err := db.Close(database); err != nil {
			applog.Error(ctx, "failed to close database", "error", err)
		}
	}()

	if err := db.SeedRncpTitles(ctx, database); err != nil {
		return fmt.Errorf("seed rncp titles: %w", err)
	}

	var titles int64
	if err := database.WithContext(ctx).Model(&models.RncpTitle{}).Count(&titles).Error; err != nil {
		return fmt.Errorf("count rncp titles: %w", err)
	}
	applog.Info(ctx, "Database seeded with sample RNCP metadata.", "titles", titles)
	return nil
}
