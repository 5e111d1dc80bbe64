package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/esg-navigator/internal/config"
	"github.com/jonathan/esg-navigator/internal/dataset"
	"github.com/jonathan/esg-navigator/internal/db"
	"github.com/sirupsen/logrus"
)

// loadConfig layers defaults, the optional YAML file and the environment.
// Flag overrides are applied by the caller before validation.
func loadConfig(path string) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// loadDataset picks the dataset source: PostgreSQL when a database URL is
// configured, a seed directory when one is set, the embedded seed otherwise.
func loadDataset(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (*dataset.Dataset, error) {
	switch {
	case cfg.Database.URL != "":
		log.Info("loading dataset from database")
		database, err := db.Connect(ctx, cfg.Database.URL)
		if err != nil {
			return nil, err
		}
		defer database.Close()

		if err := database.Migrate(ctx); err != nil {
			return nil, err
		}
		d, err := database.LoadDataset(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load dataset from database: %w", err)
		}
		return d, nil

	case cfg.Dataset.SeedDir != "":
		log.WithField("dir", cfg.Dataset.SeedDir).Info("loading dataset from seed directory")
		d, err := dataset.LoadFS(os.DirFS(cfg.Dataset.SeedDir))
		if err != nil {
			return nil, fmt.Errorf("failed to load seed directory: %w", err)
		}
		return d, nil

	default:
		log.Info("loading embedded dataset")
		return dataset.Seed()
	}
}
