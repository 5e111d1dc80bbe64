package main

import (
	"context"
	"fmt"

	"github.com/jonathan/esg-navigator/internal/dataset"
	"github.com/jonathan/esg-navigator/internal/db"
	"github.com/spf13/cobra"
)

var seedDBDatabaseURL string

var seedDBCmd = &cobra.Command{
	Use:   "seed-db",
	Short: "Create the dataset tables and write the embedded dataset to PostgreSQL",
	Long:  "Migrates the schema and upserts every framework, resource, selector question and comparison row from the embedded seed data in one transaction.",
	RunE:  runSeedDB,
}

func init() {
	seedDBCmd.Flags().StringVar(&seedDBDatabaseURL, "database-url", "", "PostgreSQL URL (overrides DATABASE_URL)")
	rootCmd.AddCommand(seedDBCmd)
}

func runSeedDB(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("database-url") {
		cfg.Database.URL = seedDBDatabaseURL
	}
	if cfg.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL environment variable or --database-url is required")
	}

	data, err := dataset.Seed()
	if err != nil {
		return err
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, cfg.Database.URL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		return err
	}
	if err := database.SeedDataset(ctx, data); err != nil {
		return err
	}

	counts := data.Counts()
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d frameworks, %d resources, %d selector questions, %d comparisons\n",
		counts[dataset.KindFramework], counts[dataset.KindResource],
		counts[dataset.KindQuestion], counts[dataset.KindComparison])
	return nil
}
