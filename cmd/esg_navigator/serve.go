package main

import (
	"context"
	"fmt"

	"github.com/jonathan/esg-navigator/internal/catalog"
	"github.com/jonathan/esg-navigator/internal/logger"
	"github.com/jonathan/esg-navigator/internal/recommend"
	"github.com/jonathan/esg-navigator/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort        int
	serveDatabaseURL string
	serveLogLevel    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the framework catalog, selector quiz, recommendations, comparisons and search.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config, default 5000)")
	serveCmd.Flags().StringVar(&serveDatabaseURL, "database-url", "", "PostgreSQL URL to load the dataset from (overrides DATABASE_URL)")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = servePort
	}
	if cmd.Flags().Changed("database-url") {
		cfg.Database.URL = serveDatabaseURL
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = serveLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, File: cfg.Log.File})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	data, err := loadDataset(context.Background(), cfg, log)
	if err != nil {
		return err
	}
	log.WithField("records", data.Counts()).Info("dataset loaded")

	srv := server.New(cfg, catalog.New(data), recommend.Default(), log)
	return srv.Start()
}
