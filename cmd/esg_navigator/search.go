package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/esg-navigator/internal/catalog"
	"github.com/jonathan/esg-navigator/internal/logger"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search frameworks and resources",
	Long:  "Runs a case-insensitive substring search over framework and resource text and prints the results as JSON.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return fmt.Errorf("search query is required")
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	data, err := loadDataset(context.Background(), cfg, logger.Discard())
	if err != nil {
		return err
	}

	return writeJSON(cmd.OutOrStdout(), catalog.New(data).Search(query))
}
