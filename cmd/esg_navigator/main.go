// Package main provides the entry point for the ESG framework navigator API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "esg_navigator",
	Short: "ESG Framework Navigator HTTP API Server",
	Long:  "ESG Framework Navigator serves reference data on ESG reporting frameworks, a framework selector quiz with scored recommendations, a comparison matrix and search via REST API.",

	SilenceUsage: true,
}

// configPath is shared by every subcommand.
var configPath string

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to YAML config file (defaults are used when omitted)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
