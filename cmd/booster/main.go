// Package main provides the entry point for the resume booster CLI and
// HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-booster/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "booster",
	Short: "Resume Booster toolkit",
	Long:  "Resume Booster builds, scores, previews, shares and exports resumes, portfolios and pitch decks, as a CLI or an HTTP API server.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration: config file values over
// environment defaults.
func loadConfig() (config.Config, error) {
	env := config.FromEnv()
	if configPath == "" {
		return env, env.Validate()
	}

	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return config.Config{}, err
	}
	merged := fileCfg.MergeWithDefaults(env)
	return merged, merged.Validate()
}
