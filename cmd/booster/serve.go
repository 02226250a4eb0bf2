package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-booster/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Start an HTTP server that exposes the booster endpoints: scoring, preview, exports, share links, GitHub import, the pitch generator and the assistant.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	port := servePort
	if port == 0 {
		port = cfg.Port
	}
	if port == 0 {
		port = 8080
	}

	srv, err := server.New(server.Config{
		Port:         port,
		GeminiAPIKey: cfg.APIKey,
		GeminiModel:  cfg.Model,
		DataDir:      cfg.DataDir,
		GithubAPIURL: cfg.GithubAPIURL,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
