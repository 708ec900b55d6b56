package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/cosmo-tools/astro-atlas/pkg/content"
	"github.com/cosmo-tools/astro-atlas/pkg/server"
	"github.com/cosmo-tools/astro-atlas/pkg/services/report"
	"github.com/cosmo-tools/astro-atlas/pkg/store/memory"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cacheTTL        time.Duration
	shutdownTimeout time.Duration
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Astro Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().DurationVar(&cacheTTL, "cache-ttl", 24*time.Hour,
		"How long generated reports stay cached in memory")
	rootCmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 10*time.Second,
		"How long outstanding requests get to finish on shutdown")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	lib, err := content.Load()
	if err != nil {
		return fmt.Errorf("failed to load content library: %w", err)
	}
	logger.Info().
		Int("themes", len(lib.Themes)).
		Int("domains", len(lib.Domains)).
		Msg("content library loaded")

	generator := report.NewGenerator(lib)

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: shutdownTimeout,
		Dependencies: server.Dependencies{
			Report: generator,
			Cache:  memory.NewStore(cacheTTL),
		},
	})

	return api.Start()
}
