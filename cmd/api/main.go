package main

import (
	"os"

	"github.com/sonquang/laixe-registry/internal/pkg/logger"
	"github.com/sonquang/laixe-registry/internal/server"
)

// Driving-school teacher registry API. Serves an in-memory collection of
// teacher profiles under /api/v1 with xlsx workbook import.
func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
