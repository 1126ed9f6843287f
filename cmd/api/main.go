package main

import (
	"os"

	"sales-metrics-service/internal/cli"
	"sales-metrics-service/internal/logging"
)

// @title Sales Metrics API
// @version 1.0
// @description Sales dashboard aggregation service
// @BasePath /
func main() {
	if err := cli.Execute(); err != nil {
		logging.Error().Err(err).Msg("sales-metrics failed")
		os.Exit(1)
	}
}
