package main

import (
	"fmt"

	"github.com/katiamach/weather-dashboard-api/internal/api"
	"github.com/katiamach/weather-dashboard-api/internal/config"
	"github.com/katiamach/weather-dashboard-api/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to load config: %w", err))
	}

	err = api.RunAPI(cfg)
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to run weather api: %v", err))
	}
}
