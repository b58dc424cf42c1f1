package main

import (
	"net/http"

	"github.com/joho/godotenv"

	"github.com/GoldenRodger5/nutrivize-sub004/config"
	"github.com/GoldenRodger5/nutrivize-sub004/database"
	"github.com/GoldenRodger5/nutrivize-sub004/jobs"
	"github.com/GoldenRodger5/nutrivize-sub004/logger"
	"github.com/GoldenRodger5/nutrivize-sub004/routes"
)

func main() {
	logger.Init()
	defer logger.Sync()

	// Load .env
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, using system env vars")
	}

	// Optional YAML config; env vars win
	cfg, err := config.ReadConfig(config.GetEnv("CONFIG_FILE", "nutrivize.yaml"))
	if err != nil {
		logger.Fatal("Failed to read config", "error", err)
	}
	cfg.Apply()

	database.InitDB()

	// Start background nutrition enrichment worker
	jobs.GetWorker()

	r := routes.SetupRouter()

	port := config.GetEnv("PORT", "8080")
	logger.Info("Server starting", "port", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logger.Error("Server failed to start", "error", err)
	}
}
