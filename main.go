package main

import (
	"log"
	"log/slog"
	"net/http"

	"mybooks/config"
	"mybooks/database"
	"mybooks/handlers"
	"mybooks/logger"
	"mybooks/services"

	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for local development; real deployments set env vars
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.Environment, cfg.Debug)

	services.InitSessionStore(cfg)

	if err := database.Connect(cfg); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close()

	if err := database.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	if err := database.SeedAdminUser(cfg); err != nil {
		log.Fatal("Failed to seed admin user:", err)
	}

	addr := ":" + cfg.ServerPort
	slog.Info("mybooks is starting",
		"addr", addr,
		"env", cfg.Environment,
		"debug", cfg.Debug)

	if err := http.ListenAndServe(addr, handlers.Routes()); err != nil {
		log.Fatalf("FATAL: Server failed to start: %v", err)
	}
}
