package main

import (
	"log/slog"
	"os"

	_ "todoboard/docs"
	"todoboard/internal/config"
	"todoboard/internal/logging"
	"todoboard/internal/server"
)

// @title           Todo Board API
// @version         1.0
// @description     Shared kanban boards with members, custom columns and an error room.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Token returned by "switch user", as "Bearer {token}".

// @schemes http
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.Init(cfg.LogLevel, cfg.LogFormat)

	s, err := server.Init(cfg)
	if err != nil {
		slog.Error("server initialization failed", "error", err)
		os.Exit(1)
	}

	s.Run()
}
