// Command migrate applies or reverts the database schema.
//
//	migrate up
//	migrate down -steps 2
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"todoboard/internal/config"
	"todoboard/internal/database"
	"todoboard/internal/logging"
)

func main() {
	fs := flag.NewFlagSet("migrate", flag.ExitOnError)
	steps := fs.Int("steps", 1, "number of migrations to revert with down")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: migrate up | down [-steps n]")
		fs.PrintDefaults()
	}
	if len(os.Args) < 2 {
		fs.Usage()
		os.Exit(2)
	}
	command := os.Args[1]
	_ = fs.Parse(os.Args[2:])

	if command != "up" && command != "down" {
		fs.Usage()
		os.Exit(2)
	}
	if *steps < 1 {
		fmt.Fprintln(fs.Output(), "steps must be positive")
		os.Exit(2)
	}

	if err := run(command, *steps); err != nil {
		slog.Error("migration failed", "command", command, "error", err)
		os.Exit(1)
	}
}

func run(command string, steps int) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Init(cfg.LogLevel, cfg.LogFormat)

	db, err := database.Open(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	if command == "up" {
		return database.Migrate(db)
	}
	if err := database.Rollback(db, steps); err != nil {
		return err
	}
	slog.Info("migrations reverted", "steps", steps)
	return nil
}
