package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/thenoetrevino/tasktracker/cmd"
	"github.com/thenoetrevino/tasktracker/internal/logging"
)

func main() {
	// A .env file is optional; overrides like TASKTRACKER_ADDR may come from it
	_ = godotenv.Load()

	if err := logging.Init(); err != nil {
		slog.Error("failed to initialize logging", "error", err)
	}

	if err := cmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
