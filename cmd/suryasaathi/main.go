package main

import (
	"log/slog"
	"os"

	"github.com/ayushnp/AlgoMinds-SuryaSaathi/cmd/suryasaathi/commands"
)

func main() {
	// Initialize structured logger with text format for readability
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	commands.Execute()
}
