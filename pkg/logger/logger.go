package logger

import (
	"log/slog"
	"os"
)

// Log is the process-wide structured logger. It defaults to a text handler
// so code that runs before Init (config loading, tests) can still log.
var Log = slog.New(slog.NewTextHandler(os.Stderr, nil))

// Init switches the process logger to JSON output for production-ready
// log aggregation.
func Init() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
}
