package logger

import (
	"log/slog"
	"os"
)

// Log defaults to a JSON handler so packages can log before Init runs
// (tests exercise handlers without going through main).
var Log = slog.New(slog.NewJSONHandler(os.Stdout, nil))

func Init() {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
}
