package canvasui

import (
	"log/slog"
	"os"
)

// uiLogLevel controls the log level of the package logger.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var uiLogLevel = new(slog.LevelVar)

// uiLogger is the default logger of every Runtime; WithLogger overrides it.
var uiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: uiLogLevel}))

// SetVerbose enables or disables debug logging.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		uiLogLevel.Set(slog.LevelDebug)
	} else {
		uiLogLevel.Set(slog.LevelInfo)
	}
}

// uiVerbose returns true if debug logging is enabled.
func uiVerbose() bool {
	return uiLogLevel.Level() <= slog.LevelDebug
}
