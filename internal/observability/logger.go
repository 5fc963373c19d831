package observability

import (
	"log/slog"
	"os"
	"strings"

	"github.com/couchcryptid/iono-band-advisor/internal/config"
)

// NewLogger builds the process logger from config: LOG_LEVEL sets the
// threshold, LOG_FORMAT selects text or JSON output. Unrecognized values
// fall back to info and text.
func NewLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.ToLower(cfg.LogFormat) == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}
