package log

import (
	"fmt"
	"log/slog"
	"os"
)

// SetupSlog configures the process-wide slog default logger with JSON output
// and cockroachdb stacktrace extraction. Applications embedding logit can call
// this once at startup; library code never calls it.
func SetupSlog(loglevel string) {
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     ToSlogLevel(loglevel),
	}
	handler := slog.NewJSONHandler(os.Stdout, &ops)
	slog.SetDefault(slog.New(WrapByErrFmtHandler(handler)))
}

// ToSlogLevel converts a textual level name to a slog.Level.
func ToSlogLevel(level string) slog.Level {
	switch level {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}
