package log

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/logit-ml/logit/pkg/errors"
)

var (
	rootMu sync.RWMutex
	root   = zerolog.New(os.Stderr).With().Timestamp().Logger()
)

func init() {
	// errors.Warn で発生した警告をzerologの構造化ログとして出力する
	errors.SetZerologWarnFunc(func(w error) {
		rootMu.RLock()
		logger := root
		rootMu.RUnlock()

		ev := logger.Warn()
		if m, ok := w.(zerolog.LogObjectMarshaler); ok {
			ev = ev.EmbedObject(m)
		}
		ev.Msg(w.Error())
	})
}

// SetOutput replaces the root zerolog logger. Intended for tests and for
// applications that want to route library logs into their own sink.
func SetOutput(logger zerolog.Logger) {
	rootMu.Lock()
	defer rootMu.Unlock()
	root = logger
}

// SetLevel sets the global minimum level for the zerolog-backed loggers.
func SetLevel(level Level) {
	zerolog.SetGlobalLevel(toZerologLevel(level))
}

// GetLogger returns the default zerolog-backed Logger.
func GetLogger() Logger {
	rootMu.RLock()
	defer rootMu.RUnlock()
	return &zerologLogger{zl: root}
}

// GetLoggerWithName returns a Logger tagged with a component name,
// e.g. "linear.logistic" or "metrics.roc".
func GetLoggerWithName(name string) Logger {
	rootMu.RLock()
	defer rootMu.RUnlock()
	return &zerologLogger{zl: root.With().Str(ComponentKey, name).Logger()}
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// zerologLogger adapts a zerolog.Logger to the Logger interface.
type zerologLogger struct {
	zl zerolog.Logger
}

func (l *zerologLogger) Debug(msg string, fields ...any) {
	l.emit(l.zl.Debug(), msg, fields)
}

func (l *zerologLogger) Info(msg string, fields ...any) {
	l.emit(l.zl.Info(), msg, fields)
}

func (l *zerologLogger) Warn(msg string, fields ...any) {
	l.emit(l.zl.Warn(), msg, fields)
}

func (l *zerologLogger) Error(msg string, fields ...any) {
	l.emit(l.zl.Error(), msg, fields)
}

func (l *zerologLogger) With(fields ...any) Logger {
	ctx := l.zl.With()
	for i := 0; i+1 < len(fields); i += 2 {
		key := fmt.Sprintf("%v", fields[i])
		ctx = ctx.Interface(key, fields[i+1])
	}
	return &zerologLogger{zl: ctx.Logger()}
}

func (l *zerologLogger) Enabled(_ context.Context, level Level) bool {
	return toZerologLevel(level) >= l.zl.GetLevel() &&
		toZerologLevel(level) >= zerolog.GlobalLevel()
}

func (l *zerologLogger) emit(ev *zerolog.Event, msg string, fields []any) {
	for i := 0; i+1 < len(fields); i += 2 {
		key := fmt.Sprintf("%v", fields[i])
		switch v := fields[i+1].(type) {
		case error:
			ev = ev.AnErr(key, v)
		default:
			ev = ev.Interface(key, v)
		}
	}
	// 奇数個のフィールドが渡された場合、末尾の値は無視される
	ev.Msg(msg)
}
