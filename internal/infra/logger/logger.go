package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

type Config struct {
	Debug bool
}

var (
	mu     sync.RWMutex
	global = slog.New(slog.NewJSONHandler(io.Discard, nil))
	ready  bool
)

// Setup routes the process logger to stderr. Stdout is reserved for the
// rendered figure, so log lines never go there; at the default Warn level a
// successful run logs nothing at all.
func Setup(cfg Config) (func() error, error) {
	level := slog.LevelWarn
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}

	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				t := a.Value.Time().UTC()
				a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
			}
			return a
		},
	})

	l := slog.New(h)

	mu.Lock()
	global = l
	ready = true
	mu.Unlock()

	global.Debug("logger.initialized", "debug", cfg.Debug)

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()
		ready = false
		global = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return nil
	}

	return cleanup, nil
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func IsReady() error {
	mu.RLock()
	defer mu.RUnlock()
	if !ready {
		return errors.New("logger not initialized")
	}
	return nil
}
