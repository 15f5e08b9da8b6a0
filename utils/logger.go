package utils

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"time"

	"github.com/gookit/slog/rotatefile"
	"github.com/lmittmann/tint"
	"github.com/pkg/errors"
	"github.com/samber/slog-multi"
)

type Logger = *slog.Logger

func NewLogger(module string, dir string, debug bool) (Logger, error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, errors.Wrap(err, "create logs directory")
	}

	writer, err := rotatefile.NewConfig(
		path.Join(dir, fmt.Sprintf("%s.log", module)),
		func(c *rotatefile.Config) {
			c.MaxSize = 10 * 1024 * 1024 // 10 MB
			c.BackupNum = 5
			c.RotateTime = rotatefile.EveryMonth
			c.Compress = true
		},
	).Create()
	if err != nil {
		return nil, errors.Wrap(err, "create log file")
	}

	consoleHandler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	})

	return slog.New(
		slogmulti.Fanout(
			consoleHandler,
			slog.NewTextHandler(writer, &slog.HandlerOptions{Level: slog.LevelDebug}),
		),
	).With("module", module), nil
}

// NopLogger discards everything.
func NopLogger() Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
