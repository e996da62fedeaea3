package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/lixenwraith/orrery/parameter"
)

const (
	logDir      = parameter.LogDir
	logFileName = parameter.LogFileName

	// maxLogSize triggers rotation of the previous run's log
	maxLogSize = 10 * 1024 * 1024
)

// setupLogging returns a logfmt logger writing to logs/orrery.log when debug is set
// Otherwise output is discarded; the terminal belongs to the screen
func setupLogging(debug bool) (log.Logger, *os.File) {
	if !debug {
		return log.NewLogfmtLogger(io.Discard), nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "orrery: create log dir: %v\n", err)
		return log.NewNopLogger(), nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("orrery-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "orrery: rotate log: %v\n", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "orrery: open log: %v\n", err)
		return log.NewNopLogger(), nil
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(f))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	logger = level.NewFilter(logger, level.AllowDebug())
	return logger, f
}
