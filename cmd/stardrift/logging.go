package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/stardrift/core"
)

const (
	logDir      = "logs"
	logFileName = "stardrift.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes slog and the standard logger to logs/stardrift.log when debug is set
// Without debug, or if the file cannot be opened, all logging is discarded
// The terminal is owned by the renderer so nothing is ever written to stdout/stderr
func setupLogging(debug bool) *os.File {
	if !debug {
		disableLogging()
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		disableLogging()
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("stardrift-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			disableLogging()
			return nil
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		disableLogging()
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	core.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return f
}

func disableLogging() {
	log.SetOutput(io.Discard)
	core.SetLogger(nil)
}
