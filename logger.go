package main

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const logFileName = "ow-agent.log"

// initLogger sets up the global zerolog logger: human-readable console
// output plus a JSON log file next to the executable. Returns the file so
// main can close it on shutdown.
func initLogger() (*os.File, error) {
	dir := "."
	if exe, err := os.Executable(); err == nil && exe != "" {
		dir = filepath.Dir(exe)
	}

	logFile, err := os.OpenFile(filepath.Join(dir, logFileName),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	log.Logger = zerolog.New(io.MultiWriter(console, logFile)).
		With().Timestamp().Logger()

	level := zerolog.InfoLevel
	if lv, err := zerolog.ParseLevel(os.Getenv("OW_AGENT_LOG_LEVEL")); err == nil && lv != zerolog.NoLevel {
		level = lv
	}
	zerolog.SetGlobalLevel(level)

	return logFile, nil
}
