// Package logger configures the process-wide structured logger. Output goes
// to a log file, never stdout, so one-shot commands and the TUI stay clean;
// recovered failures (storage reads, AI calls) are logged here instead of
// being surfaced.
package logger

import (
	"io"
	"os"
	"sync"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
)

var (
	log  = logrus.New()
	once sync.Once
)

const defaultLogFile = "~/.lifedash.log"

// Log returns the shared logger, initializing it on first use.
func Log() *logrus.Logger {
	once.Do(setup)
	return log
}

func setup() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(io.Discard)

	level := logrus.WarnLevel
	if s := os.Getenv("LIFEDASH_LOG_LEVEL"); s != "" {
		if parsed, err := logrus.ParseLevel(s); err == nil {
			level = parsed
		}
	}
	log.SetLevel(level)

	path, err := homedir.Expand(defaultLogFile)
	if err != nil {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		// Logging is best effort; the app degrades silently without it.
		return
	}
	log.SetOutput(f)
}
