// Package logging wraps charmbracelet/log for the server. Everything
// goes to stderr (or a debug file) so stdout stays clean for the MCP
// stdio transport.
package logging

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// AppLogger is the process-wide structured logger.
type AppLogger struct {
	logger *log.Logger
	debug  bool
}

var (
	defaultLogger *AppLogger
	once          sync.Once
)

// GetDefault returns the default logger instance.
func GetDefault() *AppLogger {
	once.Do(func() {
		defaultLogger = NewAppLogger()
	})
	return defaultLogger
}

// Package-level convenience functions for quick logging.
func Info(msg string, keyvals ...interface{})  { GetDefault().Info(msg, keyvals...) }
func Warn(msg string, keyvals ...interface{})  { GetDefault().Warn(msg, keyvals...) }
func Error(msg string, keyvals ...interface{}) { GetDefault().Error(msg, keyvals...) }
func Debug(msg string, keyvals ...interface{}) { GetDefault().Debug(msg, keyvals...) }

// NewAppLogger builds a logger from the environment. With DEBUG set,
// logs go verbosely to inkwell.log in the working directory (truncated
// each run); otherwise warnings and errors go to stderr.
func NewAppLogger() *AppLogger {
	debug := os.Getenv("DEBUG") != ""

	var logger *log.Logger

	if debug {
		cwd, err := os.Getwd()
		if err != nil {
			panic(fmt.Sprintf("Failed to get current working directory: %v", err))
		}

		logPath := filepath.Join(cwd, "inkwell.log")
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			panic(fmt.Sprintf("Failed to create debug log file: %v", err))
		}

		logger = log.NewWithOptions(logFile, log.Options{
			ReportCaller:    true,
			ReportTimestamp: true,
			TimeFormat:      time.Kitchen,
			Prefix:          "Inkwell",
		})
		logger.SetLevel(log.DebugLevel)
		logger.Info("Debug logging enabled", "log_file", logPath)
	} else {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Prefix:          "Inkwell",
		})
		logger.SetLevel(log.WarnLevel)
	}

	return &AppLogger{logger: logger, debug: debug}
}

func (al *AppLogger) Info(msg string, keyvals ...interface{}) {
	al.logger.Info(msg, keyvals...)
}

func (al *AppLogger) Warn(msg string, keyvals ...interface{}) {
	al.logger.Warn(msg, keyvals...)
}

func (al *AppLogger) Error(msg string, keyvals ...interface{}) {
	al.logger.Error(msg, keyvals...)
}

func (al *AppLogger) Debug(msg string, keyvals ...interface{}) {
	if al.debug {
		al.logger.Debug(msg, keyvals...)
	}
}

// NewTestLogger creates a logger that writes to a buffer for testing.
func NewTestLogger() (*AppLogger, *bytes.Buffer) {
	var buf bytes.Buffer

	logger := log.NewWithOptions(&buf, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
		Prefix:          "Test",
	})
	logger.SetLevel(log.DebugLevel)

	return &AppLogger{logger: logger, debug: true}, &buf
}
