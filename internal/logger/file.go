package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileLogger appends plain leveled lines to a log file. It is the target of
// the log-file setting and is always uncolored.
type FileLogger struct {
	path     string
	file     *os.File
	logLevel string
	mu       sync.Mutex
}

// NewFileLogger opens path for appending, creating it and its directory if
// needed.
func NewFileLogger(path string, logLevel string) (*FileLogger, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return &FileLogger{
		path:     path,
		file:     file,
		logLevel: normalizeLogLevel(logLevel),
	}, nil
}

// Path returns the log file path.
func (fl *FileLogger) Path() string {
	return fl.path
}

func (fl *FileLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(fl.logLevel)
}

// Debugf appends a debug-level line.
func (fl *FileLogger) Debugf(format string, args ...interface{}) {
	fl.logWithLevel("DEBUG", fmt.Sprintf(format, args...))
}

// Infof appends an info-level line.
func (fl *FileLogger) Infof(format string, args ...interface{}) {
	fl.logWithLevel("INFO", fmt.Sprintf(format, args...))
}

// Warnf appends a warning-level line.
func (fl *FileLogger) Warnf(format string, args ...interface{}) {
	fl.logWithLevel("WARN", fmt.Sprintf(format, args...))
}

// Errorf appends an error-level line.
func (fl *FileLogger) Errorf(format string, args ...interface{}) {
	fl.logWithLevel("ERROR", fmt.Sprintf(format, args...))
}

func (fl *FileLogger) logWithLevel(level string, message string) {
	if !fl.shouldLog(strings.ToLower(level)) {
		return
	}

	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.file == nil {
		return
	}
	fmt.Fprintf(fl.file, "[%s] [%s] %s\n", timestamp(), level, message)
}

// Close flushes and closes the file. Later writes are dropped.
func (fl *FileLogger) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.file == nil {
		return nil
	}
	if err := fl.file.Sync(); err != nil {
		fl.file.Close()
		fl.file = nil
		return fmt.Errorf("failed to sync log file: %w", err)
	}
	err := fl.file.Close()
	fl.file = nil
	return err
}
