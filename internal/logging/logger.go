// Package logging provides categorized file-based logging for counsel.
// Logs are written to <dir>/logs with one dated file per category.
// When no directory is configured every logger is a silent no-op, so
// library code can log unconditionally.
package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Category represents a log category/system.
type Category string

const (
	CategoryBoot       Category = "boot"       // Startup, config resolution
	CategoryPipeline   Category = "pipeline"   // Stage sequencing, orchestration
	CategoryProvider   Category = "provider"   // LLM API calls, retries, fallback
	CategoryDivergence Category = "divergence" // Dual-perspective sub-pipeline
	CategoryExport     Category = "export"     // Result export
	CategoryService    Category = "service"    // HTTP service layer
)

// Log levels.
const (
	LevelDebug = 0
	LevelInfo  = 1
	LevelWarn  = 2
	LevelError = 3
)

// Logger wraps a standard logger with a category and file output.
type Logger struct {
	category Category
	logger   *log.Logger
	file     *os.File
}

var (
	loggers   = make(map[Category]*Logger)
	loggersMu sync.RWMutex
	logsDir   string
	logLevel  = LevelInfo
)

// Initialize sets up the logging directory. Should be called once at
// startup; passing an empty dir leaves logging disabled.
func Initialize(dir string, level int) error {
	if dir == "" {
		return nil
	}
	logsDir = filepath.Join(dir, "logs")
	logLevel = level

	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	Get(CategoryBoot).Info("logging initialized: dir=%s level=%d", logsDir, level)
	return nil
}

// Get returns (or creates) a logger for the given category.
// Returns a no-op logger when logging is disabled.
func Get(category Category) *Logger {
	if logsDir == "" {
		return &Logger{category: category}
	}

	loggersMu.RLock()
	if l, ok := loggers[category]; ok {
		loggersMu.RUnlock()
		return l
	}
	loggersMu.RUnlock()

	loggersMu.Lock()
	defer loggersMu.Unlock()

	// Double-check after acquiring write lock.
	if l, ok := loggers[category]; ok {
		return l
	}

	// Dated file name for easy rotation.
	date := time.Now().Format("2006-01-02")
	logPath := filepath.Join(logsDir, fmt.Sprintf("%s_%s.log", date, category))

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[logging] Warning: could not open log file %s: %v\n", logPath, err)
		return &Logger{category: category}
	}

	l := &Logger{
		category: category,
		file:     file,
		logger:   log.New(file, "", log.Ldate|log.Ltime|log.Lmicroseconds),
	}
	loggers[category] = l
	return l
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.logger == nil || logLevel > LevelDebug {
		return
	}
	l.logger.Printf("[DEBUG] %s", fmt.Sprintf(format, args...))
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...interface{}) {
	if l.logger == nil || logLevel > LevelInfo {
		return
	}
	l.logger.Printf("[INFO] %s", fmt.Sprintf(format, args...))
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...interface{}) {
	if l.logger == nil || logLevel > LevelWarn {
		return
	}
	l.logger.Printf("[WARN] %s", fmt.Sprintf(format, args...))
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Printf("[ERROR] %s", fmt.Sprintf(format, args...))
}

// CloseAll closes all open log files (call at shutdown).
func CloseAll() {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	for _, l := range loggers {
		if l.file != nil {
			l.file.Close()
		}
	}
	loggers = make(map[Category]*Logger)
}

// Pipeline logs to the pipeline category.
func Pipeline(format string, args ...interface{}) {
	Get(CategoryPipeline).Info(format, args...)
}

// PipelineWarn logs a warning to the pipeline category.
func PipelineWarn(format string, args ...interface{}) {
	Get(CategoryPipeline).Warn(format, args...)
}

// Provider logs to the provider category.
func Provider(format string, args ...interface{}) {
	Get(CategoryProvider).Info(format, args...)
}

// ProviderWarn logs a warning to the provider category.
func ProviderWarn(format string, args ...interface{}) {
	Get(CategoryProvider).Warn(format, args...)
}

// Divergence logs to the divergence category.
func Divergence(format string, args ...interface{}) {
	Get(CategoryDivergence).Info(format, args...)
}

// DivergenceWarn logs a warning to the divergence category.
func DivergenceWarn(format string, args ...interface{}) {
	Get(CategoryDivergence).Warn(format, args...)
}

// Timer helps measure operation duration.
type Timer struct {
	category Category
	op       string
	start    time.Time
}

// StartTimer begins timing an operation.
func StartTimer(category Category, operation string) *Timer {
	return &Timer{category: category, op: operation, start: time.Now()}
}

// Stop ends the timer and logs the duration.
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	Get(t.category).Info("%s completed in %v", t.op, elapsed)
	return elapsed
}
