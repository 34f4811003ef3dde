package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

var levelNames = map[LogLevel]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel converts a level name such as "warn" into a LogLevel
func ParseLevel(name string) (LogLevel, error) {
	for level, levelName := range levelNames {
		if strings.EqualFold(levelName, strings.TrimSpace(name)) {
			return level, nil
		}
	}
	return INFO, fmt.Errorf("unknown log level %q", name)
}

type Logger struct {
	mu           sync.Mutex
	logger       *log.Logger
	level        LogLevel
	closer       io.Closer
	enableCaller bool
	exit         func(int)
}

// The TUI owns stdout, so the global logger only ever writes to a file.
var globalLogger *Logger

// InitLogger opens logPath and installs it as the global logger
func InitLogger(logPath string, level LogLevel) error {
	logger, err := NewFileLogger(logPath, level)
	if err != nil {
		return err
	}
	globalLogger = logger
	return nil
}

// SetGlobal replaces the global logger, nil disables logging
func SetGlobal(l *Logger) {
	globalLogger = l
}

// IsDebugEnabled reports whether debug messages are written
func IsDebugEnabled() bool {
	return globalLogger != nil && globalLogger.level <= DEBUG
}

// CloseLogger closes the global logger
func CloseLogger() error {
	if globalLogger != nil {
		return globalLogger.Close()
	}
	return nil
}

func Debug(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.log(DEBUG, format, args...)
	}
}

func Info(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.log(INFO, format, args...)
	}
}

func Warn(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.log(WARN, format, args...)
	}
}

func Error(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.log(ERROR, format, args...)
	}
}

func Fatal(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.log(FATAL, format, args...)
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// NewFileLogger creates a logger appending to logPath
func NewFileLogger(logPath string, level LogLevel) (*Logger, error) {
	dir := filepath.Dir(logPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	l := NewWriterLogger(file, level)
	l.closer = file
	return l, nil
}

// NewWriterLogger creates a logger writing to w
func NewWriterLogger(w io.Writer, level LogLevel) *Logger {
	return &Logger{
		logger:       log.New(w, "", 0),
		level:        level,
		enableCaller: true,
		exit:         os.Exit,
	}
}

// Close closes the underlying file, if any
func (l *Logger) Close() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

// SetLevel sets the minimum log level
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

// EnableCaller enables/disables caller information in logs
func (l *Logger) EnableCaller(enable bool) {
	l.mu.Lock()
	l.enableCaller = enable
	l.mu.Unlock()
}

func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05.000")

	var caller string
	if l.enableCaller {
		// skip log and the exported wrapper
		_, file, line, ok := runtime.Caller(2)
		if ok {
			caller = fmt.Sprintf(" [%s:%d]", filepath.Base(file), line)
		}
	}

	message := fmt.Sprintf(format, args...)
	l.logger.Printf("%s [%s]%s %s", timestamp, level, caller, message)

	if level == FATAL {
		l.exit(1)
	}
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(DEBUG, format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.log(INFO, format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(WARN, format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.log(ERROR, format, args...)
}

// Fatal logs and exits the program
func (l *Logger) Fatal(format string, args ...interface{}) {
	l.log(FATAL, format, args...)
}
