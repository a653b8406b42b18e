package logging

// Leveled logging for the inventory view tools.

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

type Level int

const (
	LevelSilent Level = iota
	LevelError
	LevelInfo
	LevelVerbose
	LevelDebug
)

var levelNames = map[string]Level{
	"silent":  LevelSilent,
	"error":   LevelError,
	"info":    LevelInfo,
	"verbose": LevelVerbose,
	"debug":   LevelDebug,
}

// ParseLevel maps a level name to a Level.
func ParseLevel(s string) (Level, error) {
	if lvl, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return lvl, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Logger writes errors to stderr, other messages to the console only at
// verbose and above, and everything at or under its level to the log file.
type Logger struct {
	mu      sync.Mutex
	level   Level
	file    *os.File
	fileLog *log.Logger
	console *log.Logger
	errs    *log.Logger
}

func New(level Level, logFile string) (*Logger, error) {
	l := &Logger{
		level:   level,
		console: log.New(os.Stdout, "", 0),
		errs:    log.New(os.Stderr, "", 0),
	}
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		l.file = file
		l.fileLog = log.New(file, "", log.LstdFlags)
	}
	return l, nil
}

// NewWriter logs everything at or under level to w. Used by the terminal
// front-end, which owns stdout, and by tests.
func NewWriter(level Level, w io.Writer) *Logger {
	return &Logger{
		level:   level,
		fileLog: log.New(w, "", 0),
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{level: LevelSilent}
}

func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func (l *Logger) Error(format string, v ...any) { l.logf(LevelError, "ERROR: ", format, v...) }

func (l *Logger) Info(format string, v ...any) { l.logf(LevelInfo, "INFO: ", format, v...) }

func (l *Logger) Verbose(format string, v ...any) { l.logf(LevelVerbose, "VERBOSE: ", format, v...) }

func (l *Logger) Debug(format string, v ...any) { l.logf(LevelDebug, "DEBUG: ", format, v...) }

func (l *Logger) Level() Level {
	if l == nil {
		return LevelSilent
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) logf(level Level, prefix, format string, v ...any) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.level < level {
		return
	}
	msg := prefix + fmt.Sprintf(format, v...)
	if l.fileLog != nil {
		l.fileLog.Println(msg)
	}
	switch {
	case level == LevelError && l.errs != nil:
		l.errs.Println(msg)
	case l.level >= LevelVerbose && l.console != nil:
		l.console.Println(msg)
	}
}
