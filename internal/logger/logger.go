package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

type Logger struct {
	level       Level
	infoLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	fatalLogger *log.Logger
}

func New(level string) *Logger {
	return NewWithWriters(level, os.Stderr, os.Stderr)
}

// NewWithWriters sends info and debug lines to out, errors to errOut.
func NewWithWriters(level string, out, errOut io.Writer) *Logger {
	flags := log.Ldate | log.Ltime | log.Lshortfile
	return &Logger{
		level:       ParseLevel(level),
		infoLogger:  log.New(out, "INFO: ", flags),
		errorLogger: log.New(errOut, "ERROR: ", flags),
		debugLogger: log.New(out, "DEBUG: ", flags),
		fatalLogger: log.New(errOut, "FATAL: ", flags),
	}
}

func NewDiscard() *Logger {
	return &Logger{
		level:       LevelInfo,
		infoLogger:  log.New(io.Discard, "", 0),
		errorLogger: log.New(io.Discard, "", 0),
		debugLogger: log.New(io.Discard, "", 0),
		fatalLogger: log.New(io.Discard, "", 0),
	}
}

func ParseLevel(level string) Level {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l *Logger) Level() Level {
	return l.level
}

// SetLevel is used when a command line flag overrides the configured level.
func (l *Logger) SetLevel(level Level) {
	l.level = level
}

func (l *Logger) Info(format string, v ...any) {
	if l.level == LevelError {
		return
	}
	l.infoLogger.Output(2, fmt.Sprintf(format, v...))
}

func (l *Logger) Error(format string, v ...any) {
	l.errorLogger.Output(2, fmt.Sprintf(format, v...))
}

func (l *Logger) Debug(format string, v ...any) {
	if l.level != LevelDebug {
		return
	}
	l.debugLogger.Output(2, fmt.Sprintf(format, v...))
}

func (l *Logger) Fatal(v ...any) {
	l.fatalLogger.Fatal(v...)
}
