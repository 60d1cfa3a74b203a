package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level уровень логирования
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel разбирает уровень логирования из строки конфигурации
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("logger: unknown log level %q", s)
	}
}

// Logger простой файловый логгер с уровнями.
// Пишет одновременно в stdout и в файл (если файл указан).
type Logger struct {
	out   *log.Logger
	file  *os.File
	level Level
}

// New создает логгер. Если path пустой, лог пишется только в stdout.
func New(path, level string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var w io.Writer = os.Stdout
	var f *os.File
	if path != "" {
		f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: failed to open log file %s: %w", path, err)
		}
		w = io.MultiWriter(os.Stdout, f)
	}

	return &Logger{
		out:   log.New(w, "", log.LstdFlags|log.Lmicroseconds),
		file:  f,
		level: lvl,
	}, nil
}

// Close закрывает файл лога
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Debug пишет сообщение уровня DEBUG
func (l *Logger) Debug(format string, v ...interface{}) {
	l.write(LevelDebug, "DEBUG", format, v...)
}

// Info пишет сообщение уровня INFO
func (l *Logger) Info(format string, v ...interface{}) {
	l.write(LevelInfo, "INFO", format, v...)
}

// Warn пишет сообщение уровня WARN
func (l *Logger) Warn(format string, v ...interface{}) {
	l.write(LevelWarn, "WARN", format, v...)
}

// Error пишет сообщение уровня ERROR
func (l *Logger) Error(format string, v ...interface{}) {
	l.write(LevelError, "ERROR", format, v...)
}

// Fatal пишет сообщение уровня FATAL и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.write(LevelError, "FATAL", format, v...)
	os.Exit(1)
}

func (l *Logger) write(lvl Level, tag, format string, v ...interface{}) {
	if lvl < l.level {
		return
	}
	l.out.Printf("["+tag+"] "+format, v...)
}
