// Package log provides the small leveled logger used by the store
// adapters. Output goes to the terminal, a rotated file, or both; the
// record model and codec themselves never log.
package log

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger struct {
	writer io.Writer

	Name  string
	Level Level

	TimeFormat string
	File       string
	NoColor    bool
	Rotation   *Rotation
}

// Rotation configures the lumberjack file sink.
type Rotation struct {
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

// NewLogger creates a logger writing to stdout and, when file is not
// empty, to a size-rotated log file. noTerminal suppresses the stdout
// sink.
func NewLogger(name string, level Level, file string, noTerminal bool) *Logger {
	l := &Logger{
		Name:  name,
		Level: level,
		File:  file,

		TimeFormat: "2006-01-02 15:04:05",
		Rotation: &Rotation{
			MaxSize:    128,
			MaxBackups: 5,
			MaxAge:     16,
			Compress:   false,
		},
	}

	var writers []io.Writer
	if !noTerminal {
		writers = append(writers, os.Stdout)
	}
	if l.File != "" {
		l.NoColor = true
		writers = append(writers, &lumberjack.Logger{
			Filename:   l.File,
			MaxSize:    l.Rotation.MaxSize,
			MaxBackups: l.Rotation.MaxBackups,
			MaxAge:     l.Rotation.MaxAge,
			Compress:   l.Rotation.Compress,
		})
	}
	if len(writers) == 0 {
		writers = append(writers, io.Discard)
	}
	l.writer = io.MultiWriter(writers...)

	return l
}

func (l *Logger) log(level Level, msg string, args ...any) {
	if level < l.Level {
		return
	}

	prefix := fmt.Sprintf("[%s] %-5s", time.Now().Format(l.TimeFormat), level)
	if l.Name != "" {
		prefix = fmt.Sprintf("%s [%s]", prefix, l.Name)
	}

	formatted := fmt.Sprintf(msg, args...)
	if l.NoColor {
		fmt.Fprintf(l.writer, "%s %s\n", prefix, formatted)
	} else {
		fmt.Fprintf(l.writer, "%s%s %s\033[0m\n", Color(level), prefix, formatted)
	}
}

func (l *Logger) Debug(msg string, args ...any) {
	l.log(Debug, msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.log(Info, msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.log(Warn, msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.log(Error, msg, args...)
}

// Named derives a child logger sharing the same writer.
func (l *Logger) Named(name string) *Logger {
	return &Logger{
		writer: l.writer,

		Name:  fmt.Sprintf("%s/%s", l.Name, name),
		Level: l.Level,

		TimeFormat: l.TimeFormat,
		File:       l.File,
		NoColor:    l.NoColor,
		Rotation:   l.Rotation,
	}
}
