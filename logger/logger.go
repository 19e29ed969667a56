package logger

import (
	"io"
	"log/slog"
	"os"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type Options struct {
	Buffer io.Writer
	Level  Level
	Type   Type
}

var (
	DefaultLogger = New(Options{os.Stderr, DefaultLevel, TypeText})

	// Discard drops every record. Useful for tests and for callers that
	// tokenize untrusted input in hot paths.
	Discard = New(Options{io.Discard, ErrorLevel, TypeText})
)

type logger struct {
	buffer io.Writer
	*slog.Logger
}

func New(opts Options) Logger {
	if opts.Buffer == nil {
		opts.Buffer = os.Stderr
	}
	var handler slog.Handler
	switch opts.Type {
	case TypeJSON:
		handler = slog.NewJSONHandler(opts.Buffer, &slog.HandlerOptions{
			Level: levels[opts.Level],
		})
	case TypeText:
		fallthrough
	default:
		handler = slog.NewTextHandler(opts.Buffer, &slog.HandlerOptions{
			Level: levels[opts.Level],
		})
	}
	return &logger{
		buffer: opts.Buffer,
		Logger: slog.New(handler),
	}
}

// OrDefault returns l, or DefaultLogger when l is nil.
func OrDefault(l Logger) Logger {
	if l == nil {
		return DefaultLogger
	}
	return l
}
