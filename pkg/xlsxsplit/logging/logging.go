// Package logging builds the zerolog logger used by a run.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// TimeFormat is the timestamp layout of console log lines.
const TimeFormat = "2006-01-02 15:04:05"

// Options configures a logger.
type Options struct {
	// Level is a zerolog level name; empty means info.
	Level string
	// File, if set, additionally receives JSON log lines (appended).
	File string
	// NoColor disables ANSI colors on the console.
	NoColor bool
	// Console is the console destination; nil means stdout.
	Console io.Writer
}

// New returns a logger writing colored lines to the console and, optionally, JSON to a file.
// The returned closer releases the log file and must be called when the run ends.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	level := zerolog.InfoLevel
	if opts.Level != "" {
		l, err := zerolog.ParseLevel(opts.Level)
		if err != nil {
			return zerolog.Nop(), nopCloser{}, err
		}
		level = l
	}

	out := opts.Console
	if out == nil {
		out = os.Stdout
	}
	console := zerolog.ConsoleWriter{Out: out, NoColor: opts.NoColor, TimeFormat: TimeFormat}

	var (
		w      io.Writer = console
		closer io.Closer = nopCloser{}
	)
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return zerolog.Nop(), nopCloser{}, err
		}
		w = zerolog.MultiLevelWriter(console, f)
		closer = f
	}

	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
