// Package logging holds the process-wide structured logger.
//
// Library code logs through L(); binaries call Set(New(...)) once at
// startup. The default logger discards everything below warn level so
// embedding applications stay quiet unless they opt in.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options configures a logger.
type Options struct {
	// Level is a zerolog level name (trace, debug, info, warn, error).
	// Empty means info.
	Level string
	// HumanReadable switches to zerolog's console writer.
	HumanReadable bool
	// Writer receives output. Defaults to stderr.
	Writer io.Writer
}

var (
	mu      sync.RWMutex
	current = zerolog.New(os.Stderr).Level(zerolog.WarnLevel).With().Timestamp().Logger()
)

// New builds a zerolog logger from opts.
func New(opts Options) (zerolog.Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return zerolog.Nop(), err
		}
		level = parsed
	}

	output := writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger(), nil
}

// Set replaces the process logger.
func Set(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	current = l
}

// L returns the process logger.
func L() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := current
	return &l
}
