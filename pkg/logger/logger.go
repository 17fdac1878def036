// Package logger provides the process-wide zerolog logger.
//
// Initialise once at startup with Init, then retrieve anywhere with Get.
// Components still take the logger by constructor injection; the singleton
// only exists so entrypoints have one place to configure output.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options controls logger behaviour at initialisation time.
type Options struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Defaults to "info" when empty or unrecognised.
	Level string
	// Pretty enables human-friendly console output. The CLIs turn this on;
	// leave it false to emit pure JSON.
	Pretty bool
	// Output is the writer logs are sent to. Defaults to os.Stderr.
	Output io.Writer
}

var (
	mu       sync.Mutex
	instance = zerolog.Nop()
)

// Init configures the singleton logger and returns it. Calling Init again
// reconfigures it, which tests rely on to capture output.
func Init(opts Options) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	lvl := parseLevel(opts.Level)

	mu.Lock()
	defer mu.Unlock()
	instance = zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Logger()
	return instance
}

// Get returns the singleton logger. Before Init it is a no-op logger, so
// library code never has to guard against an unconfigured process.
func Get() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return instance
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
