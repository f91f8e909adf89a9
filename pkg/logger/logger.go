// Package logger owns the process-wide zerolog instance. Call Init once
// during startup, then Get for the root logger or With for a child tagged
// with a component name.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the logger built by Init.
type Options struct {
	// Level names the minimum level to emit: trace, debug, info, warn or
	// error. Anything else falls back to info.
	Level string
	// Service, when set, is stamped on every line as the "service" field.
	Service string
	// Pretty switches from JSON to colourised console output. Leave false
	// outside local development.
	Pretty bool
	// Output receives the log stream. Nil means os.Stdout.
	Output io.Writer
}

var (
	root  zerolog.Logger
	ready bool
	once  sync.Once
)

// Init builds the root logger from opts and returns it. Subsequent calls
// return the logger built by the first call unchanged.
func Init(opts Options) zerolog.Logger {
	once.Do(func() {
		root = build(opts)
		ready = true
	})
	return root
}

func build(opts Options) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var out io.Writer = os.Stdout
	if opts.Output != nil {
		out = opts.Output
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	level := levelFromName(opts.Level)
	zerolog.SetGlobalLevel(level)

	ctx := zerolog.New(out).Level(level).With().Timestamp().Caller()
	if opts.Service != "" {
		ctx = ctx.Str("service", opts.Service)
	}
	return ctx.Logger()
}

// Get returns the root logger. It panics when Init has not run, which
// points at a wiring bug rather than a runtime condition worth handling.
func Get() zerolog.Logger {
	if !ready {
		panic("logger: Get before Init")
	}
	return root
}

// With derives a child logger carrying a "component" field, so the lines of
// one subsystem can be filtered out of the combined stream.
func With(component string) zerolog.Logger {
	return Get().With().Str("component", component).Logger()
}

// Reset discards the root logger so the next Init rebuilds it. Test helper.
func Reset() {
	once = sync.Once{}
	root = zerolog.Logger{}
	ready = false
}

func levelFromName(name string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
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
