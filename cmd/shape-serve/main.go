// Command shape-serve runs a minimal HTTP/1.1 static file server over raw
// TCP: one request per connection, files served from a document root,
// Connection: close on every response.
//
// Usage:
//
//	shape-serve [-addr host:port] [-root dir] [-config file.yaml]
//	            [-jail] [-trace] [-pretty]
//
// Flags override values from the config file. The process exits non-zero
// only if the initial bind fails; otherwise it runs until killed.
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"

	"github.com/shapestone/shape-serve/internal/config"
	"github.com/shapestone/shape-serve/pkg/server"
)

func main() {
	var (
		addr       = flag.String("addr", "", "TCP listen address (overrides config)")
		root       = flag.String("root", "", "document root directory (overrides config)")
		configPath = flag.String("config", "", "path to YAML config file")
		jail       = flag.Bool("jail", false, "contain file lookups under the document root")
		trace      = flag.Bool("trace", false, "log each exchange as an AST structure")
		pretty     = flag.Bool("pretty", false, "human-readable console log output")
		debug      = flag.Bool("debug", false, "enable debug-level logging")
	)
	flag.Parse()

	// Trace output is debug-level, so -trace implies -debug.
	logger := newLogger(*pretty, *debug || *trace)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Fatal().Err(err).Str("path", *configPath).Msg("config load failed")
		}
		cfg = loaded
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *root != "" {
		cfg.Root = *root
	}
	if *jail {
		cfg.Jail = true
	}
	if *trace {
		cfg.Trace = true
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	logger.Info().Str("addr", cfg.Addr).Str("root", cfg.Root).Msg("starting shape-serve")

	srv := server.New(cfg, logger)
	if err := srv.ListenAndServe(); err != nil {
		// Bind failure is the only fatal error class; everything else is
		// handled per connection inside the server.
		logger.Fatal().Err(err).Msg("server failed")
	}
}

func newLogger(pretty, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	if pretty {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).
		Level(level).
		With().Timestamp().Logger()
}
