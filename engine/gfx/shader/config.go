package shader

import (
	"log/slog"
	"os"
	"strconv"
	"sync"
)

// Config controls diagnostics and link strictness of a Program.
type Config struct {
	// VerboseDiagnostics enables info log queries and diagnostic output.
	VerboseDiagnostics bool
	// StrictLink makes Link report a failed link status as ErrLink.
	// Off by default: link status is logged, never returned.
	StrictLink bool
	Logger     *slog.Logger
}

var (
	debugOnce sync.Once
	debugEnv  bool
)

// DefaultConfig returns the configuration used when no options are given.
// VerboseDiagnostics comes from GLHELPER_DEBUG, read once per process.
func DefaultConfig() Config {
	debugOnce.Do(func() {
		debugEnv, _ = strconv.ParseBool(os.Getenv("GLHELPER_DEBUG"))
	})
	return Config{VerboseDiagnostics: debugEnv}
}

// Option configures a Program or one of the raw-handle helpers.
type Option func(*Config)

func WithVerboseDiagnostics(on bool) Option {
	return func(c *Config) { c.VerboseDiagnostics = on }
}

func WithStrictLink(on bool) Option {
	return func(c *Config) { c.StrictLink = on }
}

// WithLogger sets the destination for diagnostics. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

func resolve(opts []Option) Config {
	cfg := DefaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return cfg
}
