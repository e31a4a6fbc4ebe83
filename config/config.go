// SPDX-License-Identifier: MIT

// Package config assembles process configuration for the airnav binary.
//
// Sources, later overriding earlier:
//
//	defaults
//	.env file      (path from AIRNAV_ENV_FILE, default ".env"; optional)
//	environment    AIRNAV_* variables
//	flags          -addr, -points, ...
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/airnav/metric"
	"github.com/katalvlaran/airnav/navdata"
)

// Sentinel errors.
var (
	// ErrInvalid marks a configuration value that failed to parse.
	ErrInvalid = errors.New("config: invalid value")

	// ErrNoInput means neither a graph file nor navigation files were given.
	ErrNoInput = errors.New("config: no input data configured")
)

// Output formats for CLI commands.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatGeoJSON = "geojson"
)

// Environment variable names.
const (
	EnvFile        = "AIRNAV_ENV_FILE"
	EnvAddr        = "AIRNAV_ADDR"
	EnvPoints      = "AIRNAV_POINTS"
	EnvSegments    = "AIRNAV_SEGMENTS"
	EnvFacilities  = "AIRNAV_FACILITIES"
	EnvGraphFile   = "AIRNAV_GRAPH_FILE"
	EnvSpace       = "AIRNAV_SPACE"
	EnvMetricCosts = "AIRNAV_METRIC_COSTS"
	EnvLogLevel    = "AIRNAV_LOG_LEVEL"
	EnvLogFormat   = "AIRNAV_LOG_FORMAT"
	EnvCORSOrigins = "AIRNAV_CORS_ORIGINS"
	EnvFormat      = "AIRNAV_FORMAT"
)

// Config is the resolved process configuration.
type Config struct {
	Addr        string       // HTTP listen address
	Points      string       // navigation points file
	Segments    string       // navigation segments file
	Facilities  string       // facilities file, optional
	GraphFile   string       // plain graph file; takes precedence over navigation files
	Space       metric.Space // coordinate space for GraphFile
	MetricCosts bool         // route by metric distance, ignoring data costs
	LogLevel    slog.Level
	LogFormat   string   // "text" or "json"
	CORSOrigins []string // empty allows every origin
	Format      string   // CLI output: text, json or geojson

	// Args holds positional arguments left after flag parsing.
	Args []string
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Addr:      ":8080",
		Space:     metric.Planar,
		LogLevel:  slog.LevelInfo,
		LogFormat: FormatText,
		Format:    FormatText,
	}
}

// Load resolves configuration from the .env file, the environment and args.
func Load(args []string) (*Config, error) {
	cfg := Default()

	envPath := ".env"
	if p, ok := os.LookupEnv(EnvFile); ok && p != "" {
		envPath = p
	}
	fileVals, err := godotenv.Read(envPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: read %s: %w", envPath, err)
		}
		fileVals = map[string]string{}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVals[key]

		return v, ok
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}
	if err := cfg.applyFlags(args); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	for key, dst := range map[string]*string{
		EnvAddr:       &c.Addr,
		EnvPoints:     &c.Points,
		EnvSegments:   &c.Segments,
		EnvFacilities: &c.Facilities,
		EnvGraphFile:  &c.GraphFile,
	} {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}
	if v, ok := lookup(EnvSpace); ok {
		if err := c.setSpace(v); err != nil {
			return err
		}
	}
	if v, ok := lookup(EnvMetricCosts); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvMetricCosts, v)
		}
		c.MetricCosts = b
	}
	if v, ok := lookup(EnvLogLevel); ok {
		if err := c.setLogLevel(v); err != nil {
			return err
		}
	}
	if v, ok := lookup(EnvLogFormat); ok {
		if err := c.setLogFormat(v); err != nil {
			return err
		}
	}
	if v, ok := lookup(EnvCORSOrigins); ok {
		c.CORSOrigins = splitList(v)
	}
	if v, ok := lookup(EnvFormat); ok {
		if err := c.setFormat(v); err != nil {
			return err
		}
	}

	return nil
}

func (c *Config) applyFlags(args []string) error {
	fset := flag.NewFlagSet("airnav", flag.ContinueOnError)
	fset.SetOutput(io.Discard)

	fset.StringVar(&c.Addr, "addr", c.Addr, "HTTP listen address")
	fset.StringVar(&c.Points, "points", c.Points, "navigation points file (id name lat lon)")
	fset.StringVar(&c.Segments, "segments", c.Segments, "navigation segments file (from to cost)")
	fset.StringVar(&c.Facilities, "facilities", c.Facilities, "facilities file")
	fset.StringVar(&c.GraphFile, "graph", c.GraphFile, "plain graph file")
	fset.BoolVar(&c.MetricCosts, "metric-costs", c.MetricCosts, "ignore data costs and route by distance")
	fset.Func("space", "coordinate space of -graph: planar or geodesic", c.setSpace)
	fset.Func("log-level", "debug, info, warn or error", c.setLogLevel)
	fset.Func("log-format", "text or json", c.setLogFormat)
	fset.Func("cors", "comma-separated allowed origins", func(v string) error {
		c.CORSOrigins = splitList(v)
		return nil
	})
	fset.Func("format", "output format: text, json or geojson", c.setFormat)
	geojson := fset.Bool("geojson", false, "shorthand for -format geojson")

	// flag stops at the first positional argument; keep parsing so flags
	// may also follow positionals ("route A B -geojson").
	var positional []string
	rest := args
	for len(rest) > 0 {
		if rest[0] == "--" {
			positional = append(positional, rest[1:]...)
			break
		}
		if !isFlag(rest[0]) {
			positional = append(positional, rest[0])
			rest = rest[1:]
			continue
		}
		// flag would take a negative number for an undefined flag
		chunk, tail := rest, []string(nil)
		for i := 1; i < len(rest); i++ {
			if isNegativeNumber(rest[i]) {
				chunk, tail = rest[:i], rest[i:]
				break
			}
		}
		if err := fset.Parse(chunk); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		left := fset.Args()
		if n := len(chunk) - len(left); n > 0 && chunk[n-1] == "--" {
			positional = append(append(positional, left...), tail...)
			break
		}
		rest = append(append([]string(nil), left...), tail...)
	}
	if *geojson {
		c.Format = FormatGeoJSON
	}
	c.Args = positional

	return nil
}

// isFlag reports whether arg looks like a flag. Negative numbers are
// positionals so coordinates such as "-3.57" need no "--".
func isFlag(arg string) bool {
	return len(arg) > 1 && arg[0] == '-' && !isNegativeNumber(arg)
}

func isNegativeNumber(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	_, err := strconv.ParseFloat(arg, 64)

	return err == nil
}

func (c *Config) setSpace(v string) error {
	s, err := metric.ParseSpace(strings.ToLower(strings.TrimSpace(v)))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	c.Space = s

	return nil
}

func (c *Config) setLogLevel(v string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalid, v)
	}
	c.LogLevel = lvl

	return nil
}

func (c *Config) setLogFormat(v string) error {
	switch v = strings.ToLower(strings.TrimSpace(v)); v {
	case FormatText, FormatJSON:
		c.LogFormat = v
		return nil
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, v)
	}
}

func (c *Config) setFormat(v string) error {
	switch v = strings.ToLower(strings.TrimSpace(v)); v {
	case FormatText, FormatJSON, FormatGeoJSON:
		c.Format = v
		return nil
	default:
		return fmt.Errorf("%w: output format %q", ErrInvalid, v)
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

// Validate checks that some input data is configured.
func (c *Config) Validate() error {
	if c.GraphFile != "" {
		return nil
	}
	if c.Points == "" || c.Segments == "" {
		return fmt.Errorf("%w: set -graph, or -points and -segments", ErrNoInput)
	}

	return nil
}

// Sources returns the navigation file set.
func (c *Config) Sources() navdata.Sources {
	return navdata.Sources{Points: c.Points, Segments: c.Segments, Facilities: c.Facilities}
}

// Logger builds a slog logger writing to w in the configured format and level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
