// SPDX-License-Identifier: MIT

// Command airnav loads a navigation network and answers queries from the
// command line or over HTTP.
//
//	airnav serve   [flags]
//	airnav route   [flags] FROM TO
//	airnav reach   [flags] NAME
//	airnav closest [flags] X Y
//	airnav stats   [flags]
//
// Input is either -graph FILE (plain graph format) or -points FILE
// -segments FILE [-facilities FILE]. Every flag also has an AIRNAV_*
// environment variable and may be set in a .env file.
//
// Exit status is 0 on success, 1 on usage or load errors and 2 when a query
// finds nothing (unknown name, no route).
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/airnav/airspace"
	"github.com/katalvlaran/airnav/astar"
	"github.com/katalvlaran/airnav/config"
	"github.com/katalvlaran/airnav/core"
	"github.com/katalvlaran/airnav/export"
	"github.com/katalvlaran/airnav/metric"
	"github.com/katalvlaran/airnav/navdata"
	"github.com/katalvlaran/airnav/server"
)

const (
	exitOK       = 0
	exitFailure  = 1
	exitNotFound = 2
)

const usage = `usage: airnav <serve|route|reach|closest|stats> [flags] [args] [flags]

  serve                 run the HTTP query API on -addr
  route FROM TO         cheapest route between two points
  reach NAME            every point reachable from NAME
  closest X Y           point nearest to (X, Y); X is longitude for geodesic data
  stats                 graph counters

input:  -graph FILE [-space planar|geodesic]
   or:  -points FILE -segments FILE [-facilities FILE]
output: -format text|json|geojson (-geojson), -log-level, -log-format

Flags may come before or after the arguments; negative numbers are arguments.
`

var errNotFound = errors.New("not found")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one command and returns the process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return exitFailure
	}
	cmd, rest := args[0], args[1:]
	if cmd == "help" || cmd == "-h" || cmd == "--help" {
		fmt.Fprint(stdout, usage)
		return exitOK
	}

	cfg, err := config.Load(rest)
	if err != nil {
		fmt.Fprintf(stderr, "airnav: %v\n\n%s", err, usage)
		return exitFailure
	}
	logger := cfg.Logger(stderr)

	var want int
	switch cmd {
	case "serve", "stats":
		want = 0
	case "reach":
		want = 1
	case "route", "closest":
		want = 2
	default:
		fmt.Fprintf(stderr, "airnav: unknown command %q\n\n%s", cmd, usage)
		return exitFailure
	}
	if len(cfg.Args) != want {
		fmt.Fprintf(stderr, "airnav: %s takes %d argument(s), got %d\n\n%s", cmd, want, len(cfg.Args), usage)
		return exitFailure
	}

	air, err := open(cfg, logger)
	if err != nil {
		fmt.Fprintf(stderr, "airnav: %v\n", err)
		return exitFailure
	}

	switch cmd {
	case "serve":
		s := server.New(air, server.WithLogger(logger), server.WithAllowedOrigins(cfg.CORSOrigins...))
		err = s.Run(ctx, cfg.Addr)
	case "stats":
		err = emit(stdout, cfg.Format, air.Stats(), func() string { return formatStats(air.Stats()) })
	case "reach":
		err = reach(stdout, cfg, air, cfg.Args[0])
	case "route":
		err = routeCmd(ctx, stdout, cfg, air, cfg.Args[0], cfg.Args[1])
	case "closest":
		err = closest(stdout, cfg, air, cfg.Args[0], cfg.Args[1])
	}

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errNotFound):
		fmt.Fprintf(stderr, "airnav: %v\n", err)
		return exitNotFound
	default:
		fmt.Fprintf(stderr, "airnav: %v\n", err)
		return exitFailure
	}
}

// open loads the configured input into an Airspace.
func open(cfg *config.Config, logger *slog.Logger) (*airspace.Airspace, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts := []airspace.Option{airspace.WithLogger(logger)}
	if cfg.MetricCosts {
		opts = append(opts, airspace.WithMetricCosts())
	}

	if cfg.GraphFile != "" {
		g, err := navdata.LoadGraphFile(cfg.GraphFile, core.WithSpace(cfg.Space))
		if err != nil {
			return nil, err
		}

		return airspace.New(g, opts...), nil
	}

	air, rep, err := airspace.Load(cfg.Sources(), opts...)
	if err != nil {
		return nil, err
	}
	if len(rep.Diagnostics) > 0 {
		logger.Warn("airnav: input lines skipped", slog.Int("count", len(rep.Diagnostics)))
	}

	return air, nil
}

func reach(w io.Writer, cfg *config.Config, air *airspace.Airspace, name string) error {
	nodes := air.ReachableFrom(name)
	if nodes == nil {
		return fmt.Errorf("%w: unknown point %q", errNotFound, name)
	}
	if cfg.Format == config.FormatGeoJSON {
		return writeJSON(w, export.Nodes(nodes))
	}
	names := make([]string, len(nodes))
	for i, n := range nodes {
		names[i] = n.Name
	}

	return emit(w, cfg.Format, names, func() string { return strings.Join(names, "\n") })
}

func routeCmd(ctx context.Context, w io.Writer, cfg *config.Config, air *airspace.Airspace, from, to string) error {
	p, err := air.Route(ctx, from, to)
	if errors.Is(err, astar.ErrNoPath) {
		return fmt.Errorf("%w: %w", errNotFound, err)
	}
	if err != nil {
		return err
	}
	switch cfg.Format {
	case config.FormatGeoJSON:
		return writeJSON(w, export.Path(p))
	case config.FormatJSON:
		return writeJSON(w, struct {
			Nodes        []string  `json:"nodes"`
			Cost         float64   `json:"cost"`
			SegmentCosts []float64 `json:"segmentCosts"`
		}{p.Names(), p.Cost(), p.SegmentCosts()})
	default:
		_, err := fmt.Fprintln(w, p)
		return err
	}
}

func closest(w io.Writer, cfg *config.Config, air *airspace.Airspace, xs, ys string) error {
	x, errX := strconv.ParseFloat(xs, 64)
	y, errY := strconv.ParseFloat(ys, 64)
	if errX != nil || errY != nil {
		return fmt.Errorf("closest: X and Y must be numbers, got %q %q", xs, ys)
	}
	p := orb.Point{x, y}
	if space := air.Graph().Space(); !metric.Valid(space, p) {
		return fmt.Errorf("closest: (%s, %s) is not a valid %s coordinate", xs, ys, space)
	}
	n, ok := air.ClosestTo(p)
	if !ok {
		return fmt.Errorf("%w: graph is empty", errNotFound)
	}
	if cfg.Format == config.FormatGeoJSON {
		return writeJSON(w, export.Node(n))
	}

	return emit(w, cfg.Format, map[string]any{"id": n.ID, "name": n.Name}, func() string { return n.Name })
}

// emit writes v as JSON for -format json, and text() otherwise.
func emit(w io.Writer, format string, v any, text func() string) error {
	if format == config.FormatJSON {
		return writeJSON(w, v)
	}
	_, err := fmt.Fprintln(w, text())

	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func formatStats(s core.GraphStats) string {
	return fmt.Sprintf("space=%s directed=%t nodes=%d segments=%d authoritative=%d facilities=%d",
		s.Space, s.Directed, s.NodeCount, s.SegmentCount, s.Authoritative, s.FacilityCount)
}
