// SPDX-License-Identifier: MIT

package navdata

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/katalvlaran/airnav/core"
	"github.com/katalvlaran/airnav/metric"
)

// Load builds a fresh geodesic, symmetric graph from src.
//
// Points and Segments are required; Facilities is read when non-empty.
// A missing file returns ErrSourceMissing; any other open or read failure is
// returned wrapped. Line-level problems never fail the load: they are
// collected in the Report.
func Load(src Sources, opts ...Option) (*core.Graph, *Report, error) {
	o := Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}

	g := core.NewGraph(core.WithSpace(metric.Geodesic))
	rep := &Report{}

	steps := []struct {
		label    string
		path     string
		required bool
		read     func(*core.Graph, io.Reader, *Report) error
	}{
		{SourcePoints, src.Points, true, ReadPoints},
		{SourceSegments, src.Segments, true, ReadSegments},
		{SourceFacilities, src.Facilities, false, ReadFacilities},
	}
	for _, s := range steps {
		if s.path == "" {
			if s.required {
				return nil, nil, fmt.Errorf("%w: %s: no path given", ErrSourceMissing, s.label)
			}
			continue
		}
		if err := readFile(s.path, s.label, func(r io.Reader) error { return s.read(g, r, rep) }); err != nil {
			return nil, nil, err
		}
	}

	for _, d := range rep.Diagnostics {
		o.Logger.Debug("navdata: skipped line",
			slog.String("source", d.Source),
			slog.Int("line", d.Line),
			slog.String("kind", d.Kind.String()),
			slog.String("text", d.Text),
		)
	}
	o.Logger.Info("navdata: loaded",
		slog.Int("points", rep.Points),
		slog.Int("segments", rep.Segments),
		slog.Int("facilities", rep.Facilities),
		slog.Int("duplicates", rep.Duplicates),
		slog.Int("diagnostics", len(rep.Diagnostics)),
	)

	return g, rep, nil
}

// readFile opens path and hands it to read, mapping a missing file to
// ErrSourceMissing.
func readFile(path, label string, read func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s: %w", ErrSourceMissing, label, err)
		}

		return fmt.Errorf("navdata: open %s: %w", label, err)
	}
	defer f.Close()

	if err := read(f); err != nil {
		return fmt.Errorf("navdata: read %s %q: %w", label, path, err)
	}

	return nil
}
