// SPDX-License-Identifier: MIT

package navdata

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/airnav/core"
	"github.com/katalvlaran/airnav/metric"
)

// ReadGraph parses a plain graph file into a graph with one-way links.
// The graph is planar unless opts select another space; opts are applied
// after the one-way default.
//
// Unlike navigation sources the format is strict: any malformed line, an
// unknown link endpoint or a truncated file returns ErrMalformed with the
// line number. Links repeated in the file are ignored.
func ReadGraph(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	g := core.NewGraph(append([]core.GraphOption{core.WithDirected(true)}, opts...)...)
	pos := 0
	next := func() (int, []string, error) {
		if pos >= len(lines) {
			return 0, nil, fmt.Errorf("%w: unexpected end of file", ErrMalformed)
		}
		l := lines[pos]
		pos++

		return l.no, l.fields, nil
	}
	count := func() (int, error) {
		no, f, err := next()
		if err != nil {
			return 0, err
		}
		if len(f) != 1 {
			return 0, fmt.Errorf("%w: line %d: want a count", ErrMalformed, no)
		}
		n, err := strconv.Atoi(f[0])
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: line %d: bad count %q", ErrMalformed, no, f[0])
		}

		return n, nil
	}

	nodes, err := count()
	if err != nil {
		return nil, err
	}
	for i := 0; i < nodes; i++ {
		no, f, err := next()
		if err != nil {
			return nil, err
		}
		if len(f) != 3 {
			return nil, fmt.Errorf("%w: line %d: want \"name x y\"", ErrMalformed, no)
		}
		x, errX := strconv.ParseFloat(f[1], 64)
		y, errY := strconv.ParseFloat(f[2], 64)
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("%w: line %d: bad coordinate", ErrMalformed, no)
		}
		if err := g.Insert(core.NewNode(int64(i+1), f[0], metric.XY(x, y))); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, no, err)
		}
	}

	links, err := count()
	if err != nil {
		return nil, err
	}
	for i := 0; i < links; i++ {
		no, f, err := next()
		if err != nil {
			return nil, err
		}
		if len(f) != 2 {
			return nil, fmt.Errorf("%w: line %d: want \"from to\"", ErrMalformed, no)
		}
		a, okA := g.FindByName(f[0])
		b, okB := g.FindByName(f[1])
		if !okA || !okB {
			return nil, fmt.Errorf("%w: line %d: unknown endpoint", ErrMalformed, no)
		}
		if _, err := g.Link(a.ID, b.ID); err != nil && !errors.Is(err, core.ErrAlreadyConnected) {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, no, err)
		}
	}

	return g, nil
}

// WriteGraph writes g in plain graph format: every node in insertion order,
// then every adjacency entry. A symmetric graph therefore writes each link
// in both directions and reloads with identical adjacency.
func WriteGraph(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	nodes := g.Nodes()

	fmt.Fprintf(bw, "%d\n", len(nodes))
	for _, n := range nodes {
		fmt.Fprintf(bw, "%s %s %s\n", n.Name, formatFloat(n.Coord.X()), formatFloat(n.Coord.Y()))
	}

	var links [][2]string
	for _, n := range nodes {
		for _, nbr := range g.Neighbors(n.ID) {
			links = append(links, [2]string{n.Name, nbr.Name})
		}
	}
	fmt.Fprintf(bw, "%d\n", len(links))
	for _, l := range links {
		fmt.Fprintf(bw, "%s %s\n", l[0], l[1])
	}

	return bw.Flush()
}

// LoadGraphFile reads a plain graph file from disk.
func LoadGraphFile(path string, opts ...core.GraphOption) (*core.Graph, error) {
	var g *core.Graph
	err := readFile(path, "graph", func(r io.Reader) error {
		var err error
		g, err = ReadGraph(r, opts...)

		return err
	})
	if err != nil {
		return nil, err
	}

	return g, nil
}

// SaveGraphFile writes g to path, replacing any existing file.
func SaveGraphFile(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("navdata: create %q: %w", path, err)
	}
	if err := WriteGraph(f, g); err != nil {
		f.Close()
		return fmt.Errorf("navdata: write %q: %w", path, err)
	}

	return f.Close()
}

type numberedLine struct {
	no     int
	fields []string
}

func readLines(r io.Reader) ([]numberedLine, error) {
	var (
		out  []numberedLine
		long error
	)
	err := eachLine(r, func(line int, _ string) {
		if long == nil {
			long = fmt.Errorf("%w: line %d: %w", ErrMalformed, line, ErrLineTooLong)
		}
	}, func(line int, _ string, f []string) {
		out = append(out, numberedLine{no: line, fields: f})
	})
	if err != nil {
		return nil, err
	}

	return out, long
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

