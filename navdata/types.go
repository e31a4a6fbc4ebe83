// SPDX-License-Identifier: MIT

package navdata

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Sentinel errors.
var (
	// ErrSourceMissing marks a required source file that does not exist.
	// Errors carrying it also match fs.ErrNotExist.
	ErrSourceMissing = errors.New("navdata: source missing")

	// ErrMalformed marks an unparsable plain graph file.
	ErrMalformed = errors.New("navdata: malformed input")

	// ErrLineTooLong marks an input line longer than MaxLineLength.
	ErrLineTooLong = errors.New("navdata: line too long")
)

// Source labels used in Diagnostics.
const (
	SourcePoints     = "points"
	SourceSegments   = "segments"
	SourceFacilities = "facilities"
)

// Kind classifies a Diagnostic.
type Kind int

const (
	// KindMalformed: the line could not be parsed.
	KindMalformed Kind = iota
	// KindDuplicate: the point or segment is already present.
	KindDuplicate
	// KindUnknownEndpoint: a segment references an undeclared point id.
	KindUnknownEndpoint
	// KindInvalid: the record parsed but was rejected (self link, bad cost, bad coordinate).
	KindInvalid
	// KindUnknownPoint: a facility references an undeclared point name.
	KindUnknownPoint
	// KindOrphan: a facility point appears before any facility code.
	KindOrphan
)

var kindNames = [...]string{
	KindMalformed:       "malformed",
	KindDuplicate:       "duplicate",
	KindUnknownEndpoint: "unknown-endpoint",
	KindInvalid:         "invalid",
	KindUnknownPoint:    "unknown-point",
	KindOrphan:          "orphan",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Diagnostic describes one skipped input line.
type Diagnostic struct {
	Source string // SourcePoints, SourceSegments or SourceFacilities
	Line   int    // 1-based
	Kind   Kind
	Text   string // the raw line, trimmed
	Err    error  // underlying cause, may be nil
}

func (d Diagnostic) String() string {
	s := fmt.Sprintf("%s:%d: %s: %q", d.Source, d.Line, d.Kind, d.Text)
	if d.Err != nil {
		s += ": " + d.Err.Error()
	}

	return s
}

// Report summarizes a load.
type Report struct {
	Points      int // points inserted
	Segments    int // segments inserted
	Facilities  int // facilities registered
	Duplicates  int // reverse duplicates of an existing segment, skipped silently
	Diagnostics []Diagnostic
}

func (r *Report) add(source string, line int, kind Kind, text string, err error) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{Source: source, Line: line, Kind: kind, Text: text, Err: err})
}

// Count returns the number of diagnostics of the given kind.
func (r *Report) Count(kind Kind) int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.Kind == kind {
			n++
		}
	}

	return n
}

// Sources names the input files of a navigation load.
// Facilities is optional; leave it empty to skip.
type Sources struct {
	Points     string
	Segments   string
	Facilities string
}

// Options configures Load.
type Options struct {
	Logger *slog.Logger
}

// Option is a functional option for Load.
type Option func(*Options)

// WithLogger sets the logger used for the load summary and per-line diagnostics.
// A nil logger silences output (the default).
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = slog.New(slog.NewTextHandler(io.Discard, nil))
		}
		o.Logger = l
	}
}
