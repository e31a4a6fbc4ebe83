// SPDX-License-Identifier: MIT

package navdata

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/airnav/core"
	"github.com/katalvlaran/airnav/metric"
)

// MaxLineLength is the longest input line, in bytes, the readers accept.
// Longer lines are skipped as a whole and never stop the read.
const MaxLineLength = 64 << 10

// diagHead is how much of an overlong line a Diagnostic keeps.
const diagHead = 40

// eachLine calls fn for every non-blank, non-comment line with its 1-based
// number and whitespace-split fields. Lines over MaxLineLength go to
// tooLong with their first bytes instead.
func eachLine(r io.Reader, tooLong func(line int, head string), fn func(line int, text string, fields []string)) error {
	br := bufio.NewReader(r)
	var (
		buf  []byte
		size int
		line int
	)
	flush := func() {
		line++
		if size > MaxLineLength {
			tooLong(line, string(buf[:min(len(buf), diagHead)]))
		} else if text := strings.TrimSpace(string(buf)); text != "" && !strings.HasPrefix(text, "#") {
			fn(line, text, strings.Fields(text))
		}
		buf, size = buf[:0], 0
	}

	for {
		chunk, more, err := br.ReadLine()
		if errors.Is(err, io.EOF) {
			if size > 0 {
				flush()
			}
			return nil
		}
		if err != nil {
			return err
		}
		size += len(chunk)
		if size <= MaxLineLength {
			buf = append(buf, chunk...)
		}
		if !more {
			flush()
		}
	}
}

// skipLong returns a tooLong callback recording a KindMalformed diagnostic.
func skipLong(rep *Report, source string) func(int, string) {
	return func(line int, head string) {
		rep.add(source, line, KindMalformed, head, fmt.Errorf("%w: over %d bytes", ErrLineTooLong, MaxLineLength))
	}
}

// ReadPoints inserts one node per "id name lat lon" line into g.
// Extra trailing fields are ignored.
func ReadPoints(g *core.Graph, r io.Reader, rep *Report) error {
	return eachLine(r, skipLong(rep, SourcePoints), func(line int, text string, f []string) {
		if len(f) < 4 {
			rep.add(SourcePoints, line, KindMalformed, text, fmt.Errorf("want 4 fields, got %d", len(f)))
			return
		}
		id, err := strconv.ParseInt(f[0], 10, 64)
		if err != nil {
			rep.add(SourcePoints, line, KindMalformed, text, err)
			return
		}
		lat, err := strconv.ParseFloat(f[2], 64)
		if err != nil {
			rep.add(SourcePoints, line, KindMalformed, text, err)
			return
		}
		lon, err := strconv.ParseFloat(f[3], 64)
		if err != nil {
			rep.add(SourcePoints, line, KindMalformed, text, err)
			return
		}

		err = g.Insert(core.NewNode(id, f[1], metric.LatLon(lat, lon)))
		switch {
		case err == nil:
			rep.Points++
		case errors.Is(err, core.ErrDuplicateName), errors.Is(err, core.ErrDuplicateID):
			rep.add(SourcePoints, line, KindDuplicate, text, err)
		default:
			rep.add(SourcePoints, line, KindInvalid, text, err)
		}
	})
}

// ReadSegments links one "originId destinationId cost" line at a time.
//
// Segments referencing an undeclared id are dropped without creating any
// adjacency. In a symmetric graph the reverse of an existing segment only
// bumps rep.Duplicates.
func ReadSegments(g *core.Graph, r io.Reader, rep *Report) error {
	return eachLine(r, skipLong(rep, SourceSegments), func(line int, text string, f []string) {
		if len(f) < 3 {
			rep.add(SourceSegments, line, KindMalformed, text, fmt.Errorf("want 3 fields, got %d", len(f)))
			return
		}
		from, err := strconv.ParseInt(f[0], 10, 64)
		if err != nil {
			rep.add(SourceSegments, line, KindMalformed, text, err)
			return
		}
		to, err := strconv.ParseInt(f[1], 10, 64)
		if err != nil {
			rep.add(SourceSegments, line, KindMalformed, text, err)
			return
		}
		cost, err := strconv.ParseFloat(f[2], 64)
		if err != nil {
			rep.add(SourceSegments, line, KindMalformed, text, err)
			return
		}

		_, err = g.Link(from, to, core.WithCost(cost))
		switch {
		case err == nil:
			rep.Segments++
		case errors.Is(err, core.ErrNodeNotFound):
			rep.add(SourceSegments, line, KindUnknownEndpoint, text, err)
		case errors.Is(err, core.ErrAlreadyConnected):
			if s, ok := g.Segment(from, to); ok && s.From != from {
				rep.Duplicates++
				return
			}
			rep.add(SourceSegments, line, KindDuplicate, text, err)
		default:
			rep.add(SourceSegments, line, KindInvalid, text, err)
		}
	})
}

// ReadFacilities registers facilities and their departure/arrival points.
// A repeated code reopens the existing facility.
func ReadFacilities(g *core.Graph, r io.Reader, rep *Report) error {
	current := ""

	return eachLine(r, skipLong(rep, SourceFacilities), func(line int, text string, _ []string) {
		var kind core.FacilityPointKind
		switch {
		case isFacilityCode(text):
			if g.AddFacility(text) {
				rep.Facilities++
			}
			current = text
			return
		case strings.HasSuffix(text, ".D"):
			kind = core.Departure
		case strings.HasSuffix(text, ".A"):
			kind = core.Arrival
		default:
			rep.add(SourceFacilities, line, KindMalformed, text, nil)
			return
		}

		if current == "" {
			rep.add(SourceFacilities, line, KindOrphan, text, nil)
			return
		}
		if err := g.AddFacilityPoint(current, text, kind); err != nil {
			rep.add(SourceFacilities, line, KindUnknownPoint, text, err)
		}
	})
}

// isFacilityCode reports whether s is a 4-character code of uppercase
// letters and digits with at least one letter.
func isFacilityCode(s string) bool {
	if len(s) != 4 {
		return false
	}
	letter := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			letter = true
		case unicode.IsDigit(r):
		default:
			return false
		}
	}

	return letter
}
