// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const graphFile = `4
A 0 0
B 3 0
C 3 4
D 9 9
6
A B
B A
B C
C B
A C
C A
`

// setup writes the plain graph fixture and isolates config from the
// surrounding environment.
func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("AIRNAV_ENV_FILE", filepath.Join(dir, ".env"))
	path := filepath.Join(dir, "graph.txt")
	require.NoError(t, os.WriteFile(path, []byte(graphFile), 0o600))

	return path
}

func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestRun_Route(t *testing.T) {
	g := setup(t)

	code, out, _ := runCLI("route", "-graph", g, "-log-level", "error", "A", "C")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "A -> C (Total cost: 5.00)\n", out)

	code, out, _ = runCLI("route", "-graph", g, "-format", "json", "C", "A")
	require.Equal(t, exitOK, code)
	var body struct {
		Nodes []string
		Cost  float64
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, []string{"C", "A"}, body.Nodes)
	assert.Equal(t, 5.0, body.Cost)

	code, out, _ = runCLI("route", "-graph", g, "-geojson", "A", "B")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, `"LineString"`)

	code, _, errOut := runCLI("route", "-graph", g, "A", "D")
	assert.Equal(t, exitNotFound, code)
	assert.Contains(t, errOut, "no path")
}

func TestRun_FlagsAfterArguments(t *testing.T) {
	g := setup(t)

	code, out, errOut := runCLI("route", "-graph", g, "A", "B", "-geojson")
	require.Equal(t, exitOK, code, errOut)
	assert.Contains(t, out, `"LineString"`)

	code, out, errOut = runCLI("route", "A", "C", "-graph", g, "-format", "json")
	require.Equal(t, exitOK, code, errOut)
	var body struct {
		Nodes []string
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, []string{"A", "C"}, body.Nodes)

	code, _, errOut = runCLI("route", "-graph", g, "A", "B", "-bogus")
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, errOut, "invalid value")
}

func TestRun_ReachClosestStats(t *testing.T) {
	g := setup(t)

	code, out, _ := runCLI("reach", "-graph", g, "D")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "D\n", out)

	code, out, _ = runCLI("reach", "-graph", g, "A")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "A\nB\nC\n", out)

	code, _, _ = runCLI("reach", "-graph", g, "Z")
	assert.Equal(t, exitNotFound, code)

	code, out, _ = runCLI("closest", "-graph", g, "2.5", "0.5")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "B\n", out)

	code, _, _ = runCLI("closest", "-graph", g, "x", "0.5")
	assert.Equal(t, exitFailure, code)

	code, out, _ = runCLI("closest", "-graph", g, "2.5", "-0.5")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "B\n", out)

	for _, bad := range [][2]string{{"NaN", "1"}, {"1", "Inf"}, {"-Inf", "0"}} {
		code, _, errOut := runCLI("closest", "-graph", g, bad[0], bad[1])
		assert.Equal(t, exitFailure, code, bad)
		assert.Contains(t, errOut, "not a valid planar coordinate", bad)
	}

	code, out, _ = runCLI("stats", "-graph", g)
	require.Equal(t, exitOK, code)
	assert.Equal(t, "space=planar directed=true nodes=4 segments=6 authoritative=0 facilities=0\n", out)
}

func TestRun_Usage(t *testing.T) {
	g := setup(t)

	code, _, errOut := runCLI()
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, errOut, "usage: airnav")

	code, out, _ := runCLI("help")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "usage: airnav")

	code, _, errOut = runCLI("fly", "-graph", g)
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, errOut, `unknown command "fly"`)

	code, _, _ = runCLI("route", "-graph", g, "A")
	assert.Equal(t, exitFailure, code)

	code, _, errOut = runCLI("stats")
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, errOut, "no input data")

	code, _, errOut = runCLI("stats", "-graph", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, errOut, "source missing")
}

func TestRun_NavigationFiles(t *testing.T) {
	setup(t)
	dir := t.TempDir()
	points := filepath.Join(dir, "nav.txt")
	segments := filepath.Join(dir, "seg.txt")
	require.NoError(t, os.WriteFile(points, []byte("1 LEBL.D 41.297 2.083\n2 GODOX 41.5 1.0\n3 LEMD.A 40.48 -3.57\n"), 0o600))
	require.NoError(t, os.WriteFile(segments, []byte("1 2 95\n2 3 400\n2 9 1\n"), 0o600))

	code, out, errOut := runCLI("route", "-points", points, "-segments", segments, "LEBL.D", "LEMD.A")
	require.Equal(t, exitOK, code, errOut)
	assert.Equal(t, "LEBL.D -> GODOX -> LEMD.A (Total cost: 495.00)\n", out)
	assert.Contains(t, errOut, "input lines skipped")

	code, out, _ = runCLI("stats", "-points", points, "-segments", segments)
	require.Equal(t, exitOK, code)
	assert.Equal(t, "space=geodesic directed=false nodes=3 segments=2 authoritative=2 facilities=0\n", out)
}
