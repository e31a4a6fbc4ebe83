// SPDX-License-Identifier: MIT
package navdata_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/airnav/navdata"
)

const (
	pointsFixture = `# id name lat lon
1 LEBL.D 41.297 2.083
2 LEBL.A 41.290 2.070
3 GODOX 41.50 1.00
4 CASPE 41.25 -0.05
5 LEMD.D 40.472 -3.561
6 LEMD.A 40.480 -3.570
7 ISOL 43.0 5.0
8 SHORT 41.0
x NAME 41 2
9 GODOX 40 1
10 BADLAT 95 2
`
	segmentsFixture = `1 3 90.5
3 4 95.0
4 5 300.2
3 1 90.5
1 3 90.5
4 99 10

5 6 1.2
2 3
1 1 0
2 3 -4
3 2 88.0
`
	facilitiesFixture = `XXX.D
LEBL
LEBL.D
LEBL.A
NOPE.D
LEMD
LEMD.D
LEMD.A
lowercase
`
)

// writeFixtures writes the navigation fixtures into a temp dir.
func writeFixtures(t *testing.T) navdata.Sources {
	t.Helper()
	dir := t.TempDir()
	src := navdata.Sources{
		Points:     filepath.Join(dir, "nav.txt"),
		Segments:   filepath.Join(dir, "seg.txt"),
		Facilities: filepath.Join(dir, "aer.txt"),
	}
	require.NoError(t, os.WriteFile(src.Points, []byte(pointsFixture), 0o600))
	require.NoError(t, os.WriteFile(src.Segments, []byte(segmentsFixture), 0o600))
	require.NoError(t, os.WriteFile(src.Facilities, []byte(facilitiesFixture), 0o600))

	return src
}
