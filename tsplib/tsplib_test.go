package tsplib_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dathd6/Evolutionary-Algorithm-TSP/matrix"
	"github.com/dathd6/Evolutionary-Algorithm-TSP/tsplib"
	"github.com/stretchr/testify/require"
)

const tri = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<travellingSalesmanProblemInstance>
  <name>tri</name>
  <source>unit test</source>
  <doublePrecision>15</doublePrecision>
  <ignoredDigits>0</ignoredDigits>
  <graph>
    <vertex>
      <edge cost="2.000000000000000e+01">1</edge>
      <edge cost="3.000000000000000e+01">2</edge>
    </vertex>
    <vertex>
      <edge cost="2.100000000000000e+01">0</edge>
      <edge cost="1.500000000000000e+01">2</edge>
    </vertex>
    <vertex>
      <edge cost="3.000000000000000e+01">0</edge>
      <edge cost="1.600000000000000e+01">1</edge>
    </vertex>
  </graph>
</travellingSalesmanProblemInstance>
`

const ftv = `NAME: tiny4
TYPE: ATSP
COMMENT: unit test
DIMENSION: 4
EDGE_WEIGHT_TYPE: EXPLICIT
EDGE_WEIGHT_FORMAT: FULL_MATRIX
EDGE_WEIGHT_SECTION
 9999 1 9 9
 1 9999 1 9
 9 1 9999
 1
 9 9 1 9999
EOF
`

func TestReadXML(t *testing.T) {
	inst, err := tsplib.ReadXML(strings.NewReader(tri))
	require.NoError(t, err)
	require.Equal(t, "tri", inst.Name)
	require.Equal(t, [][]float64{
		{0, 20, 30},
		{21, 0, 15},
		{30, 16, 0},
	}, inst.Distance.Rows())
}

func TestReadXML_Errors(t *testing.T) {
	missing := strings.Replace(tri, `<edge cost="1.500000000000000e+01">2</edge>`, "", 1)
	_, err := tsplib.ReadXML(strings.NewReader(missing))
	require.ErrorIs(t, err, tsplib.ErrMissingEdge)

	self := strings.Replace(tri, `<edge cost="1.500000000000000e+01">2</edge>`, `<edge cost="1">1</edge>`, 1)
	_, err = tsplib.ReadXML(strings.NewReader(self))
	require.ErrorIs(t, err, tsplib.ErrBadVertex)

	negative := strings.Replace(tri, `cost="2.100000000000000e+01"`, `cost="-1"`, 1)
	_, err = tsplib.ReadXML(strings.NewReader(negative))
	require.ErrorIs(t, err, matrix.ErrNegativeWeight)

	_, err = tsplib.ReadXML(strings.NewReader("<travellingSalesmanProblemInstance><graph></graph></travellingSalesmanProblemInstance>"))
	require.ErrorIs(t, err, tsplib.ErrBadDimension)

	_, err = tsplib.ReadXML(strings.NewReader("not xml"))
	require.Error(t, err)
}

func TestReadText(t *testing.T) {
	inst, err := tsplib.ReadText(strings.NewReader(ftv))
	require.NoError(t, err)
	require.Equal(t, "tiny4", inst.Name)
	require.Equal(t, 4, inst.Distance.N())
	require.Equal(t, 0.0, inst.Distance.Cost(2, 2))
	require.Equal(t, 1.0, inst.Distance.Cost(3, 2))
	require.Equal(t, 1.0, inst.Distance.Cost(2, 3))
	require.Equal(t, 9.0, inst.Distance.Cost(3, 0))
}

func TestReadText_Errors(t *testing.T) {
	_, err := tsplib.ReadText(strings.NewReader(strings.Replace(ftv, "DIMENSION: 4", "DIMENSION: 5", 1)))
	require.ErrorIs(t, err, tsplib.ErrBadDimension)

	_, err = tsplib.ReadText(strings.NewReader(strings.Replace(ftv, "EXPLICIT", "EUC_2D", 1)))
	require.ErrorIs(t, err, tsplib.ErrUnsupportedFormat)

	_, err = tsplib.ReadText(strings.NewReader(strings.Replace(ftv, "FULL_MATRIX", "UPPER_ROW", 1)))
	require.ErrorIs(t, err, tsplib.ErrUnsupportedFormat)

	_, err = tsplib.ReadText(strings.NewReader("NAME: x\nEOF\n"))
	require.ErrorIs(t, err, tsplib.ErrBadDimension)
}

func TestLoad_ByExtension(t *testing.T) {
	dir := t.TempDir()
	xmlPath := filepath.Join(dir, "tri.xml")
	txtPath := filepath.Join(dir, "unnamed.atsp")
	require.NoError(t, os.WriteFile(xmlPath, []byte(tri), 0o644))
	require.NoError(t, os.WriteFile(txtPath, []byte(strings.Replace(ftv, "NAME: tiny4\n", "", 1)), 0o644))

	inst, err := tsplib.Load(xmlPath)
	require.NoError(t, err)
	require.Equal(t, 3, inst.Distance.N())

	inst, err = tsplib.Load(txtPath)
	require.NoError(t, err)
	require.Equal(t, "unnamed", inst.Name)

	_, err = tsplib.Load(filepath.Join(dir, "none.xml"))
	require.Error(t, err)
}
