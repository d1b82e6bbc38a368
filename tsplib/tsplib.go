// Package tsplib loads TSP instances into an immutable *matrix.Distance.
//
// Two encodings are supported:
//
//   - TSPLIB XML: <travellingSalesmanProblemInstance> with a <name> and a
//     <graph> of <vertex> elements, each listing <edge cost="c">j</edge> for
//     every other vertex j. The diagonal is implied to be 0.
//   - TSPLIB text with EDGE_WEIGHT_TYPE: EXPLICIT and EDGE_WEIGHT_FORMAT:
//     FULL_MATRIX. The diagonal (often a large sentinel in ATSP files) is
//     forced to 0.
//
// Load picks the decoder from the file extension.
package tsplib

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dathd6/Evolutionary-Algorithm-TSP/matrix"
)

// Sentinel errors.
var (
	// ErrMissingEdge indicates that a vertex does not list an edge to some other vertex.
	ErrMissingEdge = errors.New("tsplib: missing edge")

	// ErrBadVertex indicates an edge target outside [0, V) or a self edge.
	ErrBadVertex = errors.New("tsplib: edge target out of range")

	// ErrBadDimension indicates a missing, non-positive or inconsistent DIMENSION.
	ErrBadDimension = errors.New("tsplib: bad dimension")

	// ErrUnsupportedFormat indicates an EDGE_WEIGHT_TYPE/FORMAT other than EXPLICIT/FULL_MATRIX.
	ErrUnsupportedFormat = errors.New("tsplib: unsupported edge weight format")
)

// Instance is a loaded problem.
type Instance struct {
	Name     string
	Distance *matrix.Distance
}

// Load opens path and decodes it as XML when the extension is .xml, as TSPLIB text otherwise.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tsplib: %w", err)
	}
	defer f.Close()

	var inst *Instance
	if strings.EqualFold(filepath.Ext(path), ".xml") {
		inst, err = ReadXML(f)
	} else {
		inst, err = ReadText(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if inst.Name == "" {
		inst.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return inst, nil
}

// build turns rows into a Distance, wrapping validation failures.
func build(name string, rows [][]float64) (*Instance, error) {
	d, err := matrix.NewDistanceFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("tsplib: %w", err)
	}
	return &Instance{Name: name, Distance: d}, nil
}
