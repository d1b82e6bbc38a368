package tsplib

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type xmlInstance struct {
	XMLName  xml.Name    `xml:"travellingSalesmanProblemInstance"`
	Name     string      `xml:"name"`
	Vertices []xmlVertex `xml:"graph>vertex"`
}

type xmlVertex struct {
	Edges []xmlEdge `xml:"edge"`
}

type xmlEdge struct {
	Cost   string `xml:"cost,attr"`
	Target string `xml:",chardata"`
}

// ReadXML decodes a TSPLIB XML instance.
func ReadXML(r io.Reader) (*Instance, error) {
	var doc xmlInstance
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("tsplib: xml: %w", err)
	}

	var (
		n    = len(doc.Vertices)
		rows = make([][]float64, n)
		seen = make([]bool, n)
	)
	if n == 0 {
		return nil, ErrBadDimension
	}
	for i, v := range doc.Vertices {
		rows[i] = make([]float64, n)
		clear(seen)
		for _, e := range v.Edges {
			j, err := strconv.Atoi(strings.TrimSpace(e.Target))
			if err != nil {
				return nil, fmt.Errorf("tsplib: vertex %d: edge target %q: %w", i, e.Target, err)
			}
			if j < 0 || j >= n || j == i {
				return nil, fmt.Errorf("tsplib: vertex %d: edge to %d: %w", i, j, ErrBadVertex)
			}
			c, err := strconv.ParseFloat(strings.TrimSpace(e.Cost), 64)
			if err != nil {
				return nil, fmt.Errorf("tsplib: vertex %d: edge to %d: cost %q: %w", i, j, e.Cost, err)
			}
			rows[i][j] = c
			seen[j] = true
		}
		for j := 0; j < n; j++ {
			if j != i && !seen[j] {
				return nil, fmt.Errorf("tsplib: vertex %d: edge to %d: %w", i, j, ErrMissingEdge)
			}
		}
	}

	return build(strings.TrimSpace(doc.Name), rows)
}
