package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadText decodes a TSPLIB text instance with an explicit full matrix.
func ReadText(r io.Reader) (*Instance, error) {
	var (
		scanner   = bufio.NewScanner(r)
		name      string
		dimension int
		inWeights bool
		values    []float64
	)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "EOF" {
			break
		}
		if inWeights {
			if isKeyword(line) {
				inWeights = false
			} else {
				for _, field := range strings.Fields(line) {
					v, err := strconv.ParseFloat(field, 64)
					if err != nil {
						return nil, fmt.Errorf("tsplib: weight %q: %w", field, err)
					}
					values = append(values, v)
				}
				continue
			}
		}

		key, val := splitHeader(line)
		switch key {
		case "NAME":
			name = val
		case "DIMENSION":
			d, err := strconv.Atoi(val)
			if err != nil || d <= 0 {
				return nil, fmt.Errorf("tsplib: dimension %q: %w", val, ErrBadDimension)
			}
			dimension = d
		case "EDGE_WEIGHT_TYPE":
			if !strings.EqualFold(val, "EXPLICIT") {
				return nil, fmt.Errorf("tsplib: EDGE_WEIGHT_TYPE %s: %w", val, ErrUnsupportedFormat)
			}
		case "EDGE_WEIGHT_FORMAT":
			if !strings.EqualFold(val, "FULL_MATRIX") {
				return nil, fmt.Errorf("tsplib: EDGE_WEIGHT_FORMAT %s: %w", val, ErrUnsupportedFormat)
			}
		case "EDGE_WEIGHT_SECTION":
			inWeights = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("tsplib: %w", err)
	}

	if dimension == 0 {
		return nil, ErrBadDimension
	}
	if len(values) != dimension*dimension {
		return nil, fmt.Errorf("tsplib: %d weights for dimension %d: %w", len(values), dimension, ErrBadDimension)
	}

	rows := make([][]float64, dimension)
	for i := range rows {
		rows[i] = values[i*dimension : (i+1)*dimension : (i+1)*dimension]
		rows[i][i] = 0
	}
	return build(name, rows)
}

// splitHeader splits "KEY: value" or "KEY : value"; a bare keyword returns an empty value.
func splitHeader(line string) (string, string) {
	key, val, ok := strings.Cut(line, ":")
	if !ok {
		return strings.TrimSpace(line), ""
	}
	return strings.ToUpper(strings.TrimSpace(key)), strings.TrimSpace(val)
}

// isKeyword reports whether a line starts a new TSPLIB section.
func isKeyword(line string) bool {
	c := line[0]
	return c >= 'A' && c <= 'Z'
}
