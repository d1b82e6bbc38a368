package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dathd6/Evolutionary-Algorithm-TSP/evolution"
	"github.com/dathd6/Evolutionary-Algorithm-TSP/tsp"
)

// ErrBadSummary indicates a summary file whose header or rows cannot be read.
var ErrBadSummary = errors.New("report: malformed summary")

// SummaryHeader is the header row of the summary CSV.
var SummaryHeader = []string{
	"No.",
	"Population Size",
	"Tournament Size",
	"Replacement Function",
	"Mutation Function",
	"Crossover Function",
	"Execution Time",
	"Optimize route",
	"Best Fitness",
	"Generation that achieve best fitness",
}

// routeColumn is the index of "Optimize route".
const routeColumn = 7

// SummaryRow is one experiment in the summary CSV. Route is kept verbatim so
// rows written by other tools survive a rewrite.
type SummaryRow struct {
	No             int
	PopulationSize int
	TournamentSize int
	Replacement    string
	Mutation       string
	Crossover      string
	ExecutionTime  time.Duration
	Route          string
	Fitness        float64
	Generation     int
}

// NewSummaryRow builds the row for experiment no from a run summary.
func NewSummaryRow(no int, s evolution.Summary) SummaryRow {
	return SummaryRow{
		No:             no,
		PopulationSize: s.PopulationSize,
		TournamentSize: s.TournamentSize,
		Replacement:    s.Replacement.String(),
		Mutation:       s.Mutation.String(),
		Crossover:      s.Crossover.String(),
		ExecutionTime:  s.Elapsed,
		Route:          tsp.FormatRoute(s.Best.Route()),
		Fitness:        s.Best.Fitness(),
		Generation:     s.BestGeneration,
	}
}

func (r SummaryRow) cells() []string {
	return []string{
		strconv.Itoa(r.No),
		strconv.Itoa(r.PopulationSize),
		strconv.Itoa(r.TournamentSize),
		r.Replacement,
		r.Mutation,
		r.Crossover,
		strconv.FormatFloat(r.ExecutionTime.Seconds(), 'f', -1, 64),
		r.Route,
		strconv.FormatFloat(r.Fitness, 'f', -1, 64),
		strconv.Itoa(r.Generation),
	}
}

func parseSummaryRow(cells []string) (SummaryRow, error) {
	if len(cells) != len(SummaryHeader) {
		return SummaryRow{}, fmt.Errorf("%d cells: %w", len(cells), ErrBadSummary)
	}
	var (
		r    SummaryRow
		err  error
		secs float64
		errs []error
	)
	r.No, err = strconv.Atoi(cells[0])
	errs = append(errs, err)
	r.PopulationSize, err = strconv.Atoi(cells[1])
	errs = append(errs, err)
	r.TournamentSize, err = strconv.Atoi(cells[2])
	errs = append(errs, err)
	r.Replacement, r.Mutation, r.Crossover = cells[3], cells[4], cells[5]
	secs, err = strconv.ParseFloat(cells[6], 64)
	errs = append(errs, err)
	r.ExecutionTime = time.Duration(secs * float64(time.Second))
	r.Route = cells[7]
	r.Fitness, err = strconv.ParseFloat(cells[8], 64)
	errs = append(errs, err)
	gen, err := strconv.ParseFloat(cells[9], 64) // older files wrote "12.0"
	errs = append(errs, err)
	r.Generation = int(gen)

	if err = errors.Join(errs...); err != nil {
		return SummaryRow{}, fmt.Errorf("%w: %w", ErrBadSummary, err)
	}
	return r, nil
}

// ReadSummary parses a summary CSV.
func ReadSummary(r io.Reader) ([]SummaryRow, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("report: summary: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	if !slices.Equal(records[0], SummaryHeader) {
		return nil, fmt.Errorf("report: summary header %v: %w", records[0], ErrBadSummary)
	}
	rows := make([]SummaryRow, 0, len(records)-1)
	for i, rec := range records[1:] {
		row, err := parseSummaryRow(rec)
		if err != nil {
			return nil, fmt.Errorf("report: summary line %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteSummary writes the header and rows as CSV.
func WriteSummary(w io.Writer, rows []SummaryRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(SummaryHeader); err != nil {
		return fmt.Errorf("report: summary: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(r.cells()); err != nil {
			return fmt.Errorf("report: summary: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SortSummary orders rows by fitness, then by the generation that reached it.
func SortSummary(rows []SummaryRow) {
	slices.SortStableFunc(rows, func(a, b SummaryRow) int {
		switch {
		case a.Fitness < b.Fitness:
			return -1
		case a.Fitness > b.Fitness:
			return 1
		}
		return a.Generation - b.Generation
	})
}

// LoadSummary reads the summary at path; a missing file yields no rows.
func LoadSummary(path string) ([]SummaryRow, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	defer f.Close()
	return ReadSummary(f)
}

// AppendSummary merges rows into the summary at path (created if missing),
// sorts everything with SortSummary and rewrites the file.
func AppendSummary(path string, rows []SummaryRow) ([]SummaryRow, error) {
	existing, err := LoadSummary(path)
	if err != nil {
		return nil, err
	}
	all := append(existing, rows...)
	SortSummary(all)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	if err = WriteSummary(f, all); err != nil {
		f.Close()
		return nil, err
	}
	if err = f.Close(); err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	return all, nil
}

// ParseRoute parses "[1, 2, 3]" (brackets optional).
func ParseRoute(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("route %q: %w", s, tsp.ErrInvalidPermutation)
	}
	parts := strings.Split(s, ",")
	route := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("route element %d: %w", i, err)
		}
		route[i] = v
	}
	return route, nil
}

// ReadSeedRoutes reads the "Optimize route" column of a summary CSV. Cells that
// do not parse are returned as nil so the caller can substitute random tours.
// Only the header and column count are checked; other cells may be arbitrary.
func ReadSeedRoutes(r io.Reader) ([][]int, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("report: seeds: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("report: seeds: no rows: %w", ErrBadSummary)
	}
	if len(records[0]) <= routeColumn || records[0][routeColumn] != SummaryHeader[routeColumn] {
		return nil, fmt.Errorf("report: seeds: header %v: %w", records[0], ErrBadSummary)
	}
	routes := make([][]int, 0, len(records)-1)
	for _, rec := range records[1:] {
		route, err := ParseRoute(rec[routeColumn])
		if err != nil {
			route = nil
		}
		routes = append(routes, route)
	}
	return routes, nil
}

// LoadSeedRoutes opens path and calls ReadSeedRoutes.
func LoadSeedRoutes(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	defer f.Close()
	return ReadSeedRoutes(f)
}
