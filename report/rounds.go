package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/dathd6/Evolutionary-Algorithm-TSP/evolution"
	"github.com/dathd6/Evolutionary-Algorithm-TSP/tsp"
)

// RoundHeader is the header row of the per-round CSV.
var RoundHeader = []string{
	"Generation",
	"Tournament selection - parent A",
	"Tournament selection - parent B",
	"Crossover - Child C",
	"Crossover - Child D",
	"Mutation - New solution E",
	"Mutation - New solution F",
	"Best solution",
	"Best solution from generation ?",
}

// RoundWriter is an evolution.Observer that writes one CSV row per round.
// The first write error is kept and reported by Flush; later rounds are dropped.
type RoundWriter struct {
	w   *csv.Writer
	err error
}

var _ evolution.Observer = (*RoundWriter)(nil)

// NewRoundWriter writes the header to w and returns the observer.
func NewRoundWriter(w io.Writer) (*RoundWriter, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(RoundHeader); err != nil {
		return nil, fmt.Errorf("report: header: %w", err)
	}
	return &RoundWriter{w: cw}, nil
}

// ObserveRound implements evolution.Observer.
func (r *RoundWriter) ObserveRound(rep evolution.RoundReport) {
	if r.err != nil {
		return
	}
	r.err = r.w.Write(RoundRow(rep))
}

// Flush flushes buffered rows and returns the first error seen.
func (r *RoundWriter) Flush() error {
	r.w.Flush()
	if r.err != nil {
		return fmt.Errorf("report: round row: %w", r.err)
	}
	return r.w.Error()
}

// RoundRow renders one report as CSV cells. Offspring cells are empty when
// the round produced no offspring.
func RoundRow(rep evolution.RoundReport) []string {
	row := make([]string, len(RoundHeader))
	row[0] = strconv.Itoa(rep.Generation)
	if rep.Produced {
		row[1] = rep.ParentA.String()
		row[2] = rep.ParentB.String()
		row[3] = rep.ChildC.String()
		row[4] = rep.ChildD.String()
		row[5] = mutantCell(rep.MutantE, rep.OutcomeE)
		row[6] = mutantCell(rep.MutantF, rep.OutcomeF)
	}
	row[7] = rep.Best.String()
	row[8] = strconv.Itoa(rep.Record.Generation)
	return row
}

func mutantCell(t *tsp.Tour, o evolution.Outcome) string {
	return fmt.Sprintf("%s - Replace solution %s in the population", t, o)
}
