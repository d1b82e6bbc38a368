package report

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/dathd6/Evolutionary-Algorithm-TSP/evolution"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"gonum.org/v1/gonum/stat"
)

// RenderConvergence writes an HTML page with the record-best fitness and the
// cumulative execution time per generation.
func RenderConvergence(w io.Writer, title string, records []evolution.Record) error {
	if len(records) == 0 {
		return fmt.Errorf("report: no records for %s", title)
	}

	var (
		xs      = make([]string, len(records))
		fitness = make([]opts.LineData, len(records))
		elapsed = make([]opts.LineData, len(records))
	)
	for i, r := range records {
		xs[i] = strconv.Itoa(i)
		fitness[i] = opts.LineData{Value: r.Tour.Fitness()}
		elapsed[i] = opts.LineData{Value: r.Elapsed.Seconds()}
	}

	best := newLine(fmt.Sprintf("Convergence - %s", title), "Generation", "Best fitness")
	best.SetXAxis(xs).AddSeries("Best fitness", fitness)

	timing := newLine("Execution time", "Generation", "Duration (seconds)")
	timing.SetXAxis(xs).AddSeries("Cumulative time", elapsed)

	page := components.NewPage()
	page.AddCharts(best, timing)
	return page.Render(w)
}

func newLine(title, xName, yName string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithXAxisOpts(opts.XAxis{Name: xName}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      yName,
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
	)
	return line
}

// OperatorGroup aggregates summary rows that share the same operator triple.
type OperatorGroup struct {
	Label          string
	Runs           int
	MeanFitness    float64
	MeanGeneration float64
}

// GroupByOperators averages best fitness and generation per
// (crossover, mutation, replacement) combination, ordered by label.
func GroupByOperators(rows []SummaryRow) []OperatorGroup {
	var (
		fit  = map[string][]float64{}
		gen  = map[string][]float64{}
		keys []string
	)
	for _, r := range rows {
		k := r.Crossover + " / " + r.Mutation + " / " + r.Replacement
		if _, ok := fit[k]; !ok {
			keys = append(keys, k)
		}
		fit[k] = append(fit[k], r.Fitness)
		gen[k] = append(gen[k], float64(r.Generation))
	}
	slices.Sort(keys)

	out := make([]OperatorGroup, len(keys))
	for i, k := range keys {
		out[i] = OperatorGroup{
			Label:          k,
			Runs:           len(fit[k]),
			MeanFitness:    stat.Mean(fit[k], nil),
			MeanGeneration: stat.Mean(gen[k], nil),
		}
	}
	return out
}

// RenderOperatorComparison writes an HTML bar chart of average best fitness and
// average converging generation per operator combination.
func RenderOperatorComparison(w io.Writer, title string, rows []SummaryRow) error {
	groups := GroupByOperators(rows)
	if len(groups) == 0 {
		return fmt.Errorf("report: no summary rows for %s", title)
	}

	var (
		labels  = make([]string, len(groups))
		fitness = make([]opts.BarData, len(groups))
		gens    = make([]opts.BarData, len(groups))
	)
	for i, g := range groups {
		labels[i] = g.Label
		fitness[i] = opts.BarData{Value: g.MeanFitness}
		gens[i] = opts.BarData{Value: g.MeanGeneration}
	}

	fitBar := newBar(fmt.Sprintf("Average best fitness by operators - %s", title), "Fitness")
	fitBar.SetXAxis(labels).AddSeries("Fitness", fitness)
	genBar := newBar("Average generation to converge by operators", "Generations")
	genBar.SetXAxis(labels).AddSeries("Generation", gens)

	page := components.NewPage()
	page.AddCharts(fitBar, genBar)
	return page.Render(w)
}

func newBar(title, yName string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName}),
	)
	return bar
}

// RenderSummary writes an HTML page with the best fitness and the execution
// time of every experiment, ordered by experiment number.
func RenderSummary(w io.Writer, title string, rows []SummaryRow) error {
	if len(rows) == 0 {
		return fmt.Errorf("report: no summary rows for %s", title)
	}
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b SummaryRow) int { return a.No - b.No })

	var (
		xs      = make([]string, len(sorted))
		fitness = make([]opts.LineData, len(sorted))
		elapsed = make([]opts.LineData, len(sorted))
	)
	for i, r := range sorted {
		xs[i] = strconv.Itoa(r.No)
		fitness[i] = opts.LineData{Value: r.Fitness}
		elapsed[i] = opts.LineData{Value: r.ExecutionTime.Seconds()}
	}

	best := newLine(fmt.Sprintf("Best fitness per experiment - %s", title), "Experiment", "Best fitness")
	best.SetXAxis(xs).AddSeries("Best fitness", fitness)
	timing := newLine("Execution time per experiment", "Experiment", "Duration (seconds)")
	timing.SetXAxis(xs).AddSeries("Execution time", elapsed)

	page := components.NewPage()
	page.AddCharts(best, timing)
	return page.Render(w)
}

// RenderSizeTradeoff writes an HTML page of scatter plots relating population
// and tournament size to execution time and best fitness.
func RenderSizeTradeoff(w io.Writer, title string, rows []SummaryRow) error {
	if len(rows) == 0 {
		return fmt.Errorf("report: no summary rows for %s", title)
	}

	var (
		popTime  = make([]opts.ScatterData, len(rows))
		popFit   = make([]opts.ScatterData, len(rows))
		tourTime = make([]opts.ScatterData, len(rows))
		tourFit  = make([]opts.ScatterData, len(rows))
	)
	for i, r := range rows {
		secs := r.ExecutionTime.Seconds()
		popTime[i] = scatterPoint(float64(r.PopulationSize), secs)
		popFit[i] = scatterPoint(float64(r.PopulationSize), r.Fitness)
		tourTime[i] = scatterPoint(float64(r.TournamentSize), secs)
		tourFit[i] = scatterPoint(float64(r.TournamentSize), r.Fitness)
	}

	page := components.NewPage()
	page.AddCharts(
		newScatter(fmt.Sprintf("Population size vs execution time - %s", title), "Population size", "Duration (seconds)").
			AddSeries("Experiments", popTime),
		newScatter("Population size vs best fitness", "Population size", "Best fitness").
			AddSeries("Experiments", popFit),
		newScatter("Tournament size vs execution time", "Tournament size", "Duration (seconds)").
			AddSeries("Experiments", tourTime),
		newScatter("Tournament size vs best fitness", "Tournament size", "Best fitness").
			AddSeries("Experiments", tourFit),
	)
	return page.Render(w)
}

func scatterPoint(x, y float64) opts.ScatterData {
	return opts.ScatterData{Value: []float64{x, y}, Symbol: "circle", SymbolSize: 10}
}

func newScatter(title, xName, yName string) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithXAxisOpts(opts.XAxis{Name: xName, Type: "value", SplitLine: &opts.SplitLine{Show: opts.Bool(true)}}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName, SplitLine: &opts.SplitLine{Show: opts.Bool(true)}}),
	)
	return scatter
}
