// Package report turns run telemetry into files: a per-round CSV, an
// experiment summary CSV, population statistics and HTML charts.
//
// Nothing in here is needed to run the solver; the evolution package only
// emits RoundReport values and a Result, and this package consumes them.
//
// Files:
//
//   - RoundWriter: evolution.Observer writing one CSV row per round
//     (parents, children, mutants with the replaced slot, best tour and the
//     generation it was found at).
//   - AppendSummary / ReadSummary: the experiment summary, kept sorted by
//     best fitness, then by the generation that reached it.
//   - ReadSeedRoutes: the "Optimize route" column of a summary, used to seed
//     an exploiting run.
//   - Stats: population fitness statistics (gonum/stat).
//   - RenderConvergence / RenderOperatorComparison: go-echarts HTML pages.
package report
