// Package evolution implements a steady-state evolutionary algorithm for the
// Travelling Salesman Problem on top of package tsp.
//
// One round of the loop:
//
//	select(k) → crossover(a, b) → mutate(c), mutate(d) → replace(e), replace(f)
//
// after which the population's best tour is compared with the previous record
// and a new record entry is appended (carried forward when not strictly better).
//
// State machine:
//
//	Initialized ──Step/Run──▶ Running ──Rounds reached / ctx / TimeLimit──▶ Terminated
//
// Components:
//
//   - Population: fixed-size ordered collection of tours; the index is the
//     slot used by replacement and is visible in per-round telemetry.
//   - Tournament: two independent draws of k distinct members (without
//     replacement within a draw); the fittest of each draw wins, ties go to
//     the lower index.
//   - Replace: ReplaceWeakest (always overwrites the first worst member) or
//     ReplaceFirstWeaker (overwrites the first member strictly worse than the
//     newcomer, if any). Outcome.Replaced distinguishes "no slot" from slot 0.
//   - Engine: drives the loop, owns the only *rand.Rand of the run, keeps the
//     record-best sequence and emits a RoundReport to every Observer.
//
// A round whose selection fails (empty population or k larger than the
// population) produces no offspring but still appends a record entry.
// Operator errors indicate a bug and terminate the run.
//
// The engine is single-threaded and performs no I/O; reporting is done by
// observers supplied through Options.
//
// Complexity:
//   - Tournament: O(N) per draw (partial Fisher–Yates over an index buffer).
//   - Replace / Best: O(N).
//   - Round: O(N + V).
package evolution
