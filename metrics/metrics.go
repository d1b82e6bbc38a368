// Package metrics exposes per-round evolution telemetry as Prometheus metrics.
//
// Recorder implements evolution.Observer. One Recorder serves every experiment
// of a process; series are labelled by experiment id.
package metrics

import (
	"fmt"

	"github.com/dathd6/Evolutionary-Algorithm-TSP/evolution"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "evotsp"

// Recorder holds the collectors registered by NewRecorder.
type Recorder struct {
	rounds       *prometheus.CounterVec
	barren       *prometheus.CounterVec
	replacements *prometheus.CounterVec
	bestFitness  *prometheus.GaugeVec
	bestGen      *prometheus.GaugeVec
	generation   *prometheus.GaugeVec
	mutantCost   *prometheus.HistogramVec
}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		rounds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_total",
			Help:      "Rounds performed.",
		}, []string{"experiment"}),
		barren: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_without_offspring_total",
			Help:      "Rounds whose tournament selection failed.",
		}, []string{"experiment"}),
		replacements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "replacements_total",
			Help:      "Mutants inserted into the population.",
		}, []string{"experiment", "outcome"}),
		bestFitness: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "best_fitness",
			Help:      "Fitness of the record-best tour.",
		}, []string{"experiment"}),
		bestGen: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "best_generation",
			Help:      "Generation at which the record-best tour was found.",
		}, []string{"experiment"}),
		generation: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "generation",
			Help:      "Last completed generation.",
		}, []string{"experiment"}),
		mutantCost: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "mutant_fitness",
			Help:      "Fitness of mutated offspring.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 24),
		}, []string{"experiment"}),
	}

	for _, c := range []prometheus.Collector{
		r.rounds, r.barren, r.replacements, r.bestFitness, r.bestGen, r.generation, r.mutantCost,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: %w", err)
		}
	}
	return r, nil
}

// Observer returns an evolution.Observer that records under the given experiment id.
func (r *Recorder) Observer(experiment string) evolution.Observer {
	return evolution.ObserverFunc(func(rep evolution.RoundReport) {
		r.observe(experiment, rep)
	})
}

func (r *Recorder) observe(exp string, rep evolution.RoundReport) {
	r.rounds.WithLabelValues(exp).Inc()
	r.generation.WithLabelValues(exp).Set(float64(rep.Generation))
	if rep.Record.Tour != nil {
		r.bestFitness.WithLabelValues(exp).Set(rep.Record.Tour.Fitness())
		r.bestGen.WithLabelValues(exp).Set(float64(rep.Record.Generation))
	}
	if !rep.Produced {
		r.barren.WithLabelValues(exp).Inc()
		return
	}
	for _, m := range []struct {
		fitness float64
		out     evolution.Outcome
	}{
		{rep.MutantE.Fitness(), rep.OutcomeE},
		{rep.MutantF.Fitness(), rep.OutcomeF},
	} {
		r.mutantCost.WithLabelValues(exp).Observe(m.fitness)
		outcome := "rejected"
		if m.out.Replaced {
			outcome = "replaced"
		}
		r.replacements.WithLabelValues(exp, outcome).Inc()
	}
}
