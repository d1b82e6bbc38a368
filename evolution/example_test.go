package evolution_test

import (
	"context"
	"fmt"

	"github.com/dathd6/Evolutionary-Algorithm-TSP/evolution"
	"github.com/dathd6/Evolutionary-Algorithm-TSP/matrix"
	"github.com/dathd6/Evolutionary-Algorithm-TSP/tsp"
)

// ExampleEngine_Run solves a 4-city ladder whose optimum costs 12.
func ExampleEngine_Run() {
	d, _ := matrix.NewDistanceFromRows([][]float64{
		{0, 1, 9, 9},
		{1, 0, 1, 9},
		{9, 1, 0, 1},
		{9, 9, 1, 0},
	})
	opts := evolution.DefaultOptions()
	opts.PopulationSize = 20
	opts.TournamentSize = 3
	opts.Crossover = tsp.OX
	opts.Rounds = 500

	e, err := evolution.New(d, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := e.Run(context.Background())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Summary.Best.Fitness(), len(res.Records))
	// Output: 12 501
}
