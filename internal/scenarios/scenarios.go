// Package scenarios holds the reference cases run by `cli check`.
package scenarios

import (
	"fmt"
	"io"
	"slices"

	"quantlab/internal/backtest"
	"quantlab/internal/maze"
	"quantlab/internal/model"
)

// Scenario is one named reference case. Check returns nil when the core
// reproduces the expected output.
type Scenario struct {
	Name  string
	Check func() error
}

// ReferencePrices is the price sequence of the simulator reference case.
var ReferencePrices = []float64{98, 100, 102, 104, 103, 101, 99, 100, 102, 104, 106, 107, 105}

func All() []Scenario {
	return []Scenario{
		{Name: "simulator reference series", Check: checkSimulator},
		mazeScenario("maze example grid", maze.ExampleGrid(), 7),
		mazeScenario("maze generic grid", model.EnergyGrid{{0, -2, -3}, {-1, -2, -2}, {-1, -1, -1}}, 14),
		mazeScenario("maze all -1 grid", model.EnergyGrid{{-1, -1, -1}, {-1, -1, -1}, {-1, -1, -1}}, 10),
	}
}

func checkSimulator() error {
	res := backtest.Simulate(model.SeriesFromPrices(ReferencePrices))

	wantSignals := []model.Signal{0, 0, 0, 1, 0, -1, 0, 0, 0, 1, 1, 0, -1}
	if got := res.Signals(); !slices.Equal(got, wantSignals) {
		return fmt.Errorf("signals: got %v, want %v", got, wantSignals)
	}
	wantPositions := []int{0, 0, 0, 10, 10, 0, 0, 0, 0, 10, 20, 20, 0}
	if got := res.Positions(); !slices.Equal(got, wantPositions) {
		return fmt.Errorf("positions: got %v, want %v", got, wantPositions)
	}
	return nil
}

func mazeScenario(name string, grid model.EnergyGrid, want int) Scenario {
	return Scenario{
		Name: name,
		Check: func() error {
			if got := maze.MinInitialEnergy(grid); got != want {
				return fmt.Errorf("min initial energy: got %d, want %d", got, want)
			}
			return nil
		},
	}
}

// Run executes every scenario, printing PASS/FAIL lines to w, and returns
// the number of failures.
func Run(w io.Writer, list []Scenario) int {
	failed := 0
	for _, s := range list {
		if err := s.Check(); err != nil {
			failed++
			fmt.Fprintf(w, "FAIL  %s: %v\n", s.Name, err)
			continue
		}
		fmt.Fprintf(w, "PASS  %s\n", s.Name)
	}
	fmt.Fprintf(w, "%d/%d scenarios passed\n", len(list)-failed, len(list))
	return failed
}
