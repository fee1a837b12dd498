package main

import (
	"flag"
	"fmt"

	"quantlab/internal/backtest"
	"quantlab/internal/config"
	"quantlab/internal/data"
	"quantlab/internal/maze"
	"quantlab/internal/model"
	"quantlab/internal/scenarios"
)

// Demo:
// - Run the trading rule over the reference series (or --data) and print each step
// - Solve the example energy maze
func main() {
	dataPath := flag.String("data", "", "Optional Date,Close CSV (default: built-in reference series)")
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	outCSV := flag.String("out", "", "Optional path to write ledger CSV (e.g. results/trading_results.csv)")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
	}

	series := model.SeriesFromPrices(scenarios.ReferencePrices)
	if *dataPath != "" {
		var err error
		series, err = data.LoadPriceCSV(*dataPath)
		if err != nil {
			panic(err)
		}
	}

	res, err := backtest.New(cfg.Simulation.ToParams()).Run(series)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%-12s %-9s %-5s %-12s %-9s %-10s %-12s\n", "date", "price", "sig", "reason", "position", "cash", "account")
	for _, r := range res.Ledger {
		fmt.Printf("%-12s %-9.2f %-5s %-12s %-9d %-10.2f %-12.2f\n",
			r.Date, r.Price, r.Signal, r.Reason, r.Position, r.Cash, r.AccountValue)
	}
	fmt.Println(res.PNLLine())

	if *outCSV != "" {
		if err := backtest.WriteLedgerCSV(*outCSV, res.Ledger); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(res.Ledger), *outCSV)
	}

	grid := model.EnergyGrid(cfg.Maze.ExampleGrid)
	fmt.Println("\nExample maze:")
	fmt.Print(grid.String())
	fmt.Printf("Minimum initial energy required: %d\n", maze.MinInitialEnergy(grid))
}
