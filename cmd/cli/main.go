package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"quantlab/internal/analysis"
	"quantlab/internal/backtest"
	"quantlab/internal/chart"
	"quantlab/internal/config"
	"quantlab/internal/data"
	"quantlab/internal/maze"
	"quantlab/internal/model"
	"quantlab/internal/scenarios"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "maze":
		cmdMaze(os.Args[2:])
	case "rank":
		cmdRank(os.Args[2:])
	case "check":
		cmdCheck(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --data data/sample.csv [--config examples/config.yaml] [--out trading_results.csv] [--chart pnl.png]")
	fmt.Println("  cli maze [--grid examples/grids/example.yaml | --interactive]")
	fmt.Println("  cli rank --data data/")
	fmt.Println("  cli check")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate reads a Date,Close CSV and writes Date,Signal,Position,Account Value rows")
	fmt.Println("  - maze without flags solves the built-in example grid")
	fmt.Println("  - check runs the reference scenarios and exits non-zero on failure")
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

func loadConfig(path string) *config.Config {
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fatal(err)
	}
	return cfg
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	dataPath := fs.String("data", "", "Path to a Date,Close price CSV")
	cfgPath := fs.String("config", "", "Optional path to YAML config")
	outPath := fs.String("out", "", "Output CSV path (default from config, else trading_results.csv)")
	chartPath := fs.String("chart", "", "Optional PNG path for the smoothed P&L chart")
	_ = fs.Parse(args)

	if *dataPath == "" {
		fmt.Println("--data is required")
		os.Exit(2)
	}
	cfg := loadConfig(*cfgPath)
	if *outPath == "" {
		*outPath = cfg.Output.LedgerCSV
	}
	if *chartPath == "" {
		*chartPath = cfg.Output.ChartPNG
	}

	series, err := data.LoadPriceCSV(*dataPath)
	if err != nil {
		fatal(err)
	}

	res, err := backtest.New(cfg.Simulation.ToParams()).Run(series)
	if err != nil {
		fatal(err)
	}

	if err := backtest.WriteLedgerCSV(*outPath, res.Ledger); err != nil {
		fatal(err)
	}

	fmt.Println(res.PNLLine())
	fmt.Printf("Trading results saved to %s (%d rows)\n", *outPath, len(res.Ledger))

	if *chartPath != "" {
		smoothed := analysis.SmoothedPNL(res, cfg.Output.SmoothingWindow)
		if err := chart.SavePNL(*chartPath, res, smoothed, chart.DefaultOptions()); err != nil {
			fatal(err)
		}
		fmt.Printf("P&L chart saved to %s\n", *chartPath)
	}
}

func cmdMaze(args []string) {
	fs := flag.NewFlagSet("maze", flag.ExitOnError)
	gridPath := fs.String("grid", "", "Path to a YAML grid file (grid: [[...]])")
	interactive := fs.Bool("interactive", false, "Read the grid from stdin")
	cfgPath := fs.String("config", "", "Optional path to YAML config (maze.example_grid)")
	_ = fs.Parse(args)

	var (
		grid model.EnergyGrid
		err  error
	)
	switch {
	case *gridPath != "" && *interactive:
		fmt.Println("--grid and --interactive are mutually exclusive")
		os.Exit(2)
	case *gridPath != "":
		grid, err = data.LoadGridFile(*gridPath)
	case *interactive:
		grid, err = maze.NewPrompt(os.Stdin, os.Stdout).ReadGrid()
		if err == nil {
			fmt.Println("\nYour maze:")
			fmt.Print(grid.String())
		}
	default:
		grid = model.EnergyGrid(loadConfig(*cfgPath).Maze.ExampleGrid)
		fmt.Println("Example maze:")
		fmt.Print(grid.String())
	}
	if err != nil {
		fatal(err)
	}

	energy, err := maze.Solve(grid)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("Minimum initial energy required: %d\n", energy)
}

func cmdRank(args []string) {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	dataPaths := fs.String("data", "data", "Comma-separated CSV paths or a directory")
	cfgPath := fs.String("config", "", "Optional path to YAML config")
	_ = fs.Parse(args)

	cfg := loadConfig(*cfgPath)
	paths, err := data.SplitPaths(*dataPaths)
	if err != nil {
		fatal(err)
	}
	if len(paths) == 0 {
		fatal(fmt.Errorf("no CSV files found in %s", *dataPaths))
	}

	engine := backtest.New(cfg.Simulation.ToParams())
	results := make(map[string]*backtest.Result, len(paths))
	for _, p := range paths {
		series, err := data.LoadPriceCSV(p)
		if err != nil {
			fatal(err)
		}
		res, err := engine.Run(series)
		if err != nil {
			fatal(fmt.Errorf("%s: %w", p, err))
		}
		results[strings.TrimSuffix(filepath.Base(p), ".csv")] = res
	}

	ranked := analysis.RankByPNL(results)
	fmt.Printf("%-4s %-18s %-8s %-6s %-6s %-12s %-10s\n", "rank", "series", "steps", "buys", "sells", "pnl$", "max_dd")
	for i, r := range ranked {
		fmt.Printf(
			"%-4d %-18s %-8d %-6d %-6d %-12s %-10.4f\n",
			i+1,
			r.Name,
			r.Steps,
			r.Buys,
			r.Sells+r.ForcedExits,
			backtest.FormatMoney(r.TotalPNL),
			r.MaxDrawdown,
		)
	}
}

func cmdCheck(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	_ = fs.Parse(args)

	if failed := scenarios.Run(os.Stdout, scenarios.All()); failed > 0 {
		os.Exit(1)
	}
}
