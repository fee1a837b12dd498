package config

import (
	"errors"
	"fmt"
	"os"

	"quantlab/internal/backtest"
	"quantlab/internal/maze"
	"quantlab/internal/model"
	"quantlab/internal/strategy"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk run configuration (YAML).
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Output     OutputConfig     `yaml:"output"`
	Maze       MazeConfig       `yaml:"maze"`
}

type SimulationConfig struct {
	InitialCash float64 `yaml:"initial_cash"`
	TradeLot    int     `yaml:"trade_lot"`
	MaxLots     int     `yaml:"max_lots"`
}

type OutputConfig struct {
	LedgerCSV       string `yaml:"ledger_csv"`
	ChartPNG        string `yaml:"chart_png"`
	SmoothingWindow int    `yaml:"smoothing_window"`
}

type MazeConfig struct {
	ExampleGrid [][]int `yaml:"example_grid"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Simulation: DefaultSimulation(),
		Output: OutputConfig{
			LedgerCSV:       backtest.DefaultLedgerPath,
			SmoothingWindow: 5,
		},
		Maze: MazeConfig{ExampleGrid: maze.ExampleGrid()},
	}
}

func DefaultSimulation() SimulationConfig {
	p := backtest.DefaultParams()
	return SimulationConfig{
		InitialCash: p.InitialCash,
		TradeLot:    p.Rule.TradeLot,
		MaxLots:     p.Rule.MaxLots,
	}
}

// Load reads path, fills unset fields with defaults and validates.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked parses path without defaults or validation.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	d := Default()
	c.Simulation = MergeSimulation(d.Simulation, c.Simulation)
	if c.Output.LedgerCSV == "" {
		c.Output.LedgerCSV = d.Output.LedgerCSV
	}
	if c.Output.SmoothingWindow == 0 {
		c.Output.SmoothingWindow = d.Output.SmoothingWindow
	}
	if len(c.Maze.ExampleGrid) == 0 {
		c.Maze.ExampleGrid = d.Maze.ExampleGrid
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.Simulation.ToParams().Validate(); err != nil {
		return fmt.Errorf("simulation config invalid: %w", err)
	}
	if c.Output.SmoothingWindow < 1 {
		return fmt.Errorf("output.smoothing_window must be >= 1, got %d", c.Output.SmoothingWindow)
	}
	if err := model.EnergyGrid(c.Maze.ExampleGrid).Validate(); err != nil {
		return fmt.Errorf("maze.example_grid invalid: %w", err)
	}
	return nil
}

func (s SimulationConfig) ToParams() backtest.Params {
	return backtest.Params{
		InitialCash: s.InitialCash,
		Rule: strategy.Params{
			TradeLot: s.TradeLot,
			MaxLots:  s.MaxLots,
		},
	}
}

// MergeSimulation overlays non-zero fields from override onto base.
func MergeSimulation(base, override SimulationConfig) SimulationConfig {
	out := base
	if override.InitialCash != 0 {
		out.InitialCash = override.InitialCash
	}
	if override.TradeLot != 0 {
		out.TradeLot = override.TradeLot
	}
	if override.MaxLots != 0 {
		out.MaxLots = override.MaxLots
	}
	return out
}
