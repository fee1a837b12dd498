package data

import (
	"errors"
	"os"

	"quantlab/internal/model"

	"gopkg.in/yaml.v3"
)

type gridFile struct {
	Grid [][]int `yaml:"grid"`
}

// LoadGridFile reads a YAML file of the form `grid: [[...], ...]`.
func LoadGridFile(path string) (model.EnergyGrid, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, missing(path)
		}
		return nil, err
	}
	var f gridFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, &ShapeError{Source: path, Field: "grid", Reason: err.Error()}
	}
	grid, err := model.NewEnergyGrid(f.Grid)
	if err != nil {
		var ragged *model.RaggedRowError
		if errors.As(err, &ragged) {
			return nil, &ShapeError{Source: path, Field: "grid", Row: ragged.Row, Reason: err.Error()}
		}
		return nil, &ShapeError{Source: path, Field: "grid", Reason: err.Error()}
	}
	return grid, nil
}
