package model

import "fmt"

// EnergyGrid holds per-cell energy deltas, indexed [row][column].
type EnergyGrid [][]int

// NewEnergyGrid validates rows and returns them as a grid.
func NewEnergyGrid(rows [][]int) (EnergyGrid, error) {
	g := EnergyGrid(rows)
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g EnergyGrid) Rows() int { return len(g) }

func (g EnergyGrid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Validate requires at least one row and one column, and every row to have
// the same length as the first.
func (g EnergyGrid) Validate() error {
	if len(g) == 0 || len(g[0]) == 0 {
		return ErrEmptyGrid
	}
	want := len(g[0])
	for i, row := range g {
		if len(row) != want {
			return &RaggedRowError{Row: i + 1, Want: want, Got: len(row)}
		}
	}
	return nil
}

// Sum adds every cell.
func (g EnergyGrid) Sum() int {
	total := 0
	for _, row := range g {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// String renders the grid one row per line, columns right-aligned.
func (g EnergyGrid) String() string {
	width := 1
	for _, row := range g {
		for _, v := range row {
			if w := len(fmt.Sprint(v)); w > width {
				width = w
			}
		}
	}
	out := ""
	for _, row := range g {
		out += "["
		for j, v := range row {
			if j > 0 {
				out += " "
			}
			out += fmt.Sprintf("%*d", width, v)
		}
		out += "]\n"
	}
	return out
}
