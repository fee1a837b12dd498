package maze

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"quantlab/internal/model"
)

// Prompt reads a grid interactively: the row count, the column count, then
// each row as space-separated integers.
type Prompt struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: bufio.NewScanner(in), out: out}
}

// ReadGrid asks for dimensions and rows. A row whose length differs from the
// declared column count is rejected with its 1-based row number.
func (p *Prompt) ReadGrid() (model.EnergyGrid, error) {
	m, err := p.readDim("rows", "Enter the number of rows (m): ")
	if err != nil {
		return nil, err
	}
	n, err := p.readDim("columns", "Enter the number of columns (n): ")
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(p.out, "Enter the maze values row by row (space-separated integers):")
	grid := make(model.EnergyGrid, 0, m)
	for i := 0; i < m; i++ {
		line, err := p.readLine(fmt.Sprintf("Row %d: ", i+1))
		if err != nil {
			return nil, err
		}
		row, err := ParseRow(line)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if len(row) != n {
			return nil, &model.RaggedRowError{Row: i + 1, Want: n, Got: len(row)}
		}
		grid = append(grid, row)
	}
	return grid, nil
}

func (p *Prompt) readDim(name, label string) (int, error) {
	line, err := p.readLine(label)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", name, line)
	}
	if v < 1 {
		return 0, fmt.Errorf("%s: must be at least 1, got %d", name, v)
	}
	return v, nil
}

func (p *Prompt) readLine(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", errors.New("unexpected end of input")
	}
	return p.in.Text(), nil
}

// ParseRow splits a line of whitespace-separated integers.
func ParseRow(line string) ([]int, error) {
	fields := strings.Fields(line)
	row := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("value %d (%q) is not an integer", i+1, f)
		}
		row[i] = v
	}
	return row, nil
}
