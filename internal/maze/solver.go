package maze

import (
	"quantlab/internal/model"
)

// ExampleGrid is the built-in demonstration grid; its answer is 7.
func ExampleGrid() model.EnergyGrid {
	return model.EnergyGrid{
		{-2, -3, 3},
		{-5, -10, 1},
		{10, 30, -5},
	}
}

// Solve validates grid and returns its minimum initial energy.
func Solve(grid model.EnergyGrid) (int, error) {
	if err := grid.Validate(); err != nil {
		return 0, err
	}
	return MinInitialEnergy(grid), nil
}

// MinInitialEnergy returns the smallest starting energy that keeps a
// right/down walk from the top-left to the bottom-right cell strictly
// positive after every cell's delta is applied. The grid must be
// rectangular with at least one cell.
//
// dp[i][j] is the energy needed on entering (i,j), filled from the
// destination back to the origin. The result is then raised to 1-sum(grid)
// when that total-deficit bound is larger.
func MinInitialEnergy(grid model.EnergyGrid) int {
	m, n := grid.Rows(), grid.Cols()

	dp := make([][]int, m)
	for i := range dp {
		dp[i] = make([]int, n)
	}

	for i := m - 1; i >= 0; i-- {
		for j := n - 1; j >= 0; j-- {
			cell := grid[i][j]
			if i == m-1 && j == n-1 {
				dp[i][j] = max1(1 - cell)
				continue
			}

			best := 0
			found := false
			if i < m-1 {
				best, found = max1(dp[i+1][j]-cell), true
			}
			if j < n-1 {
				right := max1(dp[i][j+1] - cell)
				if !found || right < best {
					best = right
				}
			}
			dp[i][j] = best
		}
	}

	energy := max1(dp[0][0])
	if deficit := 1 - grid.Sum(); deficit > energy {
		energy = deficit
	}
	return energy
}

func max1(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
