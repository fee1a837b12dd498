package maze

import (
	"testing"

	"quantlab/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinInitialEnergy_Scenarios(t *testing.T) {
	cases := []struct {
		name string
		grid model.EnergyGrid
		want int
	}{
		{"example", ExampleGrid(), 7},
		{"generic", model.EnergyGrid{{0, -2, -3}, {-1, -2, -2}, {-1, -1, -1}}, 14},
		{"all negative", model.EnergyGrid{{-1, -1, -1}, {-1, -1, -1}, {-1, -1, -1}}, 10},
		{"single positive cell", model.EnergyGrid{{5}}, 1},
		{"single negative cell", model.EnergyGrid{{-5}}, 6},
		{"single zero cell", model.EnergyGrid{{0}}, 1},
		{"one row", model.EnergyGrid{{-1, 2, -4}}, 4},
		{"one column", model.EnergyGrid{{3}, {-6}, {1}}, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MinInitialEnergy(tc.grid))
		})
	}
}

func TestMinInitialEnergy_AllPositiveIsOne(t *testing.T) {
	grids := []model.EnergyGrid{
		{{1}},
		{{1, 2}, {3, 4}},
		{{7, 1, 9}, {2, 8, 3}},
		{{100}, {1}, {1}, {1}},
	}
	for _, g := range grids {
		assert.Equal(t, 1, MinInitialEnergy(g), "grid %v", g)
	}
}

func TestMinInitialEnergy_AtLeastOne(t *testing.T) {
	grids := []model.EnergyGrid{
		{{50, -1}, {-1, 50}},
		{{0, 0}, {0, 0}},
		{{-3, 40}, {20, -3}},
		{{10, -30, 5}, {-2, 7, -9}, {4, -1, 0}},
	}
	for _, g := range grids {
		assert.GreaterOrEqual(t, MinInitialEnergy(g), 1, "grid %v", g)
	}
}

func TestMinInitialEnergy_DoesNotMutate(t *testing.T) {
	g := ExampleGrid()
	MinInitialEnergy(g)
	assert.Equal(t, ExampleGrid(), g)
}

func TestSolve_Validates(t *testing.T) {
	_, err := Solve(nil)
	require.ErrorIs(t, err, model.ErrEmptyGrid)

	_, err = Solve(model.EnergyGrid{{1, 2}, {3}})
	var ragged *model.RaggedRowError
	require.ErrorAs(t, err, &ragged)
	assert.Equal(t, 2, ragged.Row)
	assert.Equal(t, 2, ragged.Want)
	assert.Equal(t, 1, ragged.Got)

	got, err := Solve(ExampleGrid())
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}
