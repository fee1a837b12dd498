package handlers

import (
	"errors"
	"log"
	"net/http"

	"quantlab/internal/api/models"
	"quantlab/internal/maze"
	"quantlab/internal/model"

	"github.com/gin-gonic/gin"
)

// MazeHandler solves energy-maze grids.
type MazeHandler struct {
	example model.EnergyGrid
}

// NewMazeHandler creates a maze handler serving example as the built-in grid.
func NewMazeHandler(example model.EnergyGrid) *MazeHandler {
	if len(example) == 0 {
		example = maze.ExampleGrid()
	}
	return &MazeHandler{example: example}
}

// Solve handles POST /api/v1/maze
func (h *MazeHandler) Solve(c *gin.Context) {
	var req models.MazeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
		return
	}

	grid := model.EnergyGrid(req.Grid)
	energy, err := maze.Solve(grid)
	if err != nil {
		var details map[string]interface{}
		var ragged *model.RaggedRowError
		if errors.As(err, &ragged) {
			details = map[string]interface{}{"row": ragged.Row, "want": ragged.Want, "got": ragged.Got}
		}
		writeError(c, http.StatusBadRequest, "INVALID_GRID", err.Error(), details)
		return
	}
	log.Printf("MazeHandler: solved %dx%d grid, min initial energy %d", grid.Rows(), grid.Cols(), energy)
	c.JSON(http.StatusOK, mazeResponse(grid, energy))
}

// Example handles GET /api/v1/maze/example
func (h *MazeHandler) Example(c *gin.Context) {
	c.JSON(http.StatusOK, mazeResponse(h.example, maze.MinInitialEnergy(h.example)))
}

func mazeResponse(grid model.EnergyGrid, energy int) models.MazeResponse {
	return models.MazeResponse{
		Grid:             grid,
		Rows:             grid.Rows(),
		Cols:             grid.Cols(),
		MinInitialEnergy: energy,
	}
}
