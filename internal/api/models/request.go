package models

// SimulateRequest is the body of POST /api/v1/simulate. Exactly one of
// Prices or Dataset must be set.
type SimulateRequest struct {
	Prices  []PricePoint      `json:"prices,omitempty"`
	Dataset string            `json:"dataset,omitempty"` // CSV name under the server data dir
	Params  *SimulationParams `json:"params,omitempty"`
	Options SimulateOptions   `json:"options,omitempty"`
}

// PricePoint is one input row; Price is required and Date is a free label.
type PricePoint struct {
	Date  string   `json:"date"`
	Price *float64 `json:"price"`
}

// SimulationParams overrides the server's rule parameters. Zero fields keep
// the server value.
type SimulationParams struct {
	InitialCash float64 `json:"initial_cash,omitempty"`
	TradeLot    int     `json:"trade_lot,omitempty"`
	MaxLots     int     `json:"max_lots,omitempty"`
}

type SimulateOptions struct {
	IncludeLedger   bool `json:"include_ledger,omitempty"`
	SmoothingWindow int  `json:"smoothing_window,omitempty"`
}

// MazeRequest is the body of POST /api/v1/maze.
type MazeRequest struct {
	Grid [][]int `json:"grid" binding:"required"`
}
