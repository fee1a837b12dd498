package models

// SimulateResponse is returned by POST /api/v1/simulate.
type SimulateResponse struct {
	ID      string            `json:"id"`
	Status  string            `json:"status"`
	Summary SimulationSummary `json:"summary"`
	Ledger  []LedgerRow       `json:"ledger,omitempty"`
}

// SimulationSummary contains aggregated results of one run.
type SimulationSummary struct {
	Steps       int     `json:"steps"`
	InitialCash float64 `json:"initial_cash"`
	FinalValue  float64 `json:"final_value"`
	TotalPNL    float64 `json:"total_pnl"`
	TotalPNLFmt string  `json:"total_pnl_display"` // "$-30.00"
	Buys        int     `json:"buys"`
	Sells       int     `json:"sells"`
	ForcedExits int     `json:"forced_exits"`
	PeakValue   float64 `json:"peak_value"`
	MaxDrawdown float64 `json:"max_drawdown"`
	MeanReturn  float64 `json:"mean_return"`
	StdReturn   float64 `json:"std_return"`
}

// LedgerRow is one step of the simulation output.
type LedgerRow struct {
	Index        int     `json:"index"`
	Date         string  `json:"date"`
	Price        float64 `json:"price"`
	Signal       int     `json:"signal"` // 1 buy, 0 hold, -1 sell
	Reason       string  `json:"reason"`
	Position     int     `json:"position"`
	Cash         float64 `json:"cash"`
	AccountValue float64 `json:"account_value"`
	SmoothedPNL  float64 `json:"smoothed_pnl"`
}

// LedgerResponse is returned by GET /api/v1/simulate/:id/ledger.
type LedgerResponse struct {
	ID     string      `json:"id"`
	Ledger []LedgerRow `json:"ledger"`
}

// MazeResponse is returned by the maze endpoints.
type MazeResponse struct {
	Grid             [][]int `json:"grid"`
	Rows             int     `json:"rows"`
	Cols             int     `json:"cols"`
	MinInitialEnergy int     `json:"min_initial_energy"`
}

// RuleInfo describes the trading rule and its parameters.
type RuleInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  []ParameterInfo `json:"parameters"`
}

// ParameterInfo describes a rule parameter
type ParameterInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"` // "float", "int"
	Description string      `json:"description"`
	Default     interface{} `json:"default,omitempty"`
}

// DatasetInfo is a price file the server can simulate by name.
type DatasetInfo struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
