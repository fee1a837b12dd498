package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"quantlab/internal/analysis"
	"quantlab/internal/api/models"
	"quantlab/internal/backtest"
	"quantlab/internal/config"
	"quantlab/internal/data"
	"quantlab/internal/model"
	"quantlab/internal/store"

	"github.com/gin-gonic/gin"
)

// SimulateHandler runs the signal simulator and serves stored ledgers.
type SimulateHandler struct {
	results *store.ResultStore
	dataDir string
	sim     config.SimulationConfig
	window  int
}

// NewSimulateHandler creates a simulate handler. sim holds the server's
// default rule parameters; window is the default P&L smoothing window.
func NewSimulateHandler(results *store.ResultStore, dataDir string, sim config.SimulationConfig, window int) *SimulateHandler {
	if window < 1 {
		window = analysis.DefaultSmoothingWindow
	}
	return &SimulateHandler{results: results, dataDir: dataDir, sim: sim, window: window}
}

// RunSimulation handles POST /api/v1/simulate
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
		return
	}

	series, status, err := h.loadSeries(req)
	if err != nil {
		code := "INVALID_SERIES"
		if status == http.StatusNotFound {
			code = "NOT_FOUND"
		} else if status == http.StatusInternalServerError {
			code = "DATASET_ERROR"
		}
		writeError(c, status, code, err.Error(), nil)
		return
	}

	sim := h.sim
	if req.Params != nil {
		sim = config.MergeSimulation(sim, config.SimulationConfig{
			InitialCash: req.Params.InitialCash,
			TradeLot:    req.Params.TradeLot,
			MaxLots:     req.Params.MaxLots,
		})
	}

	res, err := backtest.New(sim.ToParams()).Run(series)
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_PARAMS", err.Error(), nil)
		return
	}
	id := h.results.Put(res)
	log.Printf("SimulateHandler: run %s over %d rows, total pnl %s", id, len(res.Ledger), backtest.FormatMoney(res.TotalPNL))

	window := h.window
	if req.Options.SmoothingWindow > 0 {
		window = req.Options.SmoothingWindow
	}
	resp := models.SimulateResponse{
		ID:      id,
		Status:  "completed",
		Summary: buildSummary(res),
	}
	if req.Options.IncludeLedger {
		resp.Ledger = convertLedger(res, window)
	}
	c.JSON(http.StatusOK, resp)
}

// GetLedger handles GET /api/v1/simulate/:id/ledger
func (h *SimulateHandler) GetLedger(c *gin.Context) {
	id := c.Param("id")
	entry, ok := h.results.Get(id)
	if !ok {
		writeError(c, http.StatusNotFound, "NOT_FOUND", fmt.Sprintf("no simulation with id %q (unknown or expired)", id), nil)
		return
	}
	c.JSON(http.StatusOK, models.LedgerResponse{
		ID:     entry.ID,
		Ledger: convertLedger(entry.Result, h.window),
	})
}

// loadSeries turns the request into a validated series. The returned status
// is the HTTP status to use when err is non-nil.
func (h *SimulateHandler) loadSeries(req models.SimulateRequest) (model.PriceSeries, int, error) {
	switch {
	case len(req.Prices) > 0 && req.Dataset != "":
		return nil, http.StatusBadRequest, errors.New("set either prices or dataset, not both")
	case req.Dataset != "":
		path, err := data.ResolveDataset(h.dataDir, req.Dataset)
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		series, err := data.LoadPriceCSV(path)
		switch {
		case errors.Is(err, data.ErrMissingSource):
			return nil, http.StatusNotFound, fmt.Errorf("dataset %q not found", req.Dataset)
		case data.IsShapeError(err):
			return nil, http.StatusBadRequest, err
		case err != nil:
			log.Printf("SimulateHandler: failed to load dataset %s: %v", path, err)
			return nil, http.StatusInternalServerError, err
		}
		return series, 0, nil
	case len(req.Prices) > 0:
		series := make(model.PriceSeries, len(req.Prices))
		for i, p := range req.Prices {
			if p.Price == nil {
				return nil, http.StatusBadRequest, fmt.Errorf("prices[%d]: price is required", i)
			}
			date := p.Date
			if date == "" {
				date = fmt.Sprintf("Day %d", i+1)
			}
			series[i] = model.PricePoint{Date: date, Price: *p.Price}
		}
		if err := series.Validate(); err != nil {
			return nil, http.StatusBadRequest, err
		}
		return series, 0, nil
	default:
		return nil, http.StatusBadRequest, model.ErrEmptySeries
	}
}

func buildSummary(res *backtest.Result) models.SimulationSummary {
	s := analysis.Summarize(res)
	return models.SimulationSummary{
		Steps:       s.Steps,
		InitialCash: s.InitialCash,
		FinalValue:  s.FinalValue,
		TotalPNL:    s.TotalPNL,
		TotalPNLFmt: "$" + backtest.FormatMoney(s.TotalPNL),
		Buys:        s.Buys,
		Sells:       s.Sells,
		ForcedExits: s.ForcedExits,
		PeakValue:   s.PeakValue,
		MaxDrawdown: s.MaxDrawdown,
		MeanReturn:  s.MeanReturn,
		StdReturn:   s.StdReturn,
	}
}

func convertLedger(res *backtest.Result, window int) []models.LedgerRow {
	smoothed := analysis.SmoothedPNL(res, window)
	out := make([]models.LedgerRow, len(res.Ledger))
	for i, row := range res.Ledger {
		out[i] = models.LedgerRow{
			Index:        row.Index,
			Date:         row.Date,
			Price:        row.Price,
			Signal:       int(row.Signal),
			Reason:       string(row.Reason),
			Position:     row.Position,
			Cash:         row.Cash,
			AccountValue: row.AccountValue,
			SmoothedPNL:  smoothed[i],
		}
	}
	return out
}
