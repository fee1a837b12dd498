package handlers

import (
	"net/http"

	"quantlab/internal/api/models"
	"quantlab/internal/config"
	"quantlab/internal/strategy"

	"github.com/gin-gonic/gin"
)

// RulesHandler describes the trading rule.
type RulesHandler struct {
	sim config.SimulationConfig
}

func NewRulesHandler(sim config.SimulationConfig) *RulesHandler {
	return &RulesHandler{sim: sim}
}

// ListRules handles GET /api/v1/rules
func (h *RulesHandler) ListRules(c *gin.Context) {
	rule := strategy.NewRule(h.sim.ToParams().Rule)
	rules := []models.RuleInfo{
		{
			Name: rule.Name(),
			Description: "Buys one lot after four strictly rising closes while below the share cap, " +
				"sells the whole position after three strictly falling closes, " +
				"and liquidates any remaining position on the last close.",
			Parameters: []models.ParameterInfo{
				{
					Name:        "initial_cash",
					Type:        "float",
					Description: "Starting cash balance",
					Default:     h.sim.InitialCash,
				},
				{
					Name:        "trade_lot",
					Type:        "int",
					Description: "Shares bought per buy signal",
					Default:     h.sim.TradeLot,
				},
				{
					Name:        "max_lots",
					Type:        "int",
					Description: "Position cap in lots (max shares = trade_lot * max_lots)",
					Default:     h.sim.MaxLots,
				},
			},
		},
	}
	c.JSON(http.StatusOK, gin.H{"rules": rules})
}
