package analysis

import (
	"sort"

	"quantlab/internal/backtest"
)

type Ranked struct {
	Name string
	Summary
}

// RankByPNL summarizes each named result and sorts descending by total P&L.
// Ties keep name order.
func RankByPNL(results map[string]*backtest.Result) []Ranked {
	out := make([]Ranked, 0, len(results))
	for name, res := range results {
		out = append(out, Ranked{Name: name, Summary: Summarize(res)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalPNL != out[j].TotalPNL {
			return out[i].TotalPNL > out[j].TotalPNL
		}
		return out[i].Name < out[j].Name
	})
	return out
}
