package backtest

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quantlab/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeLedgerCSV(t *testing.T) {
	res := Simulate(model.SeriesFromPrices(scenarioPrices))

	var buf bytes.Buffer
	require.NoError(t, EncodeLedgerCSV(&buf, res.Ledger))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, len(scenarioPrices)+1)
	assert.Equal(t, "Date,Signal,Position,Account Value", lines[0])
	assert.True(t, strings.HasPrefix(lines[4], "Day 4,1,10,"), lines[4])
	assert.True(t, strings.HasPrefix(lines[13], "Day 13,-1,0,"), lines[13])
}

func TestWriteLedgerCSV_CreatesDir(t *testing.T) {
	res := Simulate(model.SeriesFromPrices(scenarioPrices))
	path := filepath.Join(t.TempDir(), "results", "out.csv")

	require.NoError(t, WriteLedgerCSV(path, res.Ledger))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Account Value")
}
