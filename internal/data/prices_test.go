package data

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"quantlab/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadPriceCSV(t *testing.T) {
	path := writeFile(t, "aapl.csv", "Date,Open,Close,Volume\n2024-01-02,1,185.64,10\n2024-01-03,1,184.25,11\n")

	series, err := LoadPriceCSV(path)
	require.NoError(t, err)
	assert.Equal(t, model.PriceSeries{
		{Date: "2024-01-02", Price: 185.64},
		{Date: "2024-01-03", Price: 184.25},
	}, series)
}

func TestLoadPriceCSV_Missing(t *testing.T) {
	_, err := LoadPriceCSV(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingSource))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "nope.csv")
}

func TestDecodePriceCSV_MissingColumn(t *testing.T) {
	for _, tc := range []struct {
		body  string
		field string
	}{
		{"Date,Open\nx,1\n", CloseColumn},
		{"Day,Close\nx,1\n", DateColumn},
	} {
		_, err := DecodePriceCSV([]byte(tc.body), "in.csv")
		var se *ShapeError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, tc.field, se.Field)
		assert.Equal(t, "in.csv", se.Source)
	}
}

func TestDecodePriceCSV_BadPrice(t *testing.T) {
	_, err := DecodePriceCSV([]byte("Date,Close\nd1,1\nd2,oops\n"), "in.csv")
	var se *ShapeError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 2, se.Row)
	assert.Equal(t, CloseColumn, se.Field)
	assert.Contains(t, err.Error(), "row 2")
}

func TestDecodePriceCSV_Empty(t *testing.T) {
	_, err := DecodePriceCSV(nil, "in.csv")
	assert.True(t, IsShapeError(err))

	_, err = DecodePriceCSV([]byte("Date,Close\n"), "in.csv")
	assert.True(t, IsShapeError(err))
}

func TestDecodePriceCSV_BOM(t *testing.T) {
	series, err := DecodePriceCSV([]byte("\xef\xbb\xbfDate,Close\nd1,2.5\n"), "in.csv")
	require.NoError(t, err)
	assert.Equal(t, 2.5, series[0].Price)
}
