package data

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"quantlab/internal/model"

	"github.com/gocarina/gocsv"
)

// Required columns of a price file. Other columns are ignored.
const (
	DateColumn  = "Date"
	CloseColumn = "Close"
)

type priceRecord struct {
	Date  string `csv:"Date"`
	Close string `csv:"Close"`
}

// LoadPriceCSV reads a Date/Close CSV file into a series.
func LoadPriceCSV(path string) (model.PriceSeries, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, missing(path)
		}
		return nil, err
	}
	return DecodePriceCSV(raw, path)
}

// DecodePriceCSV parses CSV bytes. source names the input in errors.
func DecodePriceCSV(raw []byte, source string) (model.PriceSeries, error) {
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))

	header, err := csv.NewReader(bytes.NewReader(raw)).Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ShapeError{Source: source, Reason: "file is empty"}
		}
		return nil, &ShapeError{Source: source, Reason: err.Error()}
	}
	for _, col := range []string{DateColumn, CloseColumn} {
		if !hasColumn(header, col) {
			return nil, &ShapeError{Source: source, Field: col, Reason: "CSV file must contain 'Date' and 'Close' columns"}
		}
	}

	var records []*priceRecord
	if err := gocsv.UnmarshalBytes(raw, &records); err != nil {
		return nil, &ShapeError{Source: source, Reason: err.Error()}
	}
	if len(records) == 0 {
		return nil, &ShapeError{Source: source, Reason: "no data rows"}
	}

	series := make(model.PriceSeries, len(records))
	for i, r := range records {
		price, err := strconv.ParseFloat(strings.TrimSpace(r.Close), 64)
		if err != nil {
			return nil, &ShapeError{Source: source, Field: CloseColumn, Row: i + 1, Reason: "not a number: " + strconv.Quote(r.Close)}
		}
		series[i] = model.PricePoint{Date: strings.TrimSpace(r.Date), Price: price}
	}
	if err := series.Validate(); err != nil {
		return nil, &ShapeError{Source: source, Field: CloseColumn, Reason: err.Error()}
	}
	return series, nil
}

func hasColumn(header []string, name string) bool {
	for _, h := range header {
		if strings.TrimSpace(h) == name {
			return true
		}
	}
	return false
}
