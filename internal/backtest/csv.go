package backtest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// DefaultLedgerPath is where the CLI writes the results table.
const DefaultLedgerPath = "trading_results.csv"

// ledgerRecord is the on-disk shape of the results table.
// Signal is written as -1/0/1, not its String form.
type ledgerRecord struct {
	Date         string  `csv:"Date"`
	Signal       int     `csv:"Signal"`
	Position     int     `csv:"Position"`
	AccountValue float64 `csv:"Account Value"`
}

func toRecords(ledger []LedgerRow) []*ledgerRecord {
	out := make([]*ledgerRecord, len(ledger))
	for i, r := range ledger {
		out[i] = &ledgerRecord{
			Date:         r.Date,
			Signal:       int(r.Signal),
			Position:     r.Position,
			AccountValue: r.AccountValue,
		}
	}
	return out
}

// EncodeLedgerCSV writes the Date/Signal/Position/Account Value table to w.
func EncodeLedgerCSV(w io.Writer, ledger []LedgerRow) error {
	records := toRecords(ledger)
	return gocsv.Marshal(&records, w)
}

// WriteLedgerCSV persists the ledger at path, creating parent directories.
func WriteLedgerCSV(path string, ledger []LedgerRow) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := EncodeLedgerCSV(f, ledger); err != nil {
		return fmt.Errorf("write ledger %s: %w", path, err)
	}
	return f.Close()
}
