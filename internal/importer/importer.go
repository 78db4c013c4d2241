// Package importer replays bank statement CSV rows against an account
// through the ledger engine, so imported history obeys the same validation
// as interactive commands.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bankbook-dev/bankbook/internal/ledger"
	"github.com/bankbook-dev/bankbook/internal/model"
)

// Row is one parsed statement line.
type Row struct {
	Date     time.Time
	Type     string // deposit or withdraw
	Amount   decimal.Decimal
	Currency string
}

// Header is the expected statement CSV header.
const Header = "date,type,amount,currency"

const (
	numFields   = 4
	dateFormat  = "2006-01-02"
	colDate     = 0
	colType     = 1
	colAmount   = 2
	colCurrency = 3
)

// ReadRows parses a statement CSV, skipping the header row.
func ReadRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var rows []Row
	for i, rec := range records[1:] {
		row, err := unmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func unmarshalRow(record []string) (Row, error) {
	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return Row{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return Row{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	return Row{
		Date:     date,
		Type:     record[colType],
		Amount:   amount,
		Currency: record[colCurrency],
	}, nil
}

// Apply replays rows against the account. Engine rejections are collected
// per row and do not stop the run; the returned count covers applied rows
// only.
func Apply(acct *ledger.Account, rows []Row) (applied int, rejected []error) {
	for i, row := range rows {
		var err error
		switch row.Type {
		case model.KindDeposit:
			err = acct.Deposit(row.Amount, row.Currency)
		case model.KindWithdraw:
			err = acct.Withdraw(row.Amount, row.Currency)
		default:
			err = fmt.Errorf("unknown statement type %q", row.Type)
		}
		if err != nil {
			rejected = append(rejected, fmt.Errorf("row %d (%s): %w", i+1, row.Date.Format(dateFormat), err))
			continue
		}
		applied++
	}
	return applied, rejected
}

// FileInfo describes a statement CSV in the import directory.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

const importDir = "import"

const processedDir = "import/processed"

// Scan returns CSV files in <root>/import/.
func Scan(root string) ([]FileInfo, error) {
	dir := filepath.Join(root, importDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading import dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

// MarkProcessed moves a file from import/ to import/processed/.
func MarkProcessed(root, fileName string) error {
	src := filepath.Join(root, importDir, fileName)
	dstDir := filepath.Join(root, processedDir)

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}

	dst := filepath.Join(dstDir, fileName)
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("moving %s to processed: %w", fileName, err)
	}
	return nil
}
