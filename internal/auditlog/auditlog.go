// Package auditlog appends one CSV row per ledger-mutating command, so the
// snapshot history can be cross-checked against what was asked of the CLI.
package auditlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Entry is one row in the audit log.
type Entry struct {
	ID        string // random, unlike per-account transaction ids
	Timestamp time.Time
	UserID    int
	Action    string // deposit, withdraw, transfer, register, ...
	Details   string
	Outcome   string // "ok" or the rejection reason
}

// NewEntry stamps an entry with a fresh id and the current time.
func NewEntry(userID int, action, details, outcome string) Entry {
	return Entry{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		UserID:    userID,
		Action:    action,
		Details:   details,
		Outcome:   outcome,
	}
}

// Header is the CSV header for audit-log.csv.
const Header = "id,timestamp,user_id,action,details,outcome"

const (
	numFields    = 6
	logDir       = "logs"
	logFile      = "logs/audit-log.csv"
	colID        = 0
	colTimestamp = 1
	colUserID    = 2
	colAction    = 3
	colDetails   = 4
	colOutcome   = 5
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colID] = e.ID
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colUserID] = strconv.Itoa(e.UserID)
	row[colAction] = e.Action
	row[colDetails] = e.Details
	row[colOutcome] = e.Outcome
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	userID, err := strconv.Atoi(record[colUserID])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing user_id %q: %w", record[colUserID], err)
	}

	return Entry{
		ID:        record[colID],
		Timestamp: ts,
		UserID:    userID,
		Action:    record[colAction],
		Details:   record[colDetails],
		Outcome:   record[colOutcome],
	}, nil
}

// Append writes entries to <root>/logs/audit-log.csv, creating the file and
// header if needed.
func Append(root string, entries []Entry) error {
	dir := filepath.Join(root, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(root, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from <root>/logs/audit-log.csv.
// Returns an empty slice if the file does not exist.
func Read(root string) ([]Entry, error) {
	path := filepath.Join(root, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading audit log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
