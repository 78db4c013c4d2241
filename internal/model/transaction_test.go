package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestNew(t *testing.T) {
	now := time.Now()
	tx, err := New(1, dec("25.50"), KindDeposit, now, "USD")
	require.NoError(t, err)

	assert.Equal(t, 1, tx.ID())
	assert.True(t, tx.Amount().Equal(dec("25.50")))
	assert.Equal(t, KindDeposit, tx.Kind())
	assert.True(t, tx.Timestamp().Equal(now))
	assert.Equal(t, "USD", tx.Currency())
}

func TestNewValidation(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		id       int
		kind     string
		ts       time.Time
		currency string
		wantErr  error
	}{
		{"zero id", 0, KindDeposit, now, "USD", ErrBadID},
		{"negative id", -3, KindDeposit, now, "USD", ErrBadID},
		{"empty kind", 1, "", now, "USD", ErrEmptyKind},
		{"blank kind", 1, "   \t", now, "USD", ErrEmptyKind},
		{"zero timestamp", 1, KindWithdraw, time.Time{}, "USD", ErrZeroTimestamp},
		{"empty currency", 1, KindWithdraw, now, "", ErrEmptyCurrency},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.id, dec("1"), tt.kind, tt.ts, tt.currency)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDetail(t *testing.T) {
	tx, err := New(2, dec("91.08"), TransferFromKind(1), time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), "EUR")
	require.NoError(t, err)

	detail := tx.Detail()
	assert.Contains(t, detail, "91.08")
	assert.Contains(t, detail, "EUR")
	assert.Contains(t, detail, "transfer_from_1")
	assert.Contains(t, detail, "2025-03-01")
}

func TestExportRoundTrip(t *testing.T) {
	now := time.Now()
	tx, err := New(7, dec("120.45"), TransferToKind(3), now, "UAN")
	require.NoError(t, err)

	got, err := FromExport(tx.Export())
	require.NoError(t, err)

	assert.Equal(t, tx.ID(), got.ID())
	assert.True(t, got.Amount().Equal(tx.Amount()))
	assert.Equal(t, tx.Kind(), got.Kind())
	assert.Equal(t, tx.Currency(), got.Currency())
	// Timestamps survive to second precision.
	assert.True(t, got.Timestamp().Equal(now.Truncate(time.Second)))
}

func TestFromExportRevalidates(t *testing.T) {
	e := Export{TransactionID: 1, Amount: dec("5"), Type: "  ", Currency: "USD", TimeStamp: "2025-01-02T10:00:00Z"}
	_, err := FromExport(e)
	assert.ErrorIs(t, err, ErrEmptyKind)

	e = Export{TransactionID: 1, Amount: dec("5"), Type: KindDeposit, Currency: "USD", TimeStamp: "not-a-time"}
	_, err = FromExport(e)
	assert.Error(t, err)
}
