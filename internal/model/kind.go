package model

import (
	"strconv"
	"strings"
)

// Kinds of balance-affecting events. Transfer kinds carry the counterparty
// account id as a suffix, e.g. "transfer_to_42" on the debit leg and
// "transfer_from_7" on the credit leg.
const (
	KindDeposit  = "deposit"
	KindWithdraw = "withdraw"

	transferToPrefix   = "transfer_to_"
	transferFromPrefix = "transfer_from_"
)

// TransferToKind returns the debit-leg kind for a transfer to target.
func TransferToKind(target int) string {
	return transferToPrefix + strconv.Itoa(target)
}

// TransferFromKind returns the credit-leg kind for a transfer from source.
func TransferFromKind(source int) string {
	return transferFromPrefix + strconv.Itoa(source)
}

// ParseCounterparty extracts the counterparty account id from a transfer
// kind. ok is false for deposits, withdrawals, and malformed kinds.
func ParseCounterparty(kind string) (id int, ok bool) {
	var rest string
	switch {
	case strings.HasPrefix(kind, transferToPrefix):
		rest = strings.TrimPrefix(kind, transferToPrefix)
	case strings.HasPrefix(kind, transferFromPrefix):
		rest = strings.TrimPrefix(kind, transferFromPrefix)
	default:
		return 0, false
	}
	id, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return id, true
}
