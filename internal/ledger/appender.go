// Package ledger appends accepted transactions to the bank's ordered,
// append-only log stream.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"ledgerwriter/internal/models"
)

// ErrAppend is returned when the log store is unreachable or rejects the
// write. The caller must surface the failure; retrying here could
// double-append a transaction that actually succeeded.
var ErrAppend = errors.New("ledger append failed")

// Entry field names, fixed so readers in any language can decode the stream.
const (
	FieldFromAccountNum = "fromAccountNum"
	FieldFromRoutingNum = "fromRoutingNum"
	FieldToAccountNum   = "toAccountNum"
	FieldToRoutingNum   = "toRoutingNum"
	FieldAmount         = "amount"
	FieldTimestamp      = "timestamp"
)

// Appender durably appends a transaction to the log and returns the sequence
// position the log assigned to it. Appends are never deduplicated: the same
// payload submitted twice yields two entries with distinct positions.
type Appender interface {
	Append(ctx context.Context, tx *models.Transaction) (string, error)
}

// EntryValues encodes a transaction as the named string values written per
// log entry. Every value is a string so non-Go readers can decode entries
// without sharing a binary format.
func EntryValues(tx *models.Transaction) map[string]interface{} {
	return map[string]interface{}{
		FieldFromAccountNum: tx.FromAccountNum,
		FieldFromRoutingNum: tx.FromRoutingNum,
		FieldToAccountNum:   tx.ToAccountNum,
		FieldToRoutingNum:   tx.ToRoutingNum,
		FieldAmount:         strconv.FormatInt(tx.Amount, 10),
		FieldTimestamp:      strconv.FormatFloat(tx.Timestamp, 'g', -1, 64),
	}
}

// ParseEntry decodes the string values of a log entry back into a
// transaction. Used by stream readers; round-trips EntryValues exactly.
func ParseEntry(values map[string]string) (*models.Transaction, error) {
	amount, err := strconv.ParseInt(values[FieldAmount], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse entry amount %q: %w", values[FieldAmount], err)
	}
	timestamp, err := strconv.ParseFloat(values[FieldTimestamp], 64)
	if err != nil {
		return nil, fmt.Errorf("parse entry timestamp %q: %w", values[FieldTimestamp], err)
	}
	return &models.Transaction{
		FromAccountNum: values[FieldFromAccountNum],
		FromRoutingNum: values[FieldFromRoutingNum],
		ToAccountNum:   values[FieldToAccountNum],
		ToRoutingNum:   values[FieldToRoutingNum],
		Amount:         amount,
		Timestamp:      timestamp,
	}, nil
}
