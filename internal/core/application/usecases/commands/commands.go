// Package commands contains the workflows that modify customers and orders.
// Every command follows the same pattern: a guarded command object built from raw caller
// input (identifiers are parsed here, before any store access), and a handler that enforces
// the business rules on top of the record store.
package commands

import (
	"errors"
	"log/slog"
	"time"

	"customerorder/internal/pkg/errs"
)

// Clock returns the current time. Stored timestamps have millisecond precision.
type Clock func() time.Time

// SystemClock is the wall clock in UTC, truncated to what the store keeps.
func SystemClock() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func logOutcome(logger *slog.Logger, msg string, err error, attrs ...any) {
	attrs = append(attrs, "error", err)
	if errs.IsClientError(err) {
		logger.Warn(msg, attrs...)
		return
	}
	logger.Error(msg, attrs...)
}

// storeFailure keeps client-kind store errors (duplicates, missing rows) as they are and
// wraps anything else as a server-side failure of op.
func storeFailure(op string, err error) error {
	if errs.IsClientError(err) || errors.Is(err, errs.ErrStoreFailure) {
		return err
	}
	return errs.NewStoreFailureError(op, err)
}
