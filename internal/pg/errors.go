package pg

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrConcurrentUpdate is returned by conditional updates that matched no row
// because another transaction changed it first. TXManager retries on it.
var ErrConcurrentUpdate = errors.New("row changed by a concurrent transaction")

const (
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
	sqlStateLockNotAvailable     = "55P03"
	sqlStateQueryCanceled        = "57014"
	sqlClassConnectionException  = "08"
)

// IsRetryable reports whether err is a conflict the whole transaction may be retried on.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrConcurrentUpdate) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case sqlStateSerializationFailure, sqlStateDeadlockDetected, sqlStateLockNotAvailable, sqlStateQueryCanceled:
			return true
		}
		return strings.HasPrefix(pgErr.Code, sqlClassConnectionException)
	}
	return pgconn.SafeToRetry(err)
}
