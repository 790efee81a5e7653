package repository

import (
	"database/sql"
	"errors"

	"github.com/GoSim-25-26J-441/leadboard-backend/internal/board/domain"
	"github.com/lib/pq"
)

const (
	foreignKeyViolation    = "23503"
	numericValueOutOfRange = "22003"
)

func hasCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == code
}

func isForeignKeyViolation(err error) bool {
	return hasCode(err, foreignKeyViolation)
}

// isOutOfRange reports an id the key column cannot hold. Such a row cannot
// exist.
func isOutOfRange(err error) bool {
	return hasCode(err, numericValueOutOfRange)
}

// notFound maps an empty result or an unrepresentable id to
// domain.ErrNotFound and leaves every other error untouched.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) || isOutOfRange(err) {
		return domain.ErrNotFound
	}
	return err
}
