package materializer

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/vantagecare/practice-backend/internal/domain/flow"
)

var (
	// ErrConflict indicates an optimistic concurrency conflict.
	ErrConflict = errors.New("materializer conflict")
	// ErrRetryable indicates a transient retryable failure.
	ErrRetryable = errors.New("materializer retryable")
)

// ConflictError tags an error as a concurrency conflict.
func ConflictError(msg string) error {
	return errors.Join(ErrConflict, errors.New(strings.TrimSpace(msg)))
}

// RetryableError tags an error as a transient failure.
func RetryableError(msg string) error {
	return errors.Join(ErrRetryable, errors.New(strings.TrimSpace(msg)))
}

// MapError classifies infrastructure failures into engine error codes so
// callers can decide between surfacing and a full re-decision retry.
func MapError(op string, err error) error {
	if err == nil {
		return nil
	}
	var fErr *flow.Error
	if errors.As(err, &fErr) {
		return err
	}
	switch {
	case errors.Is(err, ErrConflict):
		return flow.Wrap(flow.CodeConflict, op, err)
	case errors.Is(err, ErrRetryable):
		return flow.Wrap(flow.CodeRetryable, op, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return flow.Wrap(flow.CodeNotFound, op, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return flow.Wrap(flow.CodeRetryable, op, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch strings.TrimSpace(pgErr.Code) {
		case "23505":
			return flow.Wrap(flow.CodeConflict, op, err) // unique_violation
		case "23503":
			return flow.Wrap(flow.CodePreconditionFailed, op, err) // foreign_key_violation
		case "40001", "40P01", "55P03":
			return flow.Wrap(flow.CodeRetryable, op, err) // serialization/deadlock/lock_not_available
		}
	}

	msg := strings.ToLower(strings.TrimSpace(err.Error()))
	switch {
	case strings.Contains(msg, "duplicate key"), strings.Contains(msg, "already exists"):
		return flow.Wrap(flow.CodeConflict, op, err)
	case strings.Contains(msg, "deadlock"),
		strings.Contains(msg, "serialization"),
		strings.Contains(msg, "timeout"),
		strings.Contains(msg, "temporar"):
		return flow.Wrap(flow.CodeRetryable, op, err)
	default:
		return flow.Wrap(flow.CodeInternal, op, err)
	}
}
