package materializer

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/vantagecare/practice-backend/internal/domain/flow"
)

func TestMapErrorNil(t *testing.T) {
	if got := MapError("test.op", nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestMapErrorKeepsTypedErrors(t *testing.T) {
	orig := flow.NewError(flow.CodeValidation, "test.op", "bad input", nil)
	got := MapError("other.op", orig)
	if !errors.Is(got, orig) {
		t.Fatalf("typed errors must pass through unchanged, got %v", got)
	}
}

func TestMapErrorSentinels(t *testing.T) {
	if got := MapError("test.op", ConflictError("stale")); !flow.IsCode(got, flow.CodeConflict) {
		t.Fatalf("conflict sentinel: %v", got)
	}
	if got := MapError("test.op", RetryableError("busy")); !flow.IsCode(got, flow.CodeRetryable) {
		t.Fatalf("retryable sentinel: %v", got)
	}
}

func TestMapErrorGormNotFound(t *testing.T) {
	got := MapError("test.op", gorm.ErrRecordNotFound)
	if !flow.IsCode(got, flow.CodeNotFound) {
		t.Fatalf("record not found: %v", got)
	}
}

func TestMapErrorContextErrorsAreRetryable(t *testing.T) {
	for _, err := range []error{context.Canceled, context.DeadlineExceeded} {
		if got := MapError("test.op", err); !flow.IsCode(got, flow.CodeRetryable) {
			t.Fatalf("%v: got %v", err, got)
		}
	}
}

func TestMapErrorPostgresCodes(t *testing.T) {
	cases := []struct {
		sqlstate string
		want     flow.ErrorCode
	}{
		{"23505", flow.CodeConflict},
		{"23503", flow.CodePreconditionFailed},
		{"40001", flow.CodeRetryable},
		{"40P01", flow.CodeRetryable},
		{"55P03", flow.CodeRetryable},
		{"42703", flow.CodeInternal},
	}
	for _, tc := range cases {
		got := MapError("test.op", &pgconn.PgError{Code: tc.sqlstate})
		if !flow.IsCode(got, tc.want) {
			t.Fatalf("sqlstate %s: want=%s got=%v", tc.sqlstate, tc.want, got)
		}
	}
}

func TestMapErrorMessageFallbacks(t *testing.T) {
	cases := []struct {
		msg  string
		want flow.ErrorCode
	}{
		{"duplicate key value violates unique constraint", flow.CodeConflict},
		{"deadlock detected", flow.CodeRetryable},
		{"connection timeout", flow.CodeRetryable},
		{"something exploded", flow.CodeInternal},
	}
	for _, tc := range cases {
		got := MapError("test.op", errors.New(tc.msg))
		if !flow.IsCode(got, tc.want) {
			t.Fatalf("%q: want=%s got=%v", tc.msg, tc.want, got)
		}
	}
}

func TestRequireCASSuccess(t *testing.T) {
	if err := RequireCASSuccess(true, "whatever"); err != nil {
		t.Fatalf("true must be nil, got %v", err)
	}
	err := RequireCASSuccess(false, "challenge counters moved")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("false must be a conflict sentinel, got %v", err)
	}
	if got := MapError("test.op", err); !flow.IsCode(got, flow.CodeConflict) {
		t.Fatalf("mapped CAS failure: %v", got)
	}
}
