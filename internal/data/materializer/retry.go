package materializer

import (
	"context"
	"time"

	"github.com/vantagecare/practice-backend/internal/domain/flow"
	"github.com/vantagecare/practice-backend/internal/pkg/logger"
)

// RetryPolicy bounds full re-decision retries on transient conflicts.
type RetryPolicy struct {
	Attempts int
	Delays   []time.Duration
}

// DefaultRetryPolicy matches the call-site convention: three attempts with a
// short, slightly increasing pause between them.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Attempts: 3,
		Delays:   []time.Duration{30 * time.Millisecond, 40 * time.Millisecond, 50 * time.Millisecond},
	}
}

func (p RetryPolicy) delay(attempt int) time.Duration {
	if len(p.Delays) == 0 {
		return 0
	}
	if attempt >= len(p.Delays) {
		return p.Delays[len(p.Delays)-1]
	}
	return p.Delays[attempt]
}

// RetryOnConflict re-runs fn until it succeeds, fails with a non-retryable
// error, or the policy is exhausted. fn must cover the whole
// reload-decide-materialize sequence: re-applying an already-computed result
// would write entities that are now stale, so only a full re-decision with
// freshly loaded state is race-safe.
func RetryOnConflict(ctx context.Context, log *logger.Logger, policy RetryPolicy, op string, fn func(ctx context.Context) error) error {
	if policy.Attempts < 1 {
		policy.Attempts = 1
	}
	var err error
	for attempt := 0; attempt < policy.Attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return flow.Wrap(flow.CodeRetryable, op, ctx.Err())
			case <-time.After(policy.delay(attempt - 1)):
			}
			if log != nil {
				log.Warn("retrying after transient conflict", "op", op, "attempt", attempt+1, "error", err)
			}
		}
		err = fn(ctx)
		if err == nil || !flow.IsRetryable(err) {
			return err
		}
	}
	return err
}
