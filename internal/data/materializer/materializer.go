package materializer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/vantagecare/practice-backend/internal/domain/flow"
	"github.com/vantagecare/practice-backend/internal/pkg/dbctx"
	"github.com/vantagecare/practice-backend/internal/pkg/logger"
)

// Publisher delivers integration events to other subsystems after commit,
// at-least-once, preserving sequence order best-effort.
type Publisher interface {
	Publish(ctx context.Context, events []flow.IntegrationEvent) error
}

// Deps wires the materializer's collaborators. Runner and Hooks default from
// DB and noop respectively.
type Deps struct {
	DB         *gorm.DB
	Log        *logger.Logger
	Runner     TxRunner
	Hooks      Hooks
	Registry   *flow.Registry
	Aggregates AggregateStore
	Bus        Publisher
}

func (d Deps) withDefaults() Deps {
	if d.Runner == nil {
		d.Runner = NewGormTxRunner(d.DB)
	}
	if d.Hooks == nil {
		d.Hooks = noopHooks{}
	}
	return d
}

// Materializer is the sole impure interpreter of flow results. It executes a
// flow once, applies every described effect inside one transaction, and
// publishes integration events only after that transaction commits.
type Materializer struct {
	deps Deps
}

func New(deps Deps) (*Materializer, error) {
	const op = "materializer.New"
	if deps.Registry == nil {
		return nil, flow.NewError(flow.CodeConfig, op, "reducer registry is required", nil)
	}
	if deps.Aggregates == nil {
		return nil, flow.NewError(flow.CodeConfig, op, "aggregate store is required", nil)
	}
	return &Materializer{deps: deps.withDefaults()}, nil
}

// Materialize runs f and durably applies its result. Order of operations:
// execute, apply entity actions, reduce aggregate events, commit, publish.
// A failure anywhere before commit rolls everything back and publishes
// nothing. Conflicts are not retried here; only the caller can re-decide
// with fresh state (see RetryOnConflict).
func (m *Materializer) Materialize(ctx context.Context, op string, f flow.Flow) (flow.Result, error) {
	start := time.Now()
	op = strings.TrimSpace(op)
	if op == "" {
		op = "materializer.materialize"
	}

	res, err := f.Execute()
	if err != nil {
		m.observe(op, err, start)
		return flow.Result{}, err
	}
	if res.IsEmpty() {
		// Deliberate no-op: success without opening a transaction.
		m.observe(op, nil, start)
		return res, nil
	}

	err = m.deps.Runner.InTx(ctx, func(dbc dbctx.Context) error {
		if err := m.applyActions(dbc, op, res.EntityActions); err != nil {
			return err
		}
		return m.reduceEvents(dbc, op, res.AggregateEvents)
	})
	if mapped := MapError(op, err); mapped != nil {
		m.observe(op, mapped, start)
		return flow.Result{}, mapped
	}

	if err := m.publish(ctx, op, res.IntegrationEvents); err != nil {
		m.observe(op, err, start)
		return res, err
	}

	m.observe(op, nil, start)
	return res, nil
}

func (m *Materializer) applyActions(dbc dbctx.Context, op string, actions []flow.EntityAction) error {
	if len(actions) == 0 {
		return nil
	}
	if dbc.Tx == nil {
		return flow.NewError(flow.CodeInternal, op, "missing db transaction context", nil)
	}
	db := dbc.Tx.WithContext(dbc.Ctx)
	for _, a := range actions {
		if a.IsNone() {
			continue
		}
		var err error
		switch a.Kind {
		case flow.ActionAdded:
			err = db.Create(a.Entity).Error
		case flow.ActionUpdated:
			err = db.Save(a.Entity).Error
		case flow.ActionDeleted:
			err = db.Delete(a.Entity).Error
		default:
			err = flow.NewError(flow.CodeInternal, op, fmt.Sprintf("unknown entity action kind %d", a.Kind), nil)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Materializer) reduceEvents(dbc dbctx.Context, op string, events []flow.AggregateEvent) error {
	for _, ev := range events {
		fn, err := m.deps.Registry.Resolve(ev.Name, ev.Kind)
		if err != nil {
			// Missing registration must abort the transaction, never skip:
			// a skipped event desynchronizes counters from their source.
			return err
		}
		agg, err := m.deps.Aggregates.Load(dbc, ev.Kind, ev.AggregateID)
		if err != nil {
			return err
		}
		reduced, err := fn(agg, ev)
		if err != nil {
			return err
		}
		if err := m.deps.Aggregates.Save(dbc, reduced); err != nil {
			return err
		}
	}
	return nil
}

func (m *Materializer) publish(ctx context.Context, op string, events []flow.IntegrationEvent) error {
	if len(events) == 0 || m.deps.Bus == nil {
		return nil
	}
	if err := m.deps.Bus.Publish(ctx, events); err != nil {
		m.deps.Hooks.IncPublishFailure()
		if m.deps.Log != nil {
			m.deps.Log.Error("integration event publish failed after commit", "op", op, "error", err)
		}
		// The transaction already committed, so this must not look
		// retryable: re-running the closure would double-apply.
		return flow.NewError(flow.CodeInternal, op, "integration event publish failed after commit", err)
	}
	for _, ev := range events {
		m.deps.Hooks.IncPublished(ev.Type)
	}
	return nil
}

func (m *Materializer) observe(op string, err error, start time.Time) {
	status := "success"
	if err != nil {
		status = errorStatus(err)
		if flow.IsCode(err, flow.CodeConflict) {
			m.deps.Hooks.IncConflict(op)
		}
		if flow.IsCode(err, flow.CodeRetryable) {
			m.deps.Hooks.IncRetry(op)
		}
	}
	m.deps.Hooks.ObserveMaterialize(op, status, time.Since(start))
}

func errorStatus(err error) string {
	if err == nil {
		return "success"
	}
	code := strings.TrimSpace(string(flow.CodeOf(err)))
	if code == "" {
		code = strings.TrimSpace(string(flow.CodeOf(MapError("materializer.status", err))))
	}
	if code == "" {
		return "failure"
	}
	return code
}
