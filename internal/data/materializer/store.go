package materializer

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/vantagecare/practice-backend/internal/domain/flow"
	"github.com/vantagecare/practice-backend/internal/pkg/dbctx"
)

// AggregateStore owns the load and save halves of the load-reduce-save cycle,
// always inside the transaction carried by dbc.
type AggregateStore interface {
	Load(dbc dbctx.Context, kind flow.AggregateKind, id uuid.UUID) (flow.Aggregate, error)
	Save(dbc dbctx.Context, agg flow.Aggregate) error
}

// Loader handles one aggregate kind on behalf of the store.
type Loader interface {
	Load(dbc dbctx.Context, id uuid.UUID) (flow.Aggregate, error)
	Save(dbc dbctx.Context, agg flow.Aggregate) error
}

type kindStore struct {
	loaders map[flow.AggregateKind]Loader
}

// NewStore builds an aggregate store from one loader per kind. An event for
// a kind with no loader is a configuration defect, same as a missing reducer.
func NewStore(loaders map[flow.AggregateKind]Loader) AggregateStore {
	owned := make(map[flow.AggregateKind]Loader, len(loaders))
	for kind, l := range loaders {
		owned[kind] = l
	}
	return &kindStore{loaders: owned}
}

func (s *kindStore) Load(dbc dbctx.Context, kind flow.AggregateKind, id uuid.UUID) (flow.Aggregate, error) {
	const op = "materializer.Store.Load"
	l, ok := s.loaders[kind]
	if !ok {
		return nil, flow.NewError(flow.CodeConfig, op, fmt.Sprintf("no loader registered for aggregate kind %q", kind), nil)
	}
	return l.Load(dbc, id)
}

func (s *kindStore) Save(dbc dbctx.Context, agg flow.Aggregate) error {
	const op = "materializer.Store.Save"
	if agg == nil {
		return flow.NewError(flow.CodeInternal, op, "nil aggregate", nil)
	}
	l, ok := s.loaders[agg.AggregateKind()]
	if !ok {
		return flow.NewError(flow.CodeConfig, op, fmt.Sprintf("no loader registered for aggregate kind %q", agg.AggregateKind()), nil)
	}
	return l.Save(dbc, agg)
}
