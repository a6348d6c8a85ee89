package flow

// AggregateKind names an aggregate type for reducer routing and loading.
type AggregateKind string

// Aggregate is implemented by entities carrying denormalized, event-derived
// state (counters such as likes or participants). The materializer owns the
// load-reduce-save cycle for aggregates; flows reference them by id only.
type Aggregate interface {
	AggregateKind() AggregateKind
}

// ReduceFunc applies one aggregate event to an aggregate and returns the
// updated value. Reducers must be pure: no I/O, no clock reads, no mutation
// of anything but the aggregate they are handed.
type ReduceFunc func(agg Aggregate, ev AggregateEvent) (Aggregate, error)
