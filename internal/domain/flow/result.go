package flow

// Result describes everything a flow decided should happen: entity writes,
// aggregate events to reduce, and integration events to publish after commit.
// It forms a monoid under Combine with Empty as the identity; combining
// preserves element order within each channel and never mutates its operands.
type Result struct {
	EntityActions     []EntityAction
	AggregateEvents   []AggregateEvent
	IntegrationEvents []IntegrationEvent
}

// Empty returns the identity result. Flows return it for absorbable no-ops
// ("already done", "nothing to do"); callers must treat it as success.
func Empty() Result {
	return Result{}
}

// IsEmpty reports whether the result describes no effects at all.
func (r Result) IsEmpty() bool {
	return len(r.EntityActions) == 0 && len(r.AggregateEvents) == 0 && len(r.IntegrationEvents) == 0
}

// FromEntityAction lifts a single entity action into a result. None actions
// are absorbed and yield Empty.
func FromEntityAction(a EntityAction) Result {
	if a.IsNone() {
		return Result{}
	}
	return Result{EntityActions: []EntityAction{a}}
}

// FromAggregateEvent lifts a single aggregate event into a result.
func FromAggregateEvent(ev AggregateEvent) Result {
	return Result{AggregateEvents: []AggregateEvent{ev}}
}

// FromIntegrationEvent lifts a single integration event into a result.
func FromIntegrationEvent(ev IntegrationEvent) Result {
	return Result{IntegrationEvents: []IntegrationEvent{ev}}
}

// Combine concatenates two results channel by channel, returning a fresh
// value. It is associative and Empty is its two-sided identity.
func (r Result) Combine(other Result) Result {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	out := Result{
		EntityActions:     make([]EntityAction, 0, len(r.EntityActions)+len(other.EntityActions)),
		AggregateEvents:   make([]AggregateEvent, 0, len(r.AggregateEvents)+len(other.AggregateEvents)),
		IntegrationEvents: make([]IntegrationEvent, 0, len(r.IntegrationEvents)+len(other.IntegrationEvents)),
	}
	out.EntityActions = append(append(out.EntityActions, r.EntityActions...), other.EntityActions...)
	out.AggregateEvents = append(append(out.AggregateEvents, r.AggregateEvents...), other.AggregateEvents...)
	out.IntegrationEvents = append(append(out.IntegrationEvents, r.IntegrationEvents...), other.IntegrationEvents...)
	return out
}

// Merge folds any number of results left to right.
func Merge(results ...Result) Result {
	out := Result{}
	for _, r := range results {
		out = out.Combine(r)
	}
	return out
}
