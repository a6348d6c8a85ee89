package flow

import (
	"time"

	"github.com/google/uuid"
)

// AggregateEvent records that a named fact happened to one aggregate. It
// carries only the identity needed to route it: the reducer registered for
// (Name, Kind) is resolved by the materializer at apply time.
type AggregateEvent struct {
	Name        string
	Kind        AggregateKind
	AggregateID uuid.UUID
	Payload     any
}

// IntegrationEvent is an outbound notification for other subsystems. It is
// queued by flows and handed to the event bus only after the transaction that
// produced it has committed.
type IntegrationEvent struct {
	Type       string
	SubjectID  uuid.UUID
	ActorID    uuid.UUID
	OccurredAt time.Time
	Payload    any
}
