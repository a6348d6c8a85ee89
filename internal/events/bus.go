package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vantagecare/practice-backend/internal/domain/flow"
)

// Envelope is the wire shape for one integration event on the bus.
type Envelope struct {
	ID         uuid.UUID `json:"id"`
	Type       string    `json:"type"`
	SubjectID  uuid.UUID `json:"subject_id"`
	ActorID    uuid.UUID `json:"actor_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload,omitempty"`
}

// Bus delivers committed integration events to downstream consumers,
// at-least-once. Implementations must preserve the order of one batch.
type Bus interface {
	Publish(ctx context.Context, events []flow.IntegrationEvent) error
	Subscribe(ctx context.Context, onEvent func(Envelope)) error
	Close() error
}

func envelopeOf(ev flow.IntegrationEvent) Envelope {
	occurred := ev.OccurredAt
	if occurred.IsZero() {
		occurred = time.Now().UTC()
	}
	return Envelope{
		ID:         uuid.New(),
		Type:       ev.Type,
		SubjectID:  ev.SubjectID,
		ActorID:    ev.ActorID,
		OccurredAt: occurred,
		Payload:    ev.Payload,
	}
}
