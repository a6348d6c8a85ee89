package events

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vantagecare/practice-backend/internal/domain/flow"
)

func TestEnvelopeOfPreservesEventFields(t *testing.T) {
	subject := uuid.New()
	actor := uuid.New()
	occurred := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

	env := envelopeOf(flow.IntegrationEvent{
		Type:       "challenge.completed",
		SubjectID:  subject,
		ActorID:    actor,
		OccurredAt: occurred,
		Payload:    map[string]string{"reason": "patient"},
	})

	if env.ID == uuid.Nil {
		t.Fatalf("envelope must get a fresh id")
	}
	if env.Type != "challenge.completed" || env.SubjectID != subject || env.ActorID != actor {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	if !env.OccurredAt.Equal(occurred) {
		t.Fatalf("occurred_at must be preserved, got %v", env.OccurredAt)
	}
}

func TestEnvelopeOfDefaultsOccurredAt(t *testing.T) {
	env := envelopeOf(flow.IntegrationEvent{Type: "challenge.liked", SubjectID: uuid.New()})
	if env.OccurredAt.IsZero() {
		t.Fatalf("zero occurred_at must be defaulted")
	}
}
