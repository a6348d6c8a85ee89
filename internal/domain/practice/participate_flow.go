package practice

import (
	"time"

	"github.com/google/uuid"

	"github.com/vantagecare/practice-backend/internal/domain/flow"
)

// ParticipateInChallengeFlow moves a patient from NotParticipant to
// Participant. Joining a closed window or re-joining is a silent no-op so
// callers never need to special-case double taps.
type ParticipateInChallengeFlow struct {
	Challenge *Challenge
	Existing  *PatientChallenge // nil when the patient has no record yet
	PatientID uuid.UUID
	Now       time.Time
}

func (f ParticipateInChallengeFlow) Execute() (flow.Result, error) {
	const op = "practice.ParticipateInChallenge"
	if f.Challenge == nil {
		return flow.Empty(), flow.NewError(flow.CodeValidation, op, "challenge is required", nil)
	}
	if f.PatientID == uuid.Nil {
		return flow.Empty(), flow.NewError(flow.CodeValidation, op, "patient id is required", nil)
	}

	if f.Existing != nil && f.Existing.IsParticipant {
		return flow.Empty(), nil
	}
	if !f.Challenge.IsActiveOn(f.Now) {
		return flow.Empty(), nil
	}

	var action flow.EntityAction
	if f.Existing == nil {
		rec := &PatientChallenge{
			ID:            uuid.New(),
			PatientID:     f.PatientID,
			ChallengeID:   f.Challenge.ID,
			IsParticipant: true,
			Status:        StatusActive,
		}
		action = rec.Added()
	} else {
		rec := f.Existing.Clone()
		rec.IsParticipant = true
		action = rec.Updated()
	}

	return flow.Merge(
		flow.FromEntityAction(action),
		flow.FromAggregateEvent(flow.AggregateEvent{
			Name:        EventChallengeParticipantAdded,
			Kind:        AggregateChallenge,
			AggregateID: f.Challenge.ID,
			Payload:     ParticipantAddedPayload{PatientID: f.PatientID},
		}),
		flow.FromIntegrationEvent(flow.IntegrationEvent{
			Type:       IntegrationChallengeParticipationStarted,
			SubjectID:  f.Challenge.ID,
			ActorID:    f.PatientID,
			OccurredAt: f.Now,
			Payload:    ParticipantAddedPayload{PatientID: f.PatientID},
		}),
	), nil
}
