package practice

import (
	"time"

	"github.com/vantagecare/practice-backend/internal/domain/flow"
)

// CompleteChallengeFlow marks a patient's challenge completed. Completion is
// monotonic and idempotent: once any completed bit is set, re-completing is a
// silent no-op regardless of when or how the first completion happened.
type CompleteChallengeFlow struct {
	Record *PatientChallenge
	Auto   bool // set when the system, not the patient, detected completion
	Now    time.Time
}

func (f CompleteChallengeFlow) Execute() (flow.Result, error) {
	const op = "practice.CompleteChallenge"
	if f.Record == nil {
		return flow.Empty(), flow.NewError(flow.CodeValidation, op, "patient challenge record is required", nil)
	}

	if f.Record.IsCompleted() {
		return flow.Empty(), nil
	}

	rec := f.Record.Clone()
	if f.Auto {
		rec.Status |= StatusAutoCompleted
	} else {
		rec.Status |= StatusPatientCompleted
	}
	completedAt := f.Now
	rec.CompletedAt = &completedAt

	return flow.Merge(
		flow.FromEntityAction(rec.Updated()),
		flow.FromAggregateEvent(flow.AggregateEvent{
			Name:        EventChallengeCompleted,
			Kind:        AggregateChallenge,
			AggregateID: f.Record.ChallengeID,
			Payload:     ChallengeCompletedPayload{PatientID: f.Record.PatientID, Auto: f.Auto},
		}),
		flow.FromIntegrationEvent(flow.IntegrationEvent{
			Type:       IntegrationChallengeCompleted,
			SubjectID:  f.Record.ChallengeID,
			ActorID:    f.Record.PatientID,
			OccurredAt: f.Now,
			Payload:    ChallengeCompletedPayload{PatientID: f.Record.PatientID, Auto: f.Auto},
		}),
	), nil
}
