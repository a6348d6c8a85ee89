package practice

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vantagecare/practice-backend/internal/domain/flow"
)

func TestCompleteChallengeSetsPatientBit(t *testing.T) {
	rec := &PatientChallenge{
		ID:            uuid.New(),
		PatientID:     uuid.New(),
		ChallengeID:   uuid.New(),
		IsParticipant: true,
		Status:        StatusActive,
	}

	res, err := CompleteChallengeFlow{Record: rec, Auto: false, Now: testNow}.Execute()
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if len(res.EntityActions) != 1 || res.EntityActions[0].Kind != flow.ActionUpdated {
		t.Fatalf("expected one Updated action, got %+v", res.EntityActions)
	}
	out := res.EntityActions[0].Entity.(*PatientChallenge)
	if !out.Status.Has(StatusPatientCompleted) || out.Status.Has(StatusAutoCompleted) {
		t.Fatalf("status bits: %b", out.Status)
	}
	if !out.Status.Has(StatusActive) {
		t.Fatalf("completion must not clear other bits, got %b", out.Status)
	}
	if out.CompletedAt == nil || !out.CompletedAt.Equal(testNow) {
		t.Fatalf("completed at: %v", out.CompletedAt)
	}
	if len(res.AggregateEvents) != 1 || res.AggregateEvents[0].Name != EventChallengeCompleted {
		t.Fatalf("expected completed event, got %+v", res.AggregateEvents)
	}
	if len(res.IntegrationEvents) != 1 || res.IntegrationEvents[0].Type != IntegrationChallengeCompleted {
		t.Fatalf("expected one integration event, got %+v", res.IntegrationEvents)
	}
	if rec.IsCompleted() {
		t.Fatalf("flow mutated its input record")
	}
}

func TestCompleteChallengeAutoSetsAutoBit(t *testing.T) {
	rec := &PatientChallenge{ID: uuid.New(), PatientID: uuid.New(), ChallengeID: uuid.New(), Status: StatusActive}

	res, err := CompleteChallengeFlow{Record: rec, Auto: true, Now: testNow}.Execute()
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	out := res.EntityActions[0].Entity.(*PatientChallenge)
	if !out.Status.Has(StatusAutoCompleted) || out.Status.Has(StatusPatientCompleted) {
		t.Fatalf("status bits: %b", out.Status)
	}
	payload := res.AggregateEvents[0].Payload.(ChallengeCompletedPayload)
	if !payload.Auto {
		t.Fatalf("payload should carry auto flag")
	}
}

func TestCompleteChallengeIsIdempotent(t *testing.T) {
	earlier := testNow.Add(-48 * time.Hour)
	for name, status := range map[string]ChallengeStatus{
		"patient completed": StatusActive | StatusPatientCompleted,
		"auto completed":    StatusActive | StatusAutoCompleted,
		"both bits":         StatusPatientCompleted | StatusAutoCompleted,
	} {
		t.Run(name, func(t *testing.T) {
			rec := &PatientChallenge{
				ID:          uuid.New(),
				PatientID:   uuid.New(),
				ChallengeID: uuid.New(),
				Status:      status,
				CompletedAt: &earlier,
			}
			res, err := CompleteChallengeFlow{Record: rec, Now: testNow}.Execute()
			if err != nil {
				t.Fatalf("execute: %v", err)
			}
			if !res.IsEmpty() {
				t.Fatalf("re-completing must be Empty, got %+v", res)
			}
		})
	}
}

func TestCompleteChallengeRequiresRecord(t *testing.T) {
	_, err := CompleteChallengeFlow{Record: nil, Now: testNow}.Execute()
	if !flow.IsCode(err, flow.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
