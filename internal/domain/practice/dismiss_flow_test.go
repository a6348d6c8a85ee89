package practice

import (
	"testing"

	"github.com/google/uuid"

	"github.com/vantagecare/practice-backend/internal/domain/flow"
)

func TestDismissChallengeSetsBit(t *testing.T) {
	ch := activeChallenge(testNow)
	rec := &PatientChallenge{ID: uuid.New(), PatientID: uuid.New(), ChallengeID: ch.ID, Status: StatusActive}

	res, err := DismissChallengeFlow{Challenge: ch, Record: rec, Now: testNow}.Execute()
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(res.EntityActions) != 1 || res.EntityActions[0].Kind != flow.ActionUpdated {
		t.Fatalf("expected one Updated action, got %+v", res.EntityActions)
	}
	out := res.EntityActions[0].Entity.(*PatientChallenge)
	if !out.IsDismissed() {
		t.Fatalf("dismissed bit not set: %b", out.Status)
	}
	if len(res.AggregateEvents) != 0 || len(res.IntegrationEvents) != 0 {
		t.Fatalf("dismissal must not emit events, got %+v", res)
	}
}

func TestDismissChallengeRepeatIsEmpty(t *testing.T) {
	ch := activeChallenge(testNow)
	rec := &PatientChallenge{ID: uuid.New(), ChallengeID: ch.ID, Status: StatusActive | StatusDismissed}

	res, err := DismissChallengeFlow{Challenge: ch, Record: rec, Now: testNow}.Execute()
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !res.IsEmpty() {
		t.Fatalf("re-dismissing must be Empty, got %+v", res)
	}
}

func TestDismissChallengeBlockedAfterCompletion(t *testing.T) {
	ch := activeChallenge(testNow)
	for name, status := range map[string]ChallengeStatus{
		"patient completed": StatusActive | StatusPatientCompleted,
		"auto completed":    StatusActive | StatusAutoCompleted,
	} {
		t.Run(name, func(t *testing.T) {
			rec := &PatientChallenge{ID: uuid.New(), ChallengeID: ch.ID, Status: status}
			_, err := DismissChallengeFlow{Challenge: ch, Record: rec, Now: testNow}.Execute()
			if !flow.IsCode(err, flow.CodeInvariantViolation) {
				t.Fatalf("expected invariant violation, got %v", err)
			}
		})
	}
}

func TestDismissChallengeBlockedWhenMandatory(t *testing.T) {
	ch := activeChallenge(testNow)
	ch.IsMandatory = true
	rec := &PatientChallenge{ID: uuid.New(), ChallengeID: ch.ID, Status: StatusActive}

	_, err := DismissChallengeFlow{Challenge: ch, Record: rec, Now: testNow}.Execute()
	if !flow.IsCode(err, flow.CodeInvariantViolation) {
		t.Fatalf("expected invariant violation, got %v", err)
	}
}
