package practice

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vantagecare/practice-backend/internal/domain/flow"
)

func activeChallenge(now time.Time) *Challenge {
	return &Challenge{
		ID:        uuid.New(),
		Title:     "daily steps",
		StartDate: now.AddDate(0, 0, -3),
		EndDate:   now.AddDate(0, 0, 3),
	}
}

func TestParticipateNewPatient(t *testing.T) {
	ch := activeChallenge(testNow)
	patientID := uuid.New()

	res, err := ParticipateInChallengeFlow{
		Challenge: ch,
		Existing:  nil,
		PatientID: patientID,
		Now:       testNow,
	}.Execute()
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if len(res.EntityActions) != 1 || res.EntityActions[0].Kind != flow.ActionAdded {
		t.Fatalf("expected one Added action, got %+v", res.EntityActions)
	}
	rec := res.EntityActions[0].Entity.(*PatientChallenge)
	if !rec.IsParticipant || rec.PatientID != patientID || rec.ChallengeID != ch.ID {
		t.Fatalf("unexpected join record: %+v", rec)
	}
	if len(res.AggregateEvents) != 1 || res.AggregateEvents[0].Name != EventChallengeParticipantAdded {
		t.Fatalf("expected participant-added event, got %+v", res.AggregateEvents)
	}
	if len(res.IntegrationEvents) != 1 || res.IntegrationEvents[0].Type != IntegrationChallengeParticipationStarted {
		t.Fatalf("expected one integration event, got %+v", res.IntegrationEvents)
	}
}

func TestParticipateExistingRecordUpdates(t *testing.T) {
	ch := activeChallenge(testNow)
	existing := &PatientChallenge{
		ID:            uuid.New(),
		PatientID:     uuid.New(),
		ChallengeID:   ch.ID,
		IsParticipant: false,
		Status:        StatusActive,
	}

	res, err := ParticipateInChallengeFlow{
		Challenge: ch,
		Existing:  existing,
		PatientID: existing.PatientID,
		Now:       testNow,
	}.Execute()
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if len(res.EntityActions) != 1 || res.EntityActions[0].Kind != flow.ActionUpdated {
		t.Fatalf("expected one Updated action, got %+v", res.EntityActions)
	}
	rec := res.EntityActions[0].Entity.(*PatientChallenge)
	if !rec.IsParticipant || rec.ID != existing.ID {
		t.Fatalf("unexpected join record: %+v", rec)
	}
	if existing.IsParticipant {
		t.Fatalf("flow mutated its input record")
	}
}

func TestParticipateAlreadyParticipantIsEmpty(t *testing.T) {
	ch := activeChallenge(testNow)
	existing := &PatientChallenge{
		ID:            uuid.New(),
		PatientID:     uuid.New(),
		ChallengeID:   ch.ID,
		IsParticipant: true,
		Status:        StatusActive,
	}

	res, err := ParticipateInChallengeFlow{
		Challenge: ch,
		Existing:  existing,
		PatientID: existing.PatientID,
		Now:       testNow,
	}.Execute()
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !res.IsEmpty() {
		t.Fatalf("expected Empty for repeat participation, got %+v", res)
	}
}

func TestParticipateOutsideWindowIsEmpty(t *testing.T) {
	for name, now := range map[string]time.Time{
		"before start": testNow.AddDate(0, 0, -10),
		"after end":    testNow.AddDate(0, 0, 10),
	} {
		t.Run(name, func(t *testing.T) {
			ch := activeChallenge(testNow)
			res, err := ParticipateInChallengeFlow{
				Challenge: ch,
				PatientID: uuid.New(),
				Now:       now,
			}.Execute()
			if err != nil {
				t.Fatalf("execute: %v", err)
			}
			if !res.IsEmpty() {
				t.Fatalf("expected Empty outside window, got %+v", res)
			}
		})
	}
}

// The window is inclusive by calendar date: joining late on the end date
// still counts.
func TestParticipateWindowIsDateInclusive(t *testing.T) {
	end := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	ch := &Challenge{ID: uuid.New(), StartDate: end.AddDate(0, 0, -7), EndDate: end}

	lateOnEndDate := time.Date(2026, 3, 10, 23, 45, 0, 0, time.UTC)
	res, err := ParticipateInChallengeFlow{
		Challenge: ch,
		PatientID: uuid.New(),
		Now:       lateOnEndDate,
	}.Execute()
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if res.IsEmpty() {
		t.Fatalf("end date should be inclusive regardless of time of day")
	}
}

func TestParticipateValidation(t *testing.T) {
	_, err := ParticipateInChallengeFlow{Challenge: nil, PatientID: uuid.New(), Now: testNow}.Execute()
	if !flow.IsCode(err, flow.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	_, err = ParticipateInChallengeFlow{Challenge: activeChallenge(testNow), PatientID: uuid.Nil, Now: testNow}.Execute()
	if !flow.IsCode(err, flow.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
