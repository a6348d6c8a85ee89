package practice

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vantagecare/practice-backend/internal/domain/flow"
)

var testNow = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

func TestLikeChallengeFirstLike(t *testing.T) {
	challengeID := uuid.New()
	patientID := uuid.New()

	res, err := LikeChallengeFlow{
		Existing:    nil,
		ChallengeID: challengeID,
		PatientID:   patientID,
		Now:         testNow,
	}.Execute()
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if len(res.EntityActions) != 1 || res.EntityActions[0].Kind != flow.ActionAdded {
		t.Fatalf("expected one Added action, got %+v", res.EntityActions)
	}
	rec := res.EntityActions[0].Entity.(*ChallengeLike)
	if !rec.Liked || rec.PatientID != patientID || rec.ChallengeID != challengeID {
		t.Fatalf("unexpected like record: %+v", rec)
	}
	if len(res.AggregateEvents) != 1 || res.AggregateEvents[0].Name != EventChallengeLiked {
		t.Fatalf("expected one ChallengeLiked event, got %+v", res.AggregateEvents)
	}
	if res.AggregateEvents[0].AggregateID != challengeID {
		t.Fatalf("aggregate id: want=%s got=%s", challengeID, res.AggregateEvents[0].AggregateID)
	}
	if len(res.IntegrationEvents) != 1 || res.IntegrationEvents[0].Type != IntegrationChallengeLiked {
		t.Fatalf("expected one integration event, got %+v", res.IntegrationEvents)
	}
}

func TestLikeChallengeUnlikeTogglesWithoutIntegrationEvent(t *testing.T) {
	existing := &ChallengeLike{
		ID:          uuid.New(),
		PatientID:   uuid.New(),
		ChallengeID: uuid.New(),
		Liked:       true,
	}

	res, err := LikeChallengeFlow{
		Existing:    existing,
		ChallengeID: existing.ChallengeID,
		PatientID:   existing.PatientID,
		Now:         testNow,
	}.Execute()
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if len(res.EntityActions) != 1 || res.EntityActions[0].Kind != flow.ActionUpdated {
		t.Fatalf("expected one Updated action, got %+v", res.EntityActions)
	}
	rec := res.EntityActions[0].Entity.(*ChallengeLike)
	if rec.Liked {
		t.Fatalf("expected Liked=false after toggle")
	}
	if len(res.AggregateEvents) != 1 || res.AggregateEvents[0].Name != EventChallengeUnliked {
		t.Fatalf("expected one ChallengeUnliked event, got %+v", res.AggregateEvents)
	}
	if len(res.IntegrationEvents) != 0 {
		t.Fatalf("unliking must not be externally notable, got %+v", res.IntegrationEvents)
	}
	if !existing.Liked {
		t.Fatalf("flow mutated its input record")
	}
}

func TestLikeChallengeRelike(t *testing.T) {
	existing := &ChallengeLike{
		ID:          uuid.New(),
		PatientID:   uuid.New(),
		ChallengeID: uuid.New(),
		Liked:       false,
	}

	res, err := LikeChallengeFlow{
		Existing:    existing,
		ChallengeID: existing.ChallengeID,
		PatientID:   existing.PatientID,
		Now:         testNow,
	}.Execute()
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	rec := res.EntityActions[0].Entity.(*ChallengeLike)
	if !rec.Liked {
		t.Fatalf("expected Liked=true after toggle")
	}
	if res.AggregateEvents[0].Name != EventChallengeLiked {
		t.Fatalf("expected ChallengeLiked, got %s", res.AggregateEvents[0].Name)
	}
	if len(res.IntegrationEvents) != 1 {
		t.Fatalf("liking must emit an integration event")
	}
}

func TestLikeChallengeValidation(t *testing.T) {
	_, err := LikeChallengeFlow{ChallengeID: uuid.Nil, PatientID: uuid.New(), Now: testNow}.Execute()
	if !flow.IsCode(err, flow.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	_, err = LikeChallengeFlow{ChallengeID: uuid.New(), PatientID: uuid.Nil, Now: testNow}.Execute()
	if !flow.IsCode(err, flow.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestLikeChallengeExecuteIsDeterministic(t *testing.T) {
	existing := &ChallengeLike{
		ID:          uuid.New(),
		PatientID:   uuid.New(),
		ChallengeID: uuid.New(),
		Liked:       true,
	}
	f := LikeChallengeFlow{
		Existing:    existing,
		ChallengeID: existing.ChallengeID,
		PatientID:   existing.PatientID,
		Now:         testNow,
	}

	r1, err1 := f.Execute()
	r2, err2 := f.Execute()
	if err1 != nil || err2 != nil {
		t.Fatalf("execute: %v %v", err1, err2)
	}
	rec1 := r1.EntityActions[0].Entity.(*ChallengeLike)
	rec2 := r2.EntityActions[0].Entity.(*ChallengeLike)
	if *rec1 != *rec2 {
		t.Fatalf("two executions disagree:\n%+v\n%+v", rec1, rec2)
	}
	if r1.AggregateEvents[0] != r2.AggregateEvents[0] {
		t.Fatalf("aggregate events disagree")
	}
}
