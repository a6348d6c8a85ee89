package practice

import (
	"time"

	"github.com/google/uuid"

	"github.com/vantagecare/practice-backend/internal/domain/flow"
)

// LikeChallengeFlow toggles a patient's like with no guard. Only the Liked
// transition is externally notable: unliking emits the aggregate event that
// keeps the counter honest but no integration event.
type LikeChallengeFlow struct {
	Existing    *ChallengeLike // nil when this patient never liked before
	ChallengeID uuid.UUID
	PatientID   uuid.UUID
	Now         time.Time
}

func (f LikeChallengeFlow) Execute() (flow.Result, error) {
	const op = "practice.LikeChallenge"
	if f.ChallengeID == uuid.Nil {
		return flow.Empty(), flow.NewError(flow.CodeValidation, op, "challenge id is required", nil)
	}
	if f.PatientID == uuid.Nil {
		return flow.Empty(), flow.NewError(flow.CodeValidation, op, "patient id is required", nil)
	}

	var (
		action flow.EntityAction
		liked  bool
	)
	switch {
	case f.Existing == nil:
		rec := &ChallengeLike{
			ID:          uuid.New(),
			PatientID:   f.PatientID,
			ChallengeID: f.ChallengeID,
			Liked:       true,
		}
		action = rec.Added()
		liked = true
	default:
		rec := f.Existing.Clone()
		rec.Liked = !rec.Liked
		action = rec.Updated()
		liked = rec.Liked
	}

	if !liked {
		return flow.Merge(
			flow.FromEntityAction(action),
			flow.FromAggregateEvent(flow.AggregateEvent{
				Name:        EventChallengeUnliked,
				Kind:        AggregateChallenge,
				AggregateID: f.ChallengeID,
				Payload:     ChallengeLikedPayload{PatientID: f.PatientID},
			}),
		), nil
	}

	return flow.Merge(
		flow.FromEntityAction(action),
		flow.FromAggregateEvent(flow.AggregateEvent{
			Name:        EventChallengeLiked,
			Kind:        AggregateChallenge,
			AggregateID: f.ChallengeID,
			Payload:     ChallengeLikedPayload{PatientID: f.PatientID},
		}),
		flow.FromIntegrationEvent(flow.IntegrationEvent{
			Type:       IntegrationChallengeLiked,
			SubjectID:  f.ChallengeID,
			ActorID:    f.PatientID,
			OccurredAt: f.Now,
			Payload:    ChallengeLikedPayload{PatientID: f.PatientID},
		}),
	), nil
}
