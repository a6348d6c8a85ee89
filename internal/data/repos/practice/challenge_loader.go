package practice

import (
	"github.com/google/uuid"

	"github.com/vantagecare/practice-backend/internal/data/materializer"
	"github.com/vantagecare/practice-backend/internal/domain/flow"
	"github.com/vantagecare/practice-backend/internal/domain/practice"
	"github.com/vantagecare/practice-backend/internal/pkg/dbctx"
	"github.com/vantagecare/practice-backend/internal/pkg/logger"
)

// challengeLoader loads and saves the challenge aggregate for the
// materializer's load-reduce-save cycle. Saves go through a version
// compare-and-set on the counter columns, so a concurrent writer surfaces as
// a conflict and triggers the caller's full re-decision retry.
type challengeLoader struct {
	log *logger.Logger
}

func NewChallengeLoader(baseLog *logger.Logger) materializer.Loader {
	return &challengeLoader{log: baseLog.With("loader", "ChallengeLoader")}
}

func (cl *challengeLoader) Load(dbc dbctx.Context, id uuid.UUID) (flow.Aggregate, error) {
	const op = "practice.ChallengeLoader.Load"
	if dbc.Tx == nil {
		return nil, flow.NewError(flow.CodeInternal, op, "missing db transaction context", nil)
	}

	var result practice.Challenge
	if err := dbc.Tx.WithContext(dbc.Ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, materializer.MapError(op, err)
	}
	return &result, nil
}

func (cl *challengeLoader) Save(dbc dbctx.Context, agg flow.Aggregate) error {
	const op = "practice.ChallengeLoader.Save"
	ch, ok := agg.(*practice.Challenge)
	if !ok {
		return flow.NewError(flow.CodeConfig, op, "aggregate is not a challenge", nil)
	}

	ok, err := materializer.UpdateByVersion(dbc, practice.Challenge{}.TableName(), ch.ID, ch.Version, map[string]any{
		"likes":        ch.Likes,
		"participants": ch.Participants,
		"completions":  ch.Completions,
	})
	if err != nil {
		return materializer.MapError(op, err)
	}
	if err := materializer.RequireCASSuccess(ok, "challenge counters changed underneath this transaction"); err != nil {
		cl.log.Warn("challenge counter save lost the version race", "challenge_id", ch.ID, "expected_version", ch.Version)
		return materializer.MapError(op, err)
	}
	ch.Version++
	return nil
}
