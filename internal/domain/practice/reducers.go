package practice

import (
	"github.com/vantagecare/practice-backend/internal/domain/flow"
)

// RegisterChallengeReducers wires every challenge event name to its counter
// reducer. Called once at startup; a duplicate or missing registration is a
// configuration defect surfaced before the process serves traffic.
func RegisterChallengeReducers(reg *flow.Registry) error {
	if err := reg.Register(EventChallengeLiked, AggregateChallenge, reduceChallengeLiked); err != nil {
		return err
	}
	if err := reg.Register(EventChallengeUnliked, AggregateChallenge, reduceChallengeUnliked); err != nil {
		return err
	}
	if err := reg.Register(EventChallengeParticipantAdded, AggregateChallenge, reduceParticipantAdded); err != nil {
		return err
	}
	if err := reg.Register(EventChallengeCompleted, AggregateChallenge, reduceChallengeCompleted); err != nil {
		return err
	}
	return reg.EnsureRegistered(AggregateChallenge, ChallengeEventNames()...)
}

// MustRegisterChallengeReducers is the startup form: registration failure is
// unrecoverable misconfiguration.
func MustRegisterChallengeReducers(reg *flow.Registry) {
	if err := RegisterChallengeReducers(reg); err != nil {
		panic(err)
	}
}

// Counter reducers use plain +1/-1 deltas without clamping: a negative
// counter signals a bug upstream and must show up in tests, not be hidden.

func reduceChallengeLiked(agg flow.Aggregate, ev flow.AggregateEvent) (flow.Aggregate, error) {
	ch, err := challengeOf(agg, ev)
	if err != nil {
		return nil, err
	}
	ch.Likes++
	return ch, nil
}

func reduceChallengeUnliked(agg flow.Aggregate, ev flow.AggregateEvent) (flow.Aggregate, error) {
	ch, err := challengeOf(agg, ev)
	if err != nil {
		return nil, err
	}
	ch.Likes--
	return ch, nil
}

func reduceParticipantAdded(agg flow.Aggregate, ev flow.AggregateEvent) (flow.Aggregate, error) {
	ch, err := challengeOf(agg, ev)
	if err != nil {
		return nil, err
	}
	ch.Participants++
	return ch, nil
}

func reduceChallengeCompleted(agg flow.Aggregate, ev flow.AggregateEvent) (flow.Aggregate, error) {
	ch, err := challengeOf(agg, ev)
	if err != nil {
		return nil, err
	}
	ch.Completions++
	return ch, nil
}

func challengeOf(agg flow.Aggregate, ev flow.AggregateEvent) (*Challenge, error) {
	ch, ok := agg.(*Challenge)
	if !ok {
		return nil, flow.NewError(flow.CodeConfig, "practice.reduce", "reducer for "+ev.Name+" received a non-challenge aggregate", nil)
	}
	return ch, nil
}
