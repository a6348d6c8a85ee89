package practice

import (
	"time"

	"github.com/vantagecare/practice-backend/internal/domain/flow"
)

// DismissChallengeFlow hides a challenge for one patient. Re-dismissing is a
// silent no-op; dismissing after completion or dismissing a mandatory
// challenge should never be allowed and fails before any effect is described.
type DismissChallengeFlow struct {
	Challenge *Challenge
	Record    *PatientChallenge
	Now       time.Time
}

func (f DismissChallengeFlow) Execute() (flow.Result, error) {
	const op = "practice.DismissChallenge"
	if f.Challenge == nil {
		return flow.Empty(), flow.NewError(flow.CodeValidation, op, "challenge is required", nil)
	}
	if f.Record == nil {
		return flow.Empty(), flow.NewError(flow.CodeValidation, op, "patient challenge record is required", nil)
	}

	if f.Challenge.IsMandatory {
		return flow.Empty(), flow.NewError(flow.CodeInvariantViolation, op, "mandatory challenge cannot be dismissed", nil)
	}
	if f.Record.IsCompleted() {
		return flow.Empty(), flow.NewError(flow.CodeInvariantViolation, op, "completed challenge cannot be dismissed", nil)
	}
	if f.Record.IsDismissed() {
		return flow.Empty(), nil
	}

	rec := f.Record.Clone()
	rec.Status |= StatusDismissed

	return flow.FromEntityAction(rec.Updated()), nil
}
