package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vantagecare/practice-backend/internal/data/materializer"
	"github.com/vantagecare/practice-backend/internal/data/repos"
	"github.com/vantagecare/practice-backend/internal/domain/flow"
	"github.com/vantagecare/practice-backend/internal/domain/practice"
	"github.com/vantagecare/practice-backend/internal/pkg/logger"
)

// ChallengeService owns every write path touching challenges. Each write is a
// reload-decide-materialize closure: state is loaded fresh, the pure flow
// decides, and the materializer applies. On a version conflict the whole
// closure re-runs so the decision is always made against current state.
type ChallengeService interface {
	GetChallenge(ctx context.Context, challengeID uuid.UUID) (*practice.Challenge, error)
	ListActiveChallenges(ctx context.Context, now time.Time) ([]*practice.Challenge, error)
	ListPatientChallenges(ctx context.Context, patientID uuid.UUID) ([]*practice.PatientChallenge, error)

	LikeChallenge(ctx context.Context, patientID, challengeID uuid.UUID) error
	ParticipateInChallenge(ctx context.Context, patientID, challengeID uuid.UUID) error
	CompleteChallenge(ctx context.Context, patientID, challengeID uuid.UUID, auto bool) error
	DismissChallenge(ctx context.Context, patientID, challengeID uuid.UUID) error
}

type challengeService struct {
	db  *gorm.DB
	log *logger.Logger

	challenges        repos.ChallengeRepo
	patientChallenges repos.PatientChallengeRepo
	likes             repos.ChallengeLikeRepo

	mat   *materializer.Materializer
	retry materializer.RetryPolicy
	now   func() time.Time
}

func NewChallengeService(
	db *gorm.DB,
	baseLog *logger.Logger,
	challenges repos.ChallengeRepo,
	patientChallenges repos.PatientChallengeRepo,
	likes repos.ChallengeLikeRepo,
	mat *materializer.Materializer,
) ChallengeService {
	return &challengeService{
		db:                db,
		log:               baseLog.With("service", "ChallengeService"),
		challenges:        challenges,
		patientChallenges: patientChallenges,
		likes:             likes,
		mat:               mat,
		retry:             materializer.DefaultRetryPolicy(),
		now:               func() time.Time { return time.Now().UTC() },
	}
}

func (s *challengeService) GetChallenge(ctx context.Context, challengeID uuid.UUID) (*practice.Challenge, error) {
	const op = "ChallengeService.GetChallenge"
	ch, err := s.challenges.GetByID(ctx, nil, challengeID)
	if err != nil {
		return nil, materializer.MapError(op, err)
	}
	return ch, nil
}

func (s *challengeService) ListActiveChallenges(ctx context.Context, now time.Time) ([]*practice.Challenge, error) {
	const op = "ChallengeService.ListActiveChallenges"
	day := now.UTC().Format("2006-01-02")
	out, err := s.challenges.ListActiveOn(ctx, nil, day)
	if err != nil {
		return nil, materializer.MapError(op, err)
	}
	return out, nil
}

func (s *challengeService) ListPatientChallenges(ctx context.Context, patientID uuid.UUID) ([]*practice.PatientChallenge, error) {
	const op = "ChallengeService.ListPatientChallenges"
	out, err := s.patientChallenges.ListByPatient(ctx, nil, patientID)
	if err != nil {
		return nil, materializer.MapError(op, err)
	}
	return out, nil
}

func (s *challengeService) LikeChallenge(ctx context.Context, patientID, challengeID uuid.UUID) error {
	const op = "ChallengeService.LikeChallenge"
	return materializer.RetryOnConflict(ctx, s.log, s.retry, op, func(ctx context.Context) error {
		if _, err := s.challenges.GetByID(ctx, nil, challengeID); err != nil {
			return materializer.MapError(op, err)
		}
		existing, err := s.likes.GetByPatientAndChallenge(ctx, nil, patientID, challengeID)
		if err != nil {
			return materializer.MapError(op, err)
		}
		_, err = s.mat.Materialize(ctx, op, practice.LikeChallengeFlow{
			Existing:    existing,
			ChallengeID: challengeID,
			PatientID:   patientID,
			Now:         s.now(),
		})
		return err
	})
}

func (s *challengeService) ParticipateInChallenge(ctx context.Context, patientID, challengeID uuid.UUID) error {
	const op = "ChallengeService.ParticipateInChallenge"
	return materializer.RetryOnConflict(ctx, s.log, s.retry, op, func(ctx context.Context) error {
		ch, err := s.challenges.GetByID(ctx, nil, challengeID)
		if err != nil {
			return materializer.MapError(op, err)
		}
		existing, err := s.patientChallenges.GetByPatientAndChallenge(ctx, nil, patientID, challengeID)
		if err != nil {
			return materializer.MapError(op, err)
		}
		_, err = s.mat.Materialize(ctx, op, practice.ParticipateInChallengeFlow{
			Challenge: ch,
			Existing:  existing,
			PatientID: patientID,
			Now:       s.now(),
		})
		return err
	})
}

func (s *challengeService) CompleteChallenge(ctx context.Context, patientID, challengeID uuid.UUID, auto bool) error {
	const op = "ChallengeService.CompleteChallenge"
	return materializer.RetryOnConflict(ctx, s.log, s.retry, op, func(ctx context.Context) error {
		rec, err := s.patientChallenges.GetByPatientAndChallenge(ctx, nil, patientID, challengeID)
		if err != nil {
			return materializer.MapError(op, err)
		}
		if rec == nil {
			return flow.NewError(flow.CodeNotFound, op, "patient is not enrolled in this challenge", nil)
		}
		_, err = s.mat.Materialize(ctx, op, practice.CompleteChallengeFlow{
			Record: rec,
			Auto:   auto,
			Now:    s.now(),
		})
		return err
	})
}

func (s *challengeService) DismissChallenge(ctx context.Context, patientID, challengeID uuid.UUID) error {
	const op = "ChallengeService.DismissChallenge"
	return materializer.RetryOnConflict(ctx, s.log, s.retry, op, func(ctx context.Context) error {
		ch, err := s.challenges.GetByID(ctx, nil, challengeID)
		if err != nil {
			return materializer.MapError(op, err)
		}
		rec, err := s.patientChallenges.GetByPatientAndChallenge(ctx, nil, patientID, challengeID)
		if err != nil {
			return materializer.MapError(op, err)
		}
		if rec == nil {
			return flow.NewError(flow.CodeNotFound, op, "patient is not enrolled in this challenge", nil)
		}
		_, err = s.mat.Materialize(ctx, op, practice.DismissChallengeFlow{
			Challenge: ch,
			Record:    rec,
			Now:       s.now(),
		})
		return err
	})
}
