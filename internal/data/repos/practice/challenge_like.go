package practice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vantagecare/practice-backend/internal/domain/practice"
	"github.com/vantagecare/practice-backend/internal/pkg/logger"
)

type ChallengeLikeRepo interface {
	GetByPatientAndChallenge(ctx context.Context, tx *gorm.DB, patientID, challengeID uuid.UUID) (*practice.ChallengeLike, error)
}

type challengeLikeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewChallengeLikeRepo(db *gorm.DB, baseLog *logger.Logger) ChallengeLikeRepo {
	repoLog := baseLog.With("repo", "ChallengeLikeRepo")
	return &challengeLikeRepo{db: db, log: repoLog}
}

// GetByPatientAndChallenge returns nil, nil when the patient has never liked
// the challenge; the toggle flow creates the record on first like.
func (lr *challengeLikeRepo) GetByPatientAndChallenge(ctx context.Context, tx *gorm.DB, patientID, challengeID uuid.UUID) (*practice.ChallengeLike, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	var result practice.ChallengeLike

	err := transaction.WithContext(ctx).
		Where("patient_id = ? AND challenge_id = ?", patientID, challengeID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}
