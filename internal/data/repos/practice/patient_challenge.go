package practice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vantagecare/practice-backend/internal/domain/practice"
	"github.com/vantagecare/practice-backend/internal/pkg/logger"
)

type PatientChallengeRepo interface {
	GetByPatientAndChallenge(ctx context.Context, tx *gorm.DB, patientID, challengeID uuid.UUID) (*practice.PatientChallenge, error)
	ListByPatient(ctx context.Context, tx *gorm.DB, patientID uuid.UUID) ([]*practice.PatientChallenge, error)
}

type patientChallengeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPatientChallengeRepo(db *gorm.DB, baseLog *logger.Logger) PatientChallengeRepo {
	repoLog := baseLog.With("repo", "PatientChallengeRepo")
	return &patientChallengeRepo{db: db, log: repoLog}
}

// GetByPatientAndChallenge returns nil, nil when no record exists yet; flows
// treat the absence as "not participating" rather than an error.
func (pr *patientChallengeRepo) GetByPatientAndChallenge(ctx context.Context, tx *gorm.DB, patientID, challengeID uuid.UUID) (*practice.PatientChallenge, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var result practice.PatientChallenge

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

func (pr *patientChallengeRepo) ListByPatient(ctx context.Context, tx *gorm.DB, patientID uuid.UUID) ([]*practice.PatientChallenge, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*practice.PatientChallenge

	if err := transaction.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
