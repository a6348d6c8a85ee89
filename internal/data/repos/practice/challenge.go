package practice

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vantagecare/practice-backend/internal/domain/practice"
	"github.com/vantagecare/practice-backend/internal/pkg/logger"
)

type ChallengeRepo interface {
	Create(ctx context.Context, tx *gorm.DB, challenges []*practice.Challenge) ([]*practice.Challenge, error)
	GetByID(ctx context.Context, tx *gorm.DB, challengeID uuid.UUID) (*practice.Challenge, error)
	ListActiveOn(ctx context.Context, tx *gorm.DB, day string) ([]*practice.Challenge, error)
}

type challengeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewChallengeRepo(db *gorm.DB, baseLog *logger.Logger) ChallengeRepo {
	repoLog := baseLog.With("repo", "ChallengeRepo")
	return &challengeRepo{db: db, log: repoLog}
}

func (cr *challengeRepo) Create(ctx context.Context, tx *gorm.DB, challenges []*practice.Challenge) ([]*practice.Challenge, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	if len(challenges) == 0 {
		return []*practice.Challenge{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&challenges).Error; err != nil {
		return nil, err
	}

	return challenges, nil
}

func (cr *challengeRepo) GetByID(ctx context.Context, tx *gorm.DB, challengeID uuid.UUID) (*practice.Challenge, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var result practice.Challenge

	if err := transaction.WithContext(ctx).
		Where("id = ?", challengeID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (cr *challengeRepo) ListActiveOn(ctx context.Context, tx *gorm.DB, day string) ([]*practice.Challenge, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*practice.Challenge

	if err := transaction.WithContext(ctx).
		Where("start_date::date <= ?::date AND end_date::date >= ?::date", day, day).
		Order("start_date ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
