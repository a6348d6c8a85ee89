package practice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vantagecare/practice-backend/internal/domain/practice"
	"github.com/vantagecare/practice-backend/internal/pkg/logger"
)

type ShortcutRepo interface {
	GetByID(ctx context.Context, tx *gorm.DB, shortcutID uuid.UUID) (*practice.EmployeeShortcut, error)
	ListByEmployee(ctx context.Context, tx *gorm.DB, employeeID uuid.UUID) ([]*practice.EmployeeShortcut, error)
}

type shortcutRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewShortcutRepo(db *gorm.DB, baseLog *logger.Logger) ShortcutRepo {
	repoLog := baseLog.With("repo", "ShortcutRepo")
	return &shortcutRepo{db: db, log: repoLog}
}

func (sr *shortcutRepo) GetByID(ctx context.Context, tx *gorm.DB, shortcutID uuid.UUID) (*practice.EmployeeShortcut, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var result practice.EmployeeShortcut

	err := transaction.WithContext(ctx).
		Where("id = ?", shortcutID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (sr *shortcutRepo) ListByEmployee(ctx context.Context, tx *gorm.DB, employeeID uuid.UUID) ([]*practice.EmployeeShortcut, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var results []*practice.EmployeeShortcut

	if err := transaction.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("label ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
