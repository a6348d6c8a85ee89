package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vantagecare/practice-backend/internal/data/materializer"
	"github.com/vantagecare/practice-backend/internal/data/repos"
	"github.com/vantagecare/practice-backend/internal/domain/practice"
	"github.com/vantagecare/practice-backend/internal/pkg/logger"
)

// ShortcutService manages private per-employee shortcuts. Writes go through
// the same materializer as challenge writes, but shortcuts carry no aggregate
// counters so a conflict retry never triggers here in practice.
type ShortcutService interface {
	ListShortcuts(ctx context.Context, employeeID uuid.UUID) ([]*practice.EmployeeShortcut, error)
	RenameShortcut(ctx context.Context, employeeID, shortcutID uuid.UUID, newLabel string) error
}

type shortcutService struct {
	db  *gorm.DB
	log *logger.Logger

	shortcuts repos.ShortcutRepo
	mat       *materializer.Materializer
	now       func() time.Time
}

func NewShortcutService(
	db *gorm.DB,
	baseLog *logger.Logger,
	shortcuts repos.ShortcutRepo,
	mat *materializer.Materializer,
) ShortcutService {
	return &shortcutService{
		db:        db,
		log:       baseLog.With("service", "ShortcutService"),
		shortcuts: shortcuts,
		mat:       mat,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *shortcutService) ListShortcuts(ctx context.Context, employeeID uuid.UUID) ([]*practice.EmployeeShortcut, error) {
	const op = "ShortcutService.ListShortcuts"
	out, err := s.shortcuts.ListByEmployee(ctx, nil, employeeID)
	if err != nil {
		return nil, materializer.MapError(op, err)
	}
	return out, nil
}

func (s *shortcutService) RenameShortcut(ctx context.Context, employeeID, shortcutID uuid.UUID, newLabel string) error {
	const op = "ShortcutService.RenameShortcut"
	sc, err := s.shortcuts.GetByID(ctx, nil, shortcutID)
	if err != nil {
		return materializer.MapError(op, err)
	}
	_, err = s.mat.Materialize(ctx, op, practice.RenameShortcutFlow{
		Shortcut:        sc,
		ActorEmployeeID: employeeID,
		NewLabel:        newLabel,
		Now:             s.now(),
	})
	return err
}
