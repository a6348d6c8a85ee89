package practice

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vantagecare/practice-backend/internal/domain/flow"
)

// RenameShortcutFlow renames a private shortcut. Touching another employee's
// shortcut is illegal and always errors; renaming to the current label is an
// absorbable no-op.
type RenameShortcutFlow struct {
	Shortcut        *EmployeeShortcut
	ActorEmployeeID uuid.UUID
	NewLabel        string
	Now             time.Time
}

func (f RenameShortcutFlow) Execute() (flow.Result, error) {
	const op = "practice.RenameShortcut"
	if f.Shortcut == nil {
		return flow.Empty(), flow.NewError(flow.CodeNotFound, op, "shortcut not found", nil)
	}
	if f.ActorEmployeeID == uuid.Nil {
		return flow.Empty(), flow.NewError(flow.CodeValidation, op, "actor employee id is required", nil)
	}
	if f.Shortcut.EmployeeID != f.ActorEmployeeID {
		return flow.Empty(), flow.NewError(flow.CodeInvariantViolation, op, "shortcut belongs to another employee", nil)
	}

	label := strings.TrimSpace(f.NewLabel)
	if label == "" {
		return flow.Empty(), flow.NewError(flow.CodeValidation, op, "label is required", nil)
	}
	if label == f.Shortcut.Label {
		return flow.Empty(), nil
	}

	rec := f.Shortcut.Clone()
	rec.Label = label

	return flow.FromEntityAction(rec.Updated()), nil
}
