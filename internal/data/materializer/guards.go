package materializer

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vantagecare/practice-backend/internal/domain/flow"
	"github.com/vantagecare/practice-backend/internal/pkg/dbctx"
)

// UpdateByVersion updates a row only when id+version still match, bumping the
// version. Compare-and-set semantics for optimistic locking: a false return
// means another writer got there first.
func UpdateByVersion(dbc dbctx.Context, table string, id uuid.UUID, expectedVersion int, updates map[string]any) (bool, error) {
	const op = "materializer.UpdateByVersion"
	if dbc.Tx == nil {
		return false, flow.NewError(flow.CodeInternal, op, "missing db transaction context", nil)
	}
	table = strings.TrimSpace(table)
	if table == "" || id == uuid.Nil {
		return false, flow.NewError(flow.CodeValidation, op, "table and id are required", nil)
	}
	if expectedVersion < 0 {
		return false, flow.NewError(flow.CodeValidation, op, "expected version must be >= 0", nil)
	}
	// Map-based Updates skips GORM's auto-timestamp hook, so bump it here.
	withVersion := make(map[string]any, len(updates)+2)
	for k, v := range updates {
		withVersion[k] = v
	}
	withVersion["version"] = expectedVersion + 1
	withVersion["updated_at"] = time.Now().UTC()
	res := dbc.Tx.WithContext(dbc.Ctx).Table(table).
		Where("id = ? AND version = ?", id, expectedVersion).
		Updates(withVersion)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// RequireCASSuccess converts a failed compare-and-set into a typed conflict.
func RequireCASSuccess(ok bool, message string) error {
	if ok {
		return nil
	}
	return ConflictError(message)
}
