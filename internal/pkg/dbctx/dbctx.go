package dbctx

import (
	"context"

	"gorm.io/gorm"
)

// Context bundles a request context with the GORM transaction an operation
// runs inside. Repos fall back to their root handle when Tx is nil.
type Context struct {
	Ctx context.Context
	Tx  *gorm.DB
}
