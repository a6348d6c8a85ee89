package practice

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vantagecare/practice-backend/internal/domain/flow"
)

// EmployeeShortcut is a private per-employee quick link. Only its owner may
// change it.
type EmployeeShortcut struct {
	ID uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`

	EmployeeID uuid.UUID `gorm:"type:uuid;column:employee_id;not null;index" json:"employee_id"`
	Label      string    `gorm:"column:label;not null" json:"label"`
	Target     string    `gorm:"column:target;not null" json:"target"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (EmployeeShortcut) TableName() string { return "employee_shortcut" }

func (es *EmployeeShortcut) Clone() *EmployeeShortcut {
	out := *es
	return &out
}

func (es *EmployeeShortcut) Added() flow.EntityAction   { return flow.Added(es) }
func (es *EmployeeShortcut) Updated() flow.EntityAction { return flow.Updated(es) }
func (es *EmployeeShortcut) Deleted() flow.EntityAction { return flow.Deleted(es) }
