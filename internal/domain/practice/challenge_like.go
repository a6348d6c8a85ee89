package practice

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vantagecare/practice-backend/internal/domain/flow"
)

// ChallengeLike is the per (patient, challenge) like record. Liking toggles:
// the record survives an unlike with Liked=false rather than being deleted.
type ChallengeLike struct {
	ID uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`

	PatientID   uuid.UUID `gorm:"type:uuid;column:patient_id;not null;index:idx_challenge_like,unique" json:"patient_id"`
	ChallengeID uuid.UUID `gorm:"type:uuid;column:challenge_id;not null;index:idx_challenge_like,unique" json:"challenge_id"`

	Liked bool `gorm:"column:liked;not null;default:false" json:"liked"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (ChallengeLike) TableName() string { return "challenge_like" }

func (cl *ChallengeLike) Clone() *ChallengeLike {
	out := *cl
	return &out
}

func (cl *ChallengeLike) Added() flow.EntityAction   { return flow.Added(cl) }
func (cl *ChallengeLike) Updated() flow.EntityAction { return flow.Updated(cl) }
func (cl *ChallengeLike) Deleted() flow.EntityAction { return flow.Deleted(cl) }
