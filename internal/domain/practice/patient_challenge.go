package practice

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vantagecare/practice-backend/internal/domain/flow"
)

// ChallengeStatus is a bitset: dismissal and the two completion kinds are
// independent bits rather than a strict enum, so "completed" and "dismissed"
// stay distinguishable terminal conditions.
type ChallengeStatus int16

const (
	StatusActive           ChallengeStatus = 1 << 0
	StatusDismissed        ChallengeStatus = 1 << 1
	StatusPatientCompleted ChallengeStatus = 1 << 2
	StatusAutoCompleted    ChallengeStatus = 1 << 3
)

func (s ChallengeStatus) Has(bit ChallengeStatus) bool { return s&bit != 0 }

// PatientChallenge is the per (patient, challenge) join record tracking
// participation and completion state.
type PatientChallenge struct {
	ID uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`

	PatientID   uuid.UUID `gorm:"type:uuid;column:patient_id;not null;index:idx_patient_challenge,unique" json:"patient_id"`
	ChallengeID uuid.UUID `gorm:"type:uuid;column:challenge_id;not null;index:idx_patient_challenge,unique" json:"challenge_id"`

	IsParticipant bool            `gorm:"column:is_participant;not null;default:false" json:"is_participant"`
	Status        ChallengeStatus `gorm:"column:status;not null;default:1" json:"status"`
	CompletedAt   *time.Time      `gorm:"column:completed_at" json:"completed_at,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (PatientChallenge) TableName() string { return "patient_challenge" }

// IsCompleted reports whether either completion bit is set.
func (pc *PatientChallenge) IsCompleted() bool {
	return pc.Status.Has(StatusPatientCompleted) || pc.Status.Has(StatusAutoCompleted)
}

func (pc *PatientChallenge) IsDismissed() bool { return pc.Status.Has(StatusDismissed) }

// Clone returns a copy for flows to describe an update against without
// mutating the loaded record.
func (pc *PatientChallenge) Clone() *PatientChallenge {
	out := *pc
	return &out
}

func (pc *PatientChallenge) Added() flow.EntityAction   { return flow.Added(pc) }
func (pc *PatientChallenge) Updated() flow.EntityAction { return flow.Updated(pc) }
func (pc *PatientChallenge) Deleted() flow.EntityAction { return flow.Deleted(pc) }
