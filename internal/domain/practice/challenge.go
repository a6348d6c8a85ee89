package practice

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/vantagecare/practice-backend/internal/domain/flow"
)

// AggregateChallenge routes challenge aggregate events to their reducers.
const AggregateChallenge flow.AggregateKind = "challenge"

// Challenge is the aggregate holding denormalized, event-derived counters for
// one practice challenge. Flows never write these counters directly; they are
// kept in sync by reducers applied inside the materializer's transaction.
type Challenge struct {
	ID uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`

	Title       string `gorm:"column:title;not null" json:"title"`
	Description string `gorm:"column:description;type:text" json:"description,omitempty"`

	StartDate   time.Time `gorm:"column:start_date;not null;index" json:"start_date"`
	EndDate     time.Time `gorm:"column:end_date;not null;index" json:"end_date"`
	IsMandatory bool      `gorm:"column:is_mandatory;not null;default:false" json:"is_mandatory"`

	Likes        int `gorm:"column:likes;not null;default:0" json:"likes"`
	Participants int `gorm:"column:participants;not null;default:0" json:"participants"`
	Completions  int `gorm:"column:completions;not null;default:0" json:"completions"`

	Version  int            `gorm:"column:version;not null;default:0" json:"version"`
	Metadata datatypes.JSON `gorm:"column:metadata;type:jsonb" json:"metadata,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Challenge) TableName() string { return "challenge" }

func (Challenge) AggregateKind() flow.AggregateKind { return AggregateChallenge }

// IsActiveOn reports whether the given instant falls inside the challenge
// activity window. The window is inclusive by calendar date, not time of day.
func (c *Challenge) IsActiveOn(now time.Time) bool {
	day := dateOf(now)
	return !day.Before(dateOf(c.StartDate)) && !day.After(dateOf(c.EndDate))
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (c *Challenge) Clone() *Challenge {
	out := *c
	return &out
}

func (c *Challenge) Added() flow.EntityAction   { return flow.Added(c) }
func (c *Challenge) Updated() flow.EntityAction { return flow.Updated(c) }
func (c *Challenge) Deleted() flow.EntityAction { return flow.Deleted(c) }
