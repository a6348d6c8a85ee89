package practice

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vantagecare/practice-backend/internal/data/repos/testutil"
	"github.com/vantagecare/practice-backend/internal/domain/practice"
	"github.com/vantagecare/practice-backend/internal/pkg/dbctx"
)

func TestChallengeRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewChallengeRepo(db, testutil.Logger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, tx, []*practice.Challenge{
		{
			ID:        uuid.New(),
			Title:     "10k steps",
			StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("Create: expected 1 challenge, got %d", len(created))
	}

	got, err := repo.GetByID(ctx, tx, created[0].ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ID != created[0].ID || got.Title != "10k steps" {
		t.Fatalf("GetByID: unexpected result: %+v", got)
	}

	active, err := repo.ListActiveOn(ctx, tx, "2026-03-15")
	if err != nil {
		t.Fatalf("ListActiveOn: %v", err)
	}
	found := false
	for _, c := range active {
		if c.ID == created[0].ID {
			found = true
		}
	}
	if !found {
		t.Fatalf("ListActiveOn: created challenge missing from %+v", active)
	}

	outside, err := repo.ListActiveOn(ctx, tx, "2026-05-01")
	if err != nil {
		t.Fatalf("ListActiveOn (outside): %v", err)
	}
	for _, c := range outside {
		if c.ID == created[0].ID {
			t.Fatalf("ListActiveOn (outside): challenge should not be active in May")
		}
	}
}

func TestChallengeLoaderVersionedSave(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewChallengeRepo(db, testutil.Logger(t))
	loader := NewChallengeLoader(testutil.Logger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, tx, []*practice.Challenge{
		{
			ID:        uuid.New(),
			Title:     "hydration",
			StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	agg, err := loader.Load(dbc, created[0].ID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	ch := agg.(*practice.Challenge)
	ch.Likes = 1
	loadedAt := ch.UpdatedAt

	if err := loader.Save(dbc, ch); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if ch.Version != 1 {
		t.Fatalf("Save must bump version, got %d", ch.Version)
	}

	reloaded, err := repo.GetByID(ctx, tx, created[0].ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if reloaded.Likes != 1 || reloaded.Version != 1 {
		t.Fatalf("reloaded counters: likes=%d version=%d", reloaded.Likes, reloaded.Version)
	}
	if !reloaded.UpdatedAt.After(loadedAt) {
		t.Fatalf("counter save must advance updated_at: loaded=%v reloaded=%v", loadedAt, reloaded.UpdatedAt)
	}

	// A save with a stale in-memory version must lose the compare-and-set.
	stale := reloaded.Clone()
	stale.Version = 0
	stale.Likes = 99
	if err := loader.Save(dbc, stale); err == nil {
		t.Fatalf("stale save must fail")
	}
}

func TestPatientChallengeRepoMissingIsNil(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewPatientChallengeRepo(db, testutil.Logger(t))

	got, err := repo.GetByPatientAndChallenge(context.Background(), tx, uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("GetByPatientAndChallenge: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing record, got %+v", got)
	}
}
