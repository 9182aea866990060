package xp

import (
	"context"
	"testing"

	"quizdungeon/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return NewService(s.Experience())
}

func TestGrantAndInfo(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	info, err := svc.Info(ctx, "local")
	if err != nil {
		t.Fatalf("info (empty): %v", err)
	}
	if info.Level != 1 || info.CurrentXP != 0 {
		t.Errorf("fresh info = %+v, want level 1 at 0 XP", info)
	}

	// Two level-1 kills and a level-5 kill: 50 + 50 + 90 = 190.
	for _, amount := range []int{50, 50, 90} {
		if err := svc.GrantExperience(ctx, "local", amount, "enemy_defeated", 1); err != nil {
			t.Fatalf("grant %d: %v", amount, err)
		}
	}

	info, err = svc.Info(ctx, "local")
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	if info.CurrentXP != 190 || info.Level != 1 {
		t.Errorf("info = %+v, want 190 XP at level 1", info)
	}

	// Push over the level-2 threshold.
	if err := svc.GrantExperience(ctx, "local", 310, "enemy_defeated", 9); err != nil {
		t.Fatalf("grant: %v", err)
	}
	info, err = svc.Info(ctx, "local")
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	if info.Level != 2 {
		t.Errorf("level = %d, want 2 at 500 XP", info.Level)
	}
}

func TestGrantRejectsNonPositive(t *testing.T) {
	svc := newTestService(t)

	if err := svc.GrantExperience(context.Background(), "local", 0, "enemy_defeated", 1); err == nil {
		t.Error("expected error for zero amount")
	}
}
