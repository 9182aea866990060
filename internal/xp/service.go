// Package xp tracks the player's experience: grants land in the store's
// append-only ledger and the level is derived from the lifetime total.
package xp

import (
	"context"
	"fmt"

	"quizdungeon/internal/combat"
	"quizdungeon/internal/progression"
	"quizdungeon/internal/store"
)

var _ combat.ExperienceLedger = (*Service)(nil)

// Service grants and reports experience for one store.
type Service struct {
	repo *store.ExperienceRepo
}

// NewService creates a Service backed by repo.
func NewService(repo *store.ExperienceRepo) *Service {
	return &Service{repo: repo}
}

// GrantExperience appends one grant to the ledger.
func (s *Service) GrantExperience(ctx context.Context, userID string, amount int, reason string, enemyLevel int) error {
	if amount <= 0 {
		return fmt.Errorf("grant experience: non-positive amount %d", amount)
	}
	return s.repo.Append(ctx, &store.ExperienceRow{
		UserID:     userID,
		Amount:     amount,
		Reason:     reason,
		EnemyLevel: enemyLevel,
	})
}

// Info returns the user's current level standing derived from the ledger
// total.
func (s *Service) Info(ctx context.Context, userID string) (progression.LevelInfo, error) {
	total, err := s.repo.Total(ctx, userID)
	if err != nil {
		return progression.LevelInfo{}, err
	}
	return progression.Info(total), nil
}
