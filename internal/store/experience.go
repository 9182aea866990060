package store

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// ExperienceRepo appends to and sums the experience ledger. Totals are always
// recomputed from the grants; there is no cached balance to drift.
type ExperienceRepo struct {
	db *bun.DB
}

// Append records one experience grant.
func (r *ExperienceRepo) Append(ctx context.Context, row *ExperienceRow) error {
	if _, err := r.db.NewInsert().Model(row).Exec(ctx); err != nil {
		return fmt.Errorf("append experience grant: %w", err)
	}
	return nil
}

// Total returns the user's lifetime experience.
func (r *ExperienceRepo) Total(ctx context.Context, userID string) (int, error) {
	var total int
	err := r.db.NewSelect().
		Model((*ExperienceRow)(nil)).
		ColumnExpr("COALESCE(SUM(amount), 0)").
		Where("user_id = ?", userID).
		Scan(ctx, &total)
	if err != nil {
		return 0, fmt.Errorf("sum experience: %w", err)
	}
	return total, nil
}

// Grants returns the user's experience grants, newest first.
func (r *ExperienceRepo) Grants(ctx context.Context, userID string, limit int) ([]ExperienceRow, error) {
	var rows []ExperienceRow
	q := r.db.NewSelect().
		Model(&rows).
		Where("user_id = ?", userID).
		OrderExpr("granted_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("load experience grants: %w", err)
	}
	return rows, nil
}
