package milestones

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/songbird/backend/internal/contracts"
)

// Repository persists milestone achievements.
// SSOT: achievement persistence lives here only.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new milestone repository
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// GetAchieved retrieves an owner's achieved milestones as a map from
// milestone ID to the local date it was first achieved.
func (r *Repository) GetAchieved(ctx context.Context, ownerID string) (map[string]contracts.DayKey, error) {
	query := `
		SELECT milestone_id, achieved_date
		FROM milestone_achievements
		WHERE owner_id = $1
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	achieved := make(map[string]contracts.DayKey)
	for rows.Next() {
		var id, date string
		if err := rows.Scan(&id, &date); err != nil {
			return nil, err
		}
		achieved[id] = contracts.DayKey(date)
	}
	return achieved, rows.Err()
}

// SaveAchieved records newly achieved milestones. Achievements are
// write-once: a conflict means the milestone was already recorded with
// its original date, which must stand.
func (r *Repository) SaveAchieved(ctx context.Context, ownerID string, records []contracts.MilestoneRecord) error {
	query := `
		INSERT INTO milestone_achievements (owner_id, milestone_id, achieved_date)
		VALUES ($1, $2, $3)
		ON CONFLICT (owner_id, milestone_id) DO NOTHING
	`

	for _, rec := range records {
		if !rec.Achieved {
			continue
		}
		if _, err := r.pool.Exec(ctx, query, ownerID, rec.MilestoneID, string(rec.AchievedDate)); err != nil {
			return err
		}
	}
	return nil
}
