package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/sakif/farm-assistant/internal/model"
	"github.com/sakif/farm-assistant/internal/repository"
)

var _ repository.ActivityRepository = (*DB)(nil)

// CreateActivity appends one entry to the history feed. It always succeeds
// for well-formed input — no uniqueness or referential checks by design.
func (db *DB) CreateActivity(ctx context.Context, activity *model.Activity) error {
	activity.CreatedAt = time.Now()

	result, err := db.conn.ExecContext(ctx,
		`INSERT INTO activities (user_id, type, title, description, icon, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		activity.UserID,
		activity.Type,
		activity.Title,
		activity.Description,
		activity.Icon,
		activity.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating activity: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading activity id: %w", err)
	}
	activity.ID = id

	return nil
}

// ListActivitiesByUser returns the user's feed newest-first. The secondary
// "id ASC" keeps entries with the same timestamp in insertion order, so the
// sort is stable across calls.
func (db *DB) ListActivitiesByUser(ctx context.Context, userID string) ([]model.Activity, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, user_id, type, title, description, icon, created_at
		 FROM activities
		 WHERE user_id = ?
		 ORDER BY created_at DESC, id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing activities for %s: %w", userID, err)
	}
	defer rows.Close()

	activities := []model.Activity{}
	for rows.Next() {
		var a model.Activity
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.Type, &a.Title, &a.Description, &a.Icon, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning activity row: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating activities: %w", err)
	}

	return activities, nil
}
