package repository

import (
	"context"

	"github.com/sakif/farm-assistant/internal/model"
)

// UserRepository stores farmer accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

// ScanRepository stores disease scan results. Scans are write-once — nothing
// in the API updates or deletes them.
type ScanRepository interface {
	CreateScan(ctx context.Context, scan *model.DiseaseScan) error
}

// ActivityRepository stores the append-only per-user history feed.
//
// CreateActivity never enforces that UserID resolves to a stored User — the
// client sends whatever id it has and the feed is best-effort bookkeeping,
// not a source of truth.
type ActivityRepository interface {
	CreateActivity(ctx context.Context, activity *model.Activity) error
	ListActivitiesByUser(ctx context.Context, userID string) ([]model.Activity, error)
}
