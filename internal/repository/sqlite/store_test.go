package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sakif/farm-assistant/internal/apperror"
	"github.com/sakif/farm-assistant/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDB creates an in-memory database that's cleaned up with the test.
// ":memory:" gives a fresh, isolated store per test — no files, no cleanup.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCreateUser(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := &model.User{
		Email:     "ravi@example.com",
		FirstName: "Ravi",
		LastName:  "Kumar",
		Location:  "Mysore, Karnataka",
	}
	require.NoError(t, db.CreateUser(ctx, user))

	// Create fills in the generated fields on the caller's struct.
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "en", user.Language, "language defaults to en")
	assert.False(t, user.CreatedAt.IsZero())

	got, err := db.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ravi", got.FirstName)

	byEmail, err := db.GetUserByEmail(ctx, "ravi@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestGetUserNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.GetUserByID(context.Background(), "missing")
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestCreateScan(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	first := &model.DiseaseScan{
		UserID:     "1",
		ImageData:  "aGVsbG8=",
		Diagnosis:  "Early Blight",
		Confidence: 85,
		Remedies:   []string{"Remove affected leaves", "Apply copper fungicide"},
	}
	require.NoError(t, db.CreateScan(ctx, first))

	second := &model.DiseaseScan{UserID: "1", ImageData: "d29ybGQ="}
	require.NoError(t, db.CreateScan(ctx, second))

	// Scan ids are a monotonic per-table counter.
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.False(t, first.ScanDate.IsZero())
}

func TestCreateScanUnknownUserAllowed(t *testing.T) {
	// No foreign key from scans to users — a scan for an id that was never
	// registered must still succeed.
	db := newTestDB(t)

	scan := &model.DiseaseScan{UserID: "never-registered", ImageData: "aGVsbG8="}
	assert.NoError(t, db.CreateScan(context.Background(), scan))
}

func TestCreateActivityAssignsMonotonicIDs(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	var lastID int64
	for i := 0; i < 3; i++ {
		a := &model.Activity{UserID: "1", Type: model.ActivityMarket, Title: "Market analysis requested"}
		require.NoError(t, db.CreateActivity(ctx, a))
		assert.Greater(t, a.ID, lastID)
		lastID = a.ID
	}
}

func TestListActivitiesByUserNewestFirst(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	// Insert with explicit timestamps so the ordering is fully controlled:
	// two entries share a timestamp to exercise the tie-break.
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	insert := func(title string, at time.Time) {
		_, err := db.conn.ExecContext(ctx,
			`INSERT INTO activities (user_id, type, title, created_at) VALUES (?, ?, ?, ?)`,
			"1", model.ActivityScan, title, at,
		)
		require.NoError(t, err)
	}
	insert("oldest", base)
	insert("tie-a", base.Add(time.Hour))
	insert("tie-b", base.Add(time.Hour))
	insert("newest", base.Add(2*time.Hour))

	activities, err := db.ListActivitiesByUser(ctx, "1")
	require.NoError(t, err)
	require.Len(t, activities, 4)

	titles := []string{activities[0].Title, activities[1].Title, activities[2].Title, activities[3].Title}
	// Newest first; equal timestamps keep insertion order.
	assert.Equal(t, []string{"newest", "tie-a", "tie-b", "oldest"}, titles)
}

func TestListActivitiesFiltersByUser(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.CreateActivity(ctx, &model.Activity{UserID: "1", Type: model.ActivityVoice, Title: "Voice query processed"}))
	require.NoError(t, db.CreateActivity(ctx, &model.Activity{UserID: "2", Type: model.ActivityScan, Title: "Disease scan completed"}))

	activities, err := db.ListActivitiesByUser(ctx, "1")
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "Voice query processed", activities[0].Title)

	// Unknown user gets an empty feed, not an error.
	empty, err := db.ListActivitiesByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
