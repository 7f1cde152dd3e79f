package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sakif/farm-assistant/internal/model"
	"github.com/sakif/farm-assistant/internal/repository"
)

var _ repository.ScanRepository = (*DB)(nil)

// CreateScan inserts a disease scan result. The remedies slice is stored as
// a JSON array in a TEXT column — scans are write-once display data, never
// queried by remedy, so there's no reason to normalise them into a table.
func (db *DB) CreateScan(ctx context.Context, scan *model.DiseaseScan) error {
	scan.ScanDate = time.Now()

	remedies := scan.Remedies
	if remedies == nil {
		remedies = []string{}
	}
	remediesJSON, err := json.Marshal(remedies)
	if err != nil {
		return fmt.Errorf("sqlite: encoding remedies: %w", err)
	}

	result, err := db.conn.ExecContext(ctx,
		`INSERT INTO disease_scans (user_id, image_data, diagnosis, confidence, remedies, scan_date)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		scan.UserID,
		scan.ImageData,
		scan.Diagnosis,
		scan.Confidence,
		string(remediesJSON),
		scan.ScanDate,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating disease scan: %w", err)
	}

	// LastInsertId returns the AUTOINCREMENT id SQLite assigned — this is
	// the monotonic scan counter.
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading scan id: %w", err)
	}
	scan.ID = id

	return nil
}
