package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/xid"
	"github.com/sakif/farm-assistant/internal/apperror"
	"github.com/sakif/farm-assistant/internal/model"
	"github.com/sakif/farm-assistant/internal/repository"
)

// Compile-time check that *DB implements repository.UserRepository.
var _ repository.UserRepository = (*DB)(nil)

// CreateUser inserts a new farmer account, generating its xid. The pointer
// receiver pattern means the caller's struct gets the generated ID and
// timestamps after this returns.
func (db *DB) CreateUser(ctx context.Context, user *model.User) error {
	user.ID = xid.New().String()

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Language == "" {
		user.Language = "en"
	}

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO users (id, email, first_name, last_name, location, language, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		user.ID,
		user.Email,
		user.FirstName,
		user.LastName,
		user.Location,
		user.Language,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating user: %w", err)
	}

	return nil
}

// GetUserByID retrieves a user, translating the zero-row case to NotFound.
func (db *DB) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	return db.getUser(ctx, `WHERE id = ?`, id)
}

// GetUserByEmail retrieves a user by email. With no uniqueness constraint on
// email the first match wins, mirroring a linear scan over the store.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return db.getUser(ctx, `WHERE email = ? ORDER BY created_at LIMIT 1`, email)
}

func (db *DB) getUser(ctx context.Context, where, arg string) (*model.User, error) {
	var user model.User
	err := db.conn.QueryRowContext(ctx,
		`SELECT id, email, first_name, last_name, location, language, created_at, updated_at
		 FROM users `+where,
		arg,
	).Scan(
		&user.ID,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.Location,
		&user.Language,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("user", arg)
		}
		return nil, fmt.Errorf("sqlite: getting user %s: %w", arg, err)
	}

	return &user, nil
}
