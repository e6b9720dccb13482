package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"ingles-autodidata/internal/domain/user"
)

// SQLiteUserRepository keeps one JSON record per profile in a SQLite table
type SQLiteUserRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

type userRow struct {
	Email     string    `db:"email"`
	Record    string    `db:"record"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NewSQLiteUserRepository creates a SQLite backed profile store
func NewSQLiteUserRepository(db *sqlx.DB, logger *zap.Logger) *SQLiteUserRepository {
	return &SQLiteUserRepository{db: db, logger: logger}
}

// LoadAll reads every profile. Rows that fail to decode are skipped with a warning.
func (r *SQLiteUserRepository) LoadAll(ctx context.Context) (map[user.Email]*user.Profile, error) {
	var rows []userRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT email, record, updated_at FROM users ORDER BY email`); err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}

	profiles := make(map[user.Email]*user.Profile, len(rows))
	for _, row := range rows {
		var rec userRecord
		if err := json.Unmarshal([]byte(row.Record), &rec); err != nil {
			r.logger.Warn("skipping corrupt profile row", zap.String("email", row.Email), zap.Error(err))
			continue
		}
		p, err := fromRecord(row.Email, rec)
		if err != nil {
			r.logger.Warn("skipping invalid profile row", zap.String("email", row.Email), zap.Error(err))
			continue
		}
		profiles[p.Email()] = p
	}
	return profiles, nil
}

// SaveAll replaces the table contents in one transaction
func (r *SQLiteUserRepository) SaveAll(ctx context.Context, profiles map[user.Email]*user.Profile) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM users`); err != nil {
		return fmt.Errorf("failed to clear profiles: %w", err)
	}

	now := time.Now().UTC()
	for email, p := range profiles {
		data, err := json.Marshal(toRecord(p))
		if err != nil {
			return fmt.Errorf("failed to encode profile %s: %w", email, err)
		}
		row := userRow{Email: string(email), Record: string(data), UpdatedAt: now}
		if _, err := tx.NamedExecContext(ctx, `
			INSERT INTO users (email, record, updated_at)
			VALUES (:email, :record, :updated_at)
		`, row); err != nil {
			return fmt.Errorf("failed to save profile %s: %w", email, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Close closes the database
func (r *SQLiteUserRepository) Close() error {
	return r.db.Close()
}
