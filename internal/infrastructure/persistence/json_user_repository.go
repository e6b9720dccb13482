package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"ingles-autodidata/internal/domain/user"
	"ingles-autodidata/internal/infrastructure/filesystem"
)

// JSONUserRepository keeps every profile in one indented JSON file keyed by email
type JSONUserRepository struct {
	path   string
	logger *zap.Logger
}

// NewJSONUserRepository creates a JSON file backed profile store
func NewJSONUserRepository(path string, logger *zap.Logger) *JSONUserRepository {
	return &JSONUserRepository{path: path, logger: logger}
}

// LoadAll reads the file. A missing file gives an empty set, and so does an
// unreadable one after a warning. Records that fail validation are skipped.
func (r *JSONUserRepository) LoadAll(ctx context.Context) (map[user.Email]*user.Profile, error) {
	profiles := make(map[user.Email]*user.Profile)

	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return profiles, nil
	}
	if err != nil {
		r.logger.Warn("profiles file unreadable, starting empty", zap.String("path", r.path), zap.Error(err))
		return profiles, nil
	}

	var records map[string]userRecord
	if err := json.Unmarshal(data, &records); err != nil {
		r.logger.Warn("profiles file corrupt, starting empty", zap.String("path", r.path), zap.Error(err))
		return profiles, nil
	}

	for key, rec := range records {
		p, err := fromRecord(key, rec)
		if err != nil {
			r.logger.Warn("skipping invalid profile", zap.String("key", key), zap.Error(err))
			continue
		}
		profiles[p.Email()] = p
	}
	return profiles, nil
}

// SaveAll rewrites the whole file
func (r *JSONUserRepository) SaveAll(ctx context.Context, profiles map[user.Email]*user.Profile) error {
	records := make(map[string]userRecord, len(profiles))
	for email, p := range profiles {
		records[string(email)] = toRecord(p)
	}

	if err := filesystem.WriteJSON(r.path, records); err != nil {
		return fmt.Errorf("failed to save profiles: %w", err)
	}
	return nil
}

// Close releases nothing; the file is opened per call
func (r *JSONUserRepository) Close() error { return nil }
