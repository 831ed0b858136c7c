// Package persistence saves and restores the checklist tree through a
// key-value backend.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rpggio/checkmaster/internal/domain/checklist"
	"github.com/rpggio/checkmaster/internal/repository"
)

// DefaultKey is the storage key holding the serialized project.
const DefaultKey = "checkmaster_pro_state_v3"

// Store reads and writes the whole project under a single key.
type Store struct {
	kv     repository.KVStore
	key    string
	logger *slog.Logger
}

// New creates a Store. An empty key selects DefaultKey.
func New(kv repository.KVStore, key string, logger *slog.Logger) *Store {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{kv: kv, key: key, logger: logger}
}

// Key returns the storage key in use.
func (s *Store) Key() string {
	return s.key
}

// Save serializes the project and writes it under the store key.
func (s *Store) Save(ctx context.Context, p checklist.Project) error {
	data, err := Encode(p)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("writing checklist state: %w", err)
	}
	return nil
}

// Load returns the stored project, or a fresh seed when nothing usable is
// stored. It never fails.
func (s *Store) Load(ctx context.Context) checklist.Project {
	data, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Debug("no stored checklist, using seed", "key", s.key)
		} else {
			s.logger.Warn("failed to read checklist state, using seed", "key", s.key, "error", err)
		}
		return checklist.Seed()
	}

	p, err := Decode(data)
	if err != nil {
		s.logger.Warn("discarding stored checklist", "key", s.key, "error", err)
		return checklist.Seed()
	}
	return p
}

// Encode serializes a project to its persisted JSON form.
func Encode(p checklist.Project) ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encoding checklist: %w", err)
	}
	return data, nil
}

// Decode parses a persisted project. An empty or dangling active section is
// pointed at the first section; anything else that fails validation is an
// error.
func Decode(data []byte) (checklist.Project, error) {
	var p checklist.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return checklist.Project{}, fmt.Errorf("%w: %w", checklist.ErrInvalidProject, err)
	}
	if len(p.Sections) > 0 && p.SectionIndex(p.ActiveSectionID) < 0 {
		p.ActiveSectionID = p.Sections[0].ID
	}
	if err := checklist.Validate(p); err != nil {
		return checklist.Project{}, err
	}
	return p, nil
}
