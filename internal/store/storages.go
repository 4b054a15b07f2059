package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-spellbook/internal/config"
	"github.com/MKhiriev/go-spellbook/internal/logger"
)

// Storages groups the repositories handed to the service layer.
type Storages struct {
	CharacterRepository CharacterRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "store.NewStorages").Msg("error migrating database")
		db.Close()
		return nil, err
	}

	return &Storages{
		CharacterRepository: NewCharacterRepository(db, log),
		db:                  db,
	}, nil
}

// Close releases the database handle.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
