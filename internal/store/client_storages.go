package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/career-dashboard/internal/config"
	"github.com/MKhiriev/career-dashboard/internal/logger"
)

// ClientStorages groups the client-side storage components.
type ClientStorages struct {
	// Credentials persists the session token and user record.
	Credentials CredentialStore

	db *DB
}

// NewClientStorages opens the local SQLite database at cfg.DB.DSN, applies
// pending migrations and wires the credential repository on top of it.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Credentials: NewCredentialRepository(db, logger),
		db:          db,
	}, nil
}

// Close releases the underlying database connection.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
