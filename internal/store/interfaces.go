// Package store implements durable credential persistence for the client.
//
// The session token and the serialized user record are kept under two fixed
// keys of a local SQLite key/value table. Both keys are written in one
// transaction and removed in one transaction, so a token is never stored
// without its user and vice versa.
package store

import (
	"context"

	"github.com/MKhiriev/career-dashboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_store_mock.go -package=mock

// Keys of the credential record in the key/value table.
const (
	TokenKey = "token"
	UserKey  = "user"
)

// CredentialStore is the only component that touches durable storage.
type CredentialStore interface {
	// Save atomically stores token and user. On error neither key changes.
	Save(ctx context.Context, token string, user models.User) error

	// Load returns the stored record. A missing, half-written or malformed
	// record yields [ErrCredentialsNotFound]; malformed data is cleared as a
	// side effect. Only genuine storage failures are returned otherwise.
	Load(ctx context.Context) (models.Credentials, error)

	// Clear atomically removes both keys. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error

	// Token returns the currently persisted token from memory without I/O,
	// or an empty string when none is stored.
	Token() string
}
