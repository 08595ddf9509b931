package store

import (
	"context"
	"strings"
	"sync"

	"github.com/MKhiriev/career-dashboard/models"
)

type memoryCredentialStore struct {
	mu    sync.RWMutex
	creds *models.Credentials
}

// NewMemoryCredentialStore returns a [CredentialStore] that keeps the record
// in process memory. It is used for ephemeral sessions and in tests.
func NewMemoryCredentialStore() CredentialStore {
	return &memoryCredentialStore{}
}

func (m *memoryCredentialStore) Save(_ context.Context, token string, user models.User) error {
	if strings.TrimSpace(token) == "" {
		return ErrEmptyToken
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.creds = &models.Credentials{Token: token, User: user}
	return nil
}

func (m *memoryCredentialStore) Load(_ context.Context) (models.Credentials, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.creds == nil {
		return models.Credentials{}, ErrCredentialsNotFound
	}
	return *m.creds, nil
}

func (m *memoryCredentialStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creds = nil
	return nil
}

func (m *memoryCredentialStore) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.creds == nil {
		return ""
	}
	return m.creds.Token
}
