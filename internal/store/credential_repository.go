// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/career-dashboard/internal/logger"
	"github.com/MKhiriev/career-dashboard/models"
)

type credentialRepository struct {
	db     *DB
	logger *logger.Logger

	// writeMu orders storage writes together with their cache updates.
	writeMu sync.Mutex

	mu    sync.RWMutex
	token string
}

// NewCredentialRepository returns a SQLite-backed [CredentialStore]. The
// in-memory token cache starts empty and is filled by Save or Load.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialStore {
	return &credentialRepository{
		db:     db,
		logger: logger,
	}
}

func (r *credentialRepository) Save(ctx context.Context, token string, user models.User) error {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(token) == "" {
		return ErrEmptyToken
	}

	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("%w: encode user: %w", ErrSavingCredentials, err)
	}

	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	err = r.db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		for _, kv := range [][2]string{{TokenKey, token}, {UserKey, string(userJSON)}} {
			query, args, buildErr := buildUpsertCredential(kv[0], kv[1])
			if buildErr != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
			}
			if _, execErr := tx.ExecContext(ctx, query, args...); execErr != nil {
				return fmt.Errorf("upsert %q: %w", kv[0], execErr)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.Save").Msg("failed to persist credentials")
		return fmt.Errorf("%w: %w", ErrSavingCredentials, err)
	}

	r.setToken(token)
	log.Debug().Str("func", "credentialRepository.Save").Str("user_id", user.ID).Msg("credentials saved")
	return nil
}

func (r *credentialRepository) Load(ctx context.Context) (models.Credentials, error) {
	log := logger.FromContext(ctx)

	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	values, err := r.selectAll(ctx)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.Load").Msg("failed to read credentials")
		return models.Credentials{}, err
	}

	token, hasToken := values[TokenKey]
	userJSON, hasUser := values[UserKey]

	if !hasToken && !hasUser {
		r.setToken("")
		return models.Credentials{}, ErrCredentialsNotFound
	}

	creds, decodeErr := decodeCredentials(token, userJSON, hasToken, hasUser)
	if decodeErr != nil {
		log.Warn().Err(decodeErr).Str("func", "credentialRepository.Load").Msg("discarding malformed credentials")
		if clearErr := r.clearLocked(ctx); clearErr != nil {
			return models.Credentials{}, clearErr
		}
		return models.Credentials{}, ErrCredentialsNotFound
	}

	r.setToken(creds.Token)
	return creds, nil
}

func (r *credentialRepository) Clear(ctx context.Context) error {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()
	return r.clearLocked(ctx)
}

// clearLocked must be called with writeMu held.
func (r *credentialRepository) clearLocked(ctx context.Context) error {
	log := logger.FromContext(ctx)

	// the cache is dropped even if the delete fails so readers fail closed
	r.setToken("")

	query, args, err := buildDeleteCredentials()
	if err != nil {
		return fmt.Errorf("%w: %w: %w", ErrClearingCredentials, ErrBuildingSQLQuery, err)
	}

	err = r.db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		_, execErr := tx.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.Clear").Msg("failed to delete credentials")
		return fmt.Errorf("%w: %w", ErrClearingCredentials, err)
	}

	return nil
}

func (r *credentialRepository) Token() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.token
}

func (r *credentialRepository) setToken(token string) {
	r.mu.Lock()
	r.token = token
	r.mu.Unlock()
}

func (r *credentialRepository) selectAll(ctx context.Context) (map[string]string, error) {
	query, args, err := buildSelectCredentials()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	values := make(map[string]string, len(credentialKeys))
	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		values[key] = value
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return values, nil
}

var errMalformedCredentials = errors.New("malformed credential record")

// decodeCredentials validates a raw token/user pair as read from storage.
func decodeCredentials(token, userJSON string, hasToken, hasUser bool) (models.Credentials, error) {
	if !hasToken || !hasUser {
		return models.Credentials{}, fmt.Errorf("%w: half-written pair", errMalformedCredentials)
	}
	if strings.TrimSpace(token) == "" {
		return models.Credentials{}, fmt.Errorf("%w: empty token", errMalformedCredentials)
	}

	var user models.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return models.Credentials{}, fmt.Errorf("%w: %w", errMalformedCredentials, err)
	}

	return models.Credentials{Token: token, User: user}, nil
}
