// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/career-dashboard/internal/config"
	"github.com/MKhiriev/career-dashboard/internal/logger"
	"github.com/MKhiriev/career-dashboard/models"
)

func newTestCredentialRepo(t *testing.T) (*credentialRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	repo := NewCredentialRepository(&DB{DB: db, logger: l}, l).(*credentialRepository)
	return repo, mock
}

func testUser() models.User {
	return models.User{ID: "u-1", Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"}
}

func credentialRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"key", "value"})
}

func TestCredentialRepository_Save_WritesBothKeysInOneTransaction(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)
	userJSON, _ := json.Marshal(testUser())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO credentials").
		WithArgs(TokenKey, "tok-1").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO credentials").
		WithArgs(UserKey, string(userJSON)).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	err := repo.Save(context.Background(), "tok-1", testUser())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", repo.Token())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepository_Save_RollsBackWhenSecondWriteFails(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO credentials").
		WithArgs(TokenKey, "tok-1").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO credentials").
		WithArgs(UserKey, sqlmock.AnyArg()).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.Save(context.Background(), "tok-1", testUser())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSavingCredentials)
	assert.Empty(t, repo.Token())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepository_Save_EmptyToken(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)

	err := repo.Save(context.Background(), "  ", testUser())
	assert.ErrorIs(t, err, ErrEmptyToken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepository_Save_BeginFails(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("locked"))

	err := repo.Save(context.Background(), "tok-1", testUser())
	assert.ErrorIs(t, err, ErrSavingCredentials)
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestCredentialRepository_Load(t *testing.T) {
	userJSON, _ := json.Marshal(testUser())

	t.Run("complete record", func(t *testing.T) {
		repo, mock := newTestCredentialRepo(t)
		mock.ExpectQuery("SELECT key, value FROM credentials").
			WithArgs(TokenKey, UserKey).
			WillReturnRows(credentialRows().AddRow(TokenKey, "tok-1").AddRow(UserKey, string(userJSON)))

		creds, err := repo.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "tok-1", creds.Token)
		assert.Equal(t, testUser(), creds.User)
		assert.Equal(t, "tok-1", repo.Token())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty store", func(t *testing.T) {
		repo, mock := newTestCredentialRepo(t)
		mock.ExpectQuery("SELECT key, value FROM credentials").
			WillReturnRows(credentialRows())

		_, err := repo.Load(context.Background())
		assert.ErrorIs(t, err, ErrCredentialsNotFound)
		assert.Empty(t, repo.Token())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("malformed user is cleared", func(t *testing.T) {
		repo, mock := newTestCredentialRepo(t)
		mock.ExpectQuery("SELECT key, value FROM credentials").
			WillReturnRows(credentialRows().AddRow(TokenKey, "tok-1").AddRow(UserKey, "{not json"))
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM credentials").
			WithArgs(TokenKey, UserKey).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		_, err := repo.Load(context.Background())
		assert.ErrorIs(t, err, ErrCredentialsNotFound)
		assert.Empty(t, repo.Token())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("token without user is cleared", func(t *testing.T) {
		repo, mock := newTestCredentialRepo(t)
		mock.ExpectQuery("SELECT key, value FROM credentials").
			WillReturnRows(credentialRows().AddRow(TokenKey, "tok-1"))
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM credentials").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		_, err := repo.Load(context.Background())
		assert.ErrorIs(t, err, ErrCredentialsNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query failure is surfaced", func(t *testing.T) {
		repo, mock := newTestCredentialRepo(t)
		mock.ExpectQuery("SELECT key, value FROM credentials").
			WillReturnError(errors.New("io error"))

		_, err := repo.Load(context.Background())
		assert.ErrorIs(t, err, ErrExecutingQuery)
		assert.NotErrorIs(t, err, ErrCredentialsNotFound)
	})
}

func TestCredentialRepository_Clear(t *testing.T) {
	t.Run("removes both keys", func(t *testing.T) {
		repo, mock := newTestCredentialRepo(t)
		repo.setToken("tok-1")

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM credentials").
			WithArgs(TokenKey, UserKey).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		require.NoError(t, repo.Clear(context.Background()))
		assert.Empty(t, repo.Token())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty store is a no-op", func(t *testing.T) {
		repo, mock := newTestCredentialRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM credentials").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		assert.NoError(t, repo.Clear(context.Background()))
	})

	t.Run("failed delete still drops cached token", func(t *testing.T) {
		repo, mock := newTestCredentialRepo(t)
		repo.setToken("tok-1")

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM credentials").
			WillReturnError(errors.New("readonly database"))
		mock.ExpectRollback()

		err := repo.Clear(context.Background())
		assert.ErrorIs(t, err, ErrClearingCredentials)
		assert.Empty(t, repo.Token())
	})
}

func TestCredentialRepository_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "creds.db")

	storages, err := NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	creds := storages.Credentials

	_, err = creds.Load(ctx)
	require.ErrorIs(t, err, ErrCredentialsNotFound)

	require.NoError(t, creds.Save(ctx, "tok-1", testUser()))
	require.NoError(t, creds.Save(ctx, "tok-2", testUser()))

	loaded, err := creds.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-2", loaded.Token)
	assert.Equal(t, testUser(), loaded.User)

	require.NoError(t, creds.Clear(ctx))
	require.NoError(t, creds.Clear(ctx))

	_, err = creds.Load(ctx)
	assert.ErrorIs(t, err, ErrCredentialsNotFound)
	assert.Empty(t, creds.Token())
}

func TestCredentialRepository_SQLite_ConcurrentSaveAndClearStayConsistent(t *testing.T) {
	ctx := context.Background()

	storages, err := NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: ":memory:"}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	creds := storages.Credentials

	for i := 0; i < 50; i++ {
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = creds.Save(ctx, fmt.Sprintf("tok-%d", i), testUser())
		}()
		go func() {
			defer wg.Done()
			_ = creds.Clear(ctx)
		}()
		wg.Wait()

		cached := creds.Token()
		loaded, loadErr := creds.Load(ctx)
		if errors.Is(loadErr, ErrCredentialsNotFound) {
			assert.Empty(t, cached, "iteration %d", i)
			continue
		}
		require.NoError(t, loadErr)
		assert.Equal(t, loaded.Token, cached, "iteration %d", i)
	}
}
