// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const credentialsTable = "credentials"

var credentialKeys = []string{TokenKey, UserKey}

// buildUpsertCredential renders an INSERT ... ON CONFLICT statement for a
// single key.
func buildUpsertCredential(key, value string) (string, []any, error) {
	return sq.Insert(credentialsTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		PlaceholderFormat(sq.Question).
		ToSql()
}

func buildSelectCredentials() (string, []any, error) {
	return sq.Select("key", "value").
		From(credentialsTable).
		Where(sq.Eq{"key": credentialKeys}).
		PlaceholderFormat(sq.Question).
		ToSql()
}

func buildDeleteCredentials() (string, []any, error) {
	return sq.Delete(credentialsTable).
		Where(sq.Eq{"key": credentialKeys}).
		PlaceholderFormat(sq.Question).
		ToSql()
}
