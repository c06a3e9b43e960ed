/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnlyTheLoginPathLoadsTheSecret(t *testing.T) {
	db := openTestDB(t)
	seedUser(t, db, "alice")
	repo := NewSQLUserRepository(db)

	plain, err := repo.GetByUsername("alice")
	require.NoError(t, err)
	assert.Empty(t, plain.Secret.Hash)

	forLogin, err := repo.GetForLogin("alice")
	require.NoError(t, err)
	assert.Equal(t, "irrelevant", forLogin.Secret.Hash)
}

func TestExistsReportsTakenHandles(t *testing.T) {
	db := openTestDB(t)
	seedUser(t, db, "alice")
	repo := NewSQLUserRepository(db)

	taken, err := repo.Exists("alice")
	require.NoError(t, err)
	assert.True(t, taken)

	free, err := repo.Exists("bob")
	require.NoError(t, err)
	assert.False(t, free)
}
