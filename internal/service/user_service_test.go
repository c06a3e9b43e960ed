/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package service

import (
	"testing"
	"time"

	"blog/internal/apperr"
	"blog/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeletingAnAccountRemovesTheUserAndTheirPosts(t *testing.T) {
	db := openTestDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	seedPost(t, db, alice, "going away", time.Now(), nil)
	survivor := seedPost(t, db, bob, "staying", time.Now(), nil)

	users := NewUserService(repository.NewSQLUserRepository(db), nopLogger{})

	require.NoError(t, users.DeleteUser(alice.UUID))

	_, err := users.GetByUsername("alice")
	require.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = users.GetByUUID(alice.UUID)
	require.ErrorIs(t, err, apperr.ErrNotFound)

	// Everyone else's content is untouched.
	posts, err := newFeedService(db).Index()
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, survivor.UUID, posts[0].UUID)
}
