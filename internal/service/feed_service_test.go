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
	"blog/internal/entity"
	"blog/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupPageShowsOnlyThatGroupsPosts(t *testing.T) {
	db := openTestDB(t)
	alice := seedUser(t, db, "alice")
	python := seedGroup(t, db, "Python", "python")
	golang := seedGroup(t, db, "Go", "go")

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	older := seedPost(t, db, alice, "python older", base, &python.UUID)
	newer := seedPost(t, db, alice, "python newer", base.Add(time.Minute), &python.UUID)
	seedPost(t, db, alice, "go post", base.Add(2*time.Minute), &golang.UUID)
	seedPost(t, db, alice, "no group", base.Add(3*time.Minute), nil)

	group, posts, err := newFeedService(db).ByGroup("python")
	require.NoError(t, err)
	assert.Equal(t, "Python", group.Title)
	require.Len(t, posts, 2)
	assert.Equal(t, newer.UUID, posts[0].UUID)
	assert.Equal(t, older.UUID, posts[1].UUID)
}

func TestUnknownGroupSlugIsNotFound(t *testing.T) {
	db := openTestDB(t)

	_, _, err := newFeedService(db).ByGroup("nope")
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestFollowingFeedCarriesExactlyTheFollowedAuthors(t *testing.T) {
	db := openTestDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")
	dave := seedUser(t, db, "dave")

	follows := repository.NewSQLFollowRepository(db)
	require.NoError(t, follows.Create(&entity.Follow{UUID: uuid.New().String(), UserUUID: alice.UUID, AuthorUUID: bob.UUID}))
	require.NoError(t, follows.Create(&entity.Follow{UUID: uuid.New().String(), UserUUID: alice.UUID, AuthorUUID: carol.UUID}))

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	bobPost := seedPost(t, db, bob, "from bob", base, nil)
	carolPost := seedPost(t, db, carol, "from carol", base.Add(time.Minute), nil)
	seedPost(t, db, dave, "from dave", base.Add(2*time.Minute), nil)
	seedPost(t, db, alice, "from alice herself", base.Add(3*time.Minute), nil)

	feed := newFeedService(db)

	posts, err := feed.FollowingFeed(alice.UUID)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, carolPost.UUID, posts[0].UUID) // newest first
	assert.Equal(t, bobPost.UUID, posts[1].UUID)

	// Bob follows nobody: an empty feed, not an error.
	empty, err := feed.FollowingFeed(bob.UUID)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestAuthorFeedReportsTheViewersFollowState(t *testing.T) {
	db := openTestDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	seedPost(t, db, bob, "bob writes", time.Now(), nil)

	follows := repository.NewSQLFollowRepository(db)
	require.NoError(t, follows.Create(&entity.Follow{UUID: uuid.New().String(), UserUUID: alice.UUID, AuthorUUID: bob.UUID}))

	feed := newFeedService(db)

	asAlice, err := feed.ByAuthor("bob", alice.UUID)
	require.NoError(t, err)
	assert.True(t, asAlice.Following)
	assert.Equal(t, int64(1), asAlice.Total)
	require.Len(t, asAlice.Posts, 1)

	asAnonymous, err := feed.ByAuthor("bob", "")
	require.NoError(t, err)
	assert.False(t, asAnonymous.Following)

	_, err = feed.ByAuthor("ghost", alice.UUID)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestPostDetailCarriesCommentsNewestFirst(t *testing.T) {
	db := openTestDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	post := seedPost(t, db, alice, "discuss", time.Now(), nil)
	seedPost(t, db, alice, "another by alice", time.Now(), nil)

	comments := repository.NewSQLCommentRepository(db)
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	first := &entity.Comment{UUID: uuid.New().String(), Text: "first", CreatedAt: base, PostUUID: post.UUID, AuthorUUID: bob.UUID}
	second := &entity.Comment{UUID: uuid.New().String(), Text: "second", CreatedAt: base.Add(time.Minute), PostUUID: post.UUID, AuthorUUID: alice.UUID}
	require.NoError(t, comments.Create(first))
	require.NoError(t, comments.Create(second))

	page, err := newFeedService(db).PostDetail(post.UUID)
	require.NoError(t, err)
	assert.Equal(t, post.UUID, page.Post.UUID)
	assert.Equal(t, int64(2), page.AuthorTotal)
	require.Len(t, page.Comments, 2)
	assert.Equal(t, "second", page.Comments[0].Text)
	assert.Equal(t, "first", page.Comments[1].Text)

	_, err = newFeedService(db).PostDetail("missing")
	require.ErrorIs(t, err, apperr.ErrNotFound)
}
