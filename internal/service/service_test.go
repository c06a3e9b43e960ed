/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package service

import (
	"fmt"
	"testing"
	"time"

	"blog/internal/database"
	"blog/internal/entity"
	"blog/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Tests here run the services against real repositories over a throwaway
// in-memory database, so the storage-level rules (cascades, unique edges)
// stay in play.

type nopLogger struct{}

func (nopLogger) Logf(format string, v ...any) {}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()

	id := uuid.New().String()
	u := &entity.User{
		UUID:      id,
		Username:  username,
		CreatedAt: time.Now(),
		Secret: entity.UserSecret{
			UserUUID: id,
			Hash:     "irrelevant",
		},
	}
	require.NoError(t, repository.NewSQLUserRepository(db).Create(u))
	return u
}

func seedPost(t *testing.T, db *gorm.DB, author *entity.User, text string, createdAt time.Time, groupUUID *string) *entity.Post {
	t.Helper()

	p := &entity.Post{
		UUID:       uuid.New().String(),
		Text:       text,
		CreatedAt:  createdAt,
		AuthorUUID: author.UUID,
		GroupUUID:  groupUUID,
	}
	require.NoError(t, repository.NewSQLPostRepository(db).Create(p))
	return p
}

func seedGroup(t *testing.T, db *gorm.DB, title, slug string) *entity.Group {
	t.Helper()

	g := &entity.Group{
		UUID:  uuid.New().String(),
		Title: title,
		Slug:  slug,
	}
	require.NoError(t, repository.NewSQLGroupRepository(db).Create(g))
	return g
}

func newFeedService(db *gorm.DB) FeedService {
	return NewFeedService(
		repository.NewSQLPostRepository(db),
		repository.NewSQLCommentRepository(db),
		repository.NewSQLFollowRepository(db),
		repository.NewSQLUserRepository(db),
		repository.NewSQLGroupRepository(db),
		nopLogger{},
	)
}
