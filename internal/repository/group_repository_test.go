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

	"blog/internal/apperr"
	"blog/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatingAGroupWithATakenSlugFails(t *testing.T) {
	db := openTestDB(t)
	repo := NewSQLGroupRepository(db)

	seedGroup(t, db, "Python", "python")

	err := repo.Create(&entity.Group{UUID: uuid.New().String(), Title: "Python Again", Slug: "python"})
	require.ErrorIs(t, err, apperr.ErrDuplicateSlug)

	groups, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, groups, 1)
}

func TestUpdatingAGroupOntoATakenSlugFails(t *testing.T) {
	db := openTestDB(t)
	repo := NewSQLGroupRepository(db)

	seedGroup(t, db, "Python", "python")
	g := seedGroup(t, db, "Go", "go")

	g.Slug = "python"
	require.ErrorIs(t, repo.Update(g), apperr.ErrDuplicateSlug)

	// Keeping its own slug is not a collision.
	g.Slug = "go"
	g.Description = "all things Go"
	require.NoError(t, repo.Update(g))

	fetched, err := repo.GetBySlug("go")
	require.NoError(t, err)
	assert.Equal(t, "all things Go", fetched.Description)
}

func TestGroupsListInTitleOrder(t *testing.T) {
	db := openTestDB(t)
	repo := NewSQLGroupRepository(db)

	seedGroup(t, db, "Python", "python")
	seedGroup(t, db, "Algorithms", "algorithms")
	seedGroup(t, db, "Math", "math")

	groups, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, groups, 3)
	assert.Equal(t, "Algorithms", groups[0].Title)
	assert.Equal(t, "Math", groups[1].Title)
	assert.Equal(t, "Python", groups[2].Title)
}
