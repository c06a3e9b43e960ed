/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package handler

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"blog/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makePosts(n int) []*entity.Post {
	posts := make([]*entity.Post, n)
	for i := range posts {
		posts[i] = &entity.Post{UUID: fmt.Sprintf("post-%02d", i), Text: fmt.Sprintf("post %d", i)}
	}
	return posts
}

func TestThirteenPostsSplitIntoTenAndThree(t *testing.T) {
	posts := makePosts(13)

	first := paginate(posts, 1, 10)
	require.Len(t, first.Posts, 10)
	assert.Equal(t, posts[0].UUID, first.Posts[0].UUID)
	assert.Equal(t, 2, first.TotalPages)
	assert.False(t, first.HasPrev)
	assert.True(t, first.HasNext)

	second := paginate(posts, 2, 10)
	require.Len(t, second.Posts, 3)
	assert.Equal(t, posts[10].UUID, second.Posts[0].UUID)
	assert.True(t, second.HasPrev)
	assert.False(t, second.HasNext)
}

func TestAPageCountAlwaysCoversAnEmptyListing(t *testing.T) {
	page := paginate(nil, 1, 10)
	assert.Empty(t, page.Posts)
	assert.Equal(t, 1, page.TotalPages)
	assert.False(t, page.HasPrev)
	assert.False(t, page.HasNext)
}

func TestAPagePastTheEndComesBackEmpty(t *testing.T) {
	page := paginate(makePosts(5), 7, 10)
	assert.Empty(t, page.Posts)
	assert.Equal(t, 7, page.Number)
	assert.True(t, page.HasPrev)
	assert.False(t, page.HasNext)
}

func TestPageParamDefaultsToTheFirstPage(t *testing.T) {
	assert.Equal(t, 1, pageParam(httptest.NewRequest("GET", "/", nil)))
	assert.Equal(t, 1, pageParam(httptest.NewRequest("GET", "/?page=junk", nil)))
	assert.Equal(t, 1, pageParam(httptest.NewRequest("GET", "/?page=-3", nil)))
	assert.Equal(t, 4, pageParam(httptest.NewRequest("GET", "/?page=4", nil)))
}
