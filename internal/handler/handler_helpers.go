/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package handler

import (
	"net/http"
	"strconv"

	"blog/internal/entity"
)

// currentUser extracts the logged-in viewer placed on the context by the
// identity middleware. ok is false for anonymous requests.
func currentUser(r *http.Request) (entity.User, bool) {
	u, ok := r.Context().Value("user").(entity.User)
	return u, ok
}

// pageParam reads the ?page= query parameter, defaulting to the first page.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Page is one slice of a post listing plus what the template needs to draw
// the pager.
type Page struct {
	Posts      []*entity.Post
	Number     int
	TotalPages int
	HasPrev    bool
	HasNext    bool
}

// paginate slices a materialized listing into a fixed-size page. Pages are
// 1-based; a page past the end comes back empty rather than failing.
func paginate(posts []*entity.Post, page, size int) Page {
	totalPages := (len(posts) + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}

	start := (page - 1) * size
	if start > len(posts) {
		start = len(posts)
	}
	end := start + size
	if end > len(posts) {
		end = len(posts)
	}

	return Page{
		Posts:      posts[start:end],
		Number:     page,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}
