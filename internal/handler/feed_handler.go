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

	"blog/internal/service"
	"blog/internal/view"
)

// FeedHandler serves the two reverse-chronological feeds: the global index
// and the personal following feed.
type FeedHandler struct {
	feedService service.FeedService
	renderer    *view.PageRenderer
	pageSize    int
}

func NewFeedHandler(feedService service.FeedService, renderer *view.PageRenderer, pageSize int) *FeedHandler {
	return &FeedHandler{
		feedService: feedService,
		renderer:    renderer,
		pageSize:    pageSize,
	}
}

// Index shows one page of every post on the platform
func (h *FeedHandler) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := h.feedService.Index()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	viewer, _ := currentUser(r)
	data := map[string]interface{}{
		"LoggedUser": viewer.Username,
		"Page":       paginate(posts, pageParam(r), h.pageSize),
	}
	if err := h.renderer.RenderTemplate(w, "index.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// FollowingFeed shows one page of the posts authored by the accounts the
// viewer follows. Following nobody gives an empty page, not an error.
func (h *FeedHandler) FollowingFeed(w http.ResponseWriter, r *http.Request) {
	viewer, _ := currentUser(r)

	posts, err := h.feedService.FollowingFeed(viewer.UUID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"LoggedUser": viewer.Username,
		"Page":       paginate(posts, pageParam(r), h.pageSize),
	}
	if err := h.renderer.RenderTemplate(w, "follow.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
