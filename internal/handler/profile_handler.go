/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package handler

import (
	"errors"
	"net/http"

	"blog/internal/apperr"
	"blog/internal/monitoring"
	"blog/internal/service"
	"blog/internal/view"

	"github.com/gorilla/mux"
)

// ProfileHandler serves author profiles and the follow/unfollow actions.
// Following yourself quietly does nothing; both actions land on the
// personal feed afterwards.
type ProfileHandler struct {
	feedService   service.FeedService
	followService service.FollowService
	userService   service.UserService
	renderer      *view.PageRenderer
	pageSize      int
}

func NewProfileHandler(
	feedService service.FeedService,
	followService service.FollowService,
	userService service.UserService,
	renderer *view.PageRenderer,
	pageSize int,
) *ProfileHandler {
	return &ProfileHandler{
		feedService:   feedService,
		followService: followService,
		userService:   userService,
		renderer:      renderer,
		pageSize:      pageSize,
	}
}

// Profile shows one page of an author's posts, with their post total and
// whether the viewer follows them
func (h *ProfileHandler) Profile(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	viewer, _ := currentUser(r)

	feed, err := h.feedService.ByAuthor(username, viewer.UUID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	followers, err := h.followService.CountFollowers(feed.Author.UUID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	followingCount, err := h.followService.CountFollowing(feed.Author.UUID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"LoggedUser":     viewer.Username,
		"Author":         feed.Author,
		"Page":           paginate(feed.Posts, pageParam(r), h.pageSize),
		"PostsTotal":     feed.Total,
		"Following":      feed.Following,
		"Followers":      followers,
		"FollowingCount": followingCount,
		"IsSelf":         viewer.Username == username,
	}
	if err := h.renderer.RenderTemplate(w, "profile.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Follow adds the viewer as a follower of the profiled author
func (h *ProfileHandler) Follow(w http.ResponseWriter, r *http.Request) {
	h.changeFollow(w, r, true)
}

// Unfollow removes the viewer from the author's followers
func (h *ProfileHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	h.changeFollow(w, r, false)
}

func (h *ProfileHandler) changeFollow(w http.ResponseWriter, r *http.Request, follow bool) {
	username := mux.Vars(r)["username"]
	viewer, _ := currentUser(r)

	author, err := h.userService.GetByUsername(username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if follow {
		err = h.followService.Follow(viewer.UUID, author.UUID)
		if err == nil {
			monitoring.FollowsCreated.Inc()
		}
	} else {
		err = h.followService.Unfollow(viewer.UUID, author.UUID)
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/follow", http.StatusFound)
}
