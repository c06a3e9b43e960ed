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
	"blog/internal/service"
	"blog/internal/view"

	"github.com/gorilla/mux"
)

// GroupHandler serves the group catalog: the list of groups, the posts of
// one group, and group creation. A duplicate slug comes back to the form as
// a validation message, not an error page.
type GroupHandler struct {
	groupService service.GroupService
	feedService  service.FeedService
	renderer     *view.PageRenderer
	pageSize     int
}

func NewGroupHandler(groupService service.GroupService, feedService service.FeedService, renderer *view.PageRenderer, pageSize int) *GroupHandler {
	return &GroupHandler{
		groupService: groupService,
		feedService:  feedService,
		renderer:     renderer,
		pageSize:     pageSize,
	}
}

// ListGroups shows every group in the catalog
func (h *GroupHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.groupService.ListGroups()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	viewer, _ := currentUser(r)
	data := map[string]interface{}{
		"LoggedUser": viewer.Username,
		"Groups":     groups,
	}
	if err := h.renderer.RenderTemplate(w, "group_list.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GroupPosts shows one page of the posts filed under a group
func (h *GroupHandler) GroupPosts(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	group, posts, err := h.feedService.ByGroup(slug)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	viewer, _ := currentUser(r)
	data := map[string]interface{}{
		"LoggedUser": viewer.Username,
		"Group":      group,
		"Page":       paginate(posts, pageParam(r), h.pageSize),
	}
	if err := h.renderer.RenderTemplate(w, "group_posts.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// CreateGroup shows the group form on GET and creates the group on POST
func (h *GroupHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	viewer, _ := currentUser(r)

	if r.Method == http.MethodGet {
		data := map[string]interface{}{
			"LoggedUser": viewer.Username,
		}
		if err := h.renderer.RenderTemplate(w, "group_form.html", data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return
	}

	group, err := h.groupService.CreateGroup(
		r.FormValue("title"),
		r.FormValue("slug"),
		r.FormValue("description"),
	)
	if err != nil {
		if errors.Is(err, apperr.ErrDuplicateSlug) {
			w.WriteHeader(http.StatusBadRequest)
			data := map[string]interface{}{
				"LoggedUser":  viewer.Username,
				"Error":       "A group with this slug already exists",
				"Title":       r.FormValue("title"),
				"Slug":        r.FormValue("slug"),
				"Description": r.FormValue("description"),
			}
			if rerr := h.renderer.RenderTemplate(w, "group_form.html", data); rerr != nil {
				http.Error(w, rerr.Error(), http.StatusInternalServerError)
			}
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	http.Redirect(w, r, "/group/"+group.Slug+"/", http.StatusFound)
}
