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
	"blog/internal/media"
	"blog/internal/monitoring"
	"blog/internal/service"
	"blog/internal/view"

	"github.com/gorilla/mux"
)

// Uploaded images larger than this are rejected while parsing the form.
const maxUploadBytes = 10 << 20

// PostHandler serves the post detail page and every authoring route:
// create, edit and comment. The edit route enforces the author-only rule,
// bouncing everyone else back to the post instead of showing an error page.
type PostHandler struct {
	postService    service.PostService
	commentService service.CommentService
	feedService    service.FeedService
	groupService   service.GroupService
	mediaStore     media.Store
	renderer       *view.PageRenderer
}

func NewPostHandler(
	postService service.PostService,
	commentService service.CommentService,
	feedService service.FeedService,
	groupService service.GroupService,
	mediaStore media.Store,
	renderer *view.PageRenderer,
) *PostHandler {
	return &PostHandler{
		postService:    postService,
		commentService: commentService,
		feedService:    feedService,
		groupService:   groupService,
		mediaStore:     mediaStore,
		renderer:       renderer,
	}
}

// PostDetail shows one post with its comments
func (h *PostHandler) PostDetail(w http.ResponseWriter, r *http.Request) {
	uuid := mux.Vars(r)["uuid"]

	page, err := h.feedService.PostDetail(uuid)
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
		"LoggedUser":  viewer.Username,
		"Post":        page.Post,
		"AuthorTotal": page.AuthorTotal,
		"Comments":    page.Comments,
		"IsAuthor":    viewer.UUID == page.Post.AuthorUUID,
	}
	if err := h.renderer.RenderTemplate(w, "post_detail.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// CreatePost shows the empty post form on GET and creates the post on
// POST, then sends the author to their profile.
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	viewer, _ := currentUser(r)

	if r.Method == http.MethodGet {
		h.renderPostForm(w, r, nil, false)
		return
	}

	text, groupUUID, imagePath, err := h.parsePostForm(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := h.postService.CreatePost(viewer.UUID, text, groupUUID, imagePath); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	monitoring.PostsCreated.Inc()

	http.Redirect(w, r, "/profile/"+viewer.Username+"/", http.StatusFound)
}

// EditPost lets the author change text, group and image of their post.
// Anyone else lands back on the post detail page, untouched.
func (h *PostHandler) EditPost(w http.ResponseWriter, r *http.Request) {
	uuid := mux.Vars(r)["uuid"]
	viewer, _ := currentUser(r)

	post, err := h.postService.GetPost(uuid)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if post.AuthorUUID != viewer.UUID {
		http.Redirect(w, r, "/posts/"+uuid+"/", http.StatusFound)
		return
	}

	if r.Method == http.MethodGet {
		h.renderPostForm(w, r, post, true)
		return
	}

	text, groupUUID, imagePath, err := h.parsePostForm(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	_, err = h.postService.UpdatePost(uuid, viewer.UUID, service.PostEdit{
		Text:      text,
		GroupUUID: groupUUID,
		ImagePath: imagePath,
	})
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrForbidden):
			http.Redirect(w, r, "/posts/"+uuid+"/", http.StatusFound)
		case errors.Is(err, apperr.ErrNotFound):
			http.NotFound(w, r)
		default:
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
		return
	}

	http.Redirect(w, r, "/posts/"+uuid+"/", http.StatusFound)
}

// AddComment attaches a comment to the post and returns to its detail page
func (h *PostHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	uuid := mux.Vars(r)["uuid"]
	viewer, _ := currentUser(r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return
	}

	if _, err := h.commentService.AddComment(uuid, viewer.UUID, r.FormValue("text")); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	monitoring.CommentsCreated.Inc()

	http.Redirect(w, r, "/posts/"+uuid+"/", http.StatusFound)
}

// parsePostForm pulls text, group and the optional image upload out of the
// multipart form. The image, when present, goes straight into the media
// store and only its reference is returned. The body is capped at
// maxUploadBytes before parsing, so an oversized upload fails here.
func (h *PostHandler) parsePostForm(w http.ResponseWriter, r *http.Request) (text string, groupUUID *string, imagePath string, err error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err = r.ParseMultipartForm(maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return "", nil, "", err
		}
		// Plain forms without a file part are still fine.
		if err = r.ParseForm(); err != nil {
			return "", nil, "", err
		}
	}

	text = r.FormValue("text")
	if g := r.FormValue("group"); g != "" {
		groupUUID = &g
	}

	if r.MultipartForm != nil {
		if file, header, ferr := r.FormFile("image"); ferr == nil {
			defer file.Close()
			imagePath, err = h.mediaStore.Save(header.Filename, file)
			if err != nil {
				return "", nil, "", err
			}
		}
	}
	return text, groupUUID, imagePath, nil
}

func (h *PostHandler) renderPostForm(w http.ResponseWriter, r *http.Request, post interface{}, isEdit bool) {
	groups, err := h.groupService.ListGroups()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	viewer, _ := currentUser(r)
	data := map[string]interface{}{
		"LoggedUser": viewer.Username,
		"Post":       post,
		"Groups":     groups,
		"IsEdit":     isEdit,
	}
	if err := h.renderer.RenderTemplate(w, "post_form.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
