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
	"strings"

	"blog/internal/apperr"
	"blog/internal/monitoring"
	"blog/internal/service"
	"blog/internal/view"

	"github.com/gorilla/sessions"
)

// AuthHandler manages user registration, authentication and account removal
type AuthHandler struct {
	authService service.AuthService
	userService service.UserService
	cookieStore *sessions.CookieStore
	renderer    *view.PageRenderer
}

func NewAuthHandler(authService service.AuthService, userService service.UserService, cookieStore *sessions.CookieStore, renderer *view.PageRenderer) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
		cookieStore: cookieStore,
		renderer:    renderer,
	}
}

// Register shows the signup form on GET and creates the account on POST,
// logging the new user straight in.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		if err := h.renderer.RenderTemplate(w, "register.html", map[string]interface{}{}); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error occurred while parsing the form", http.StatusBadRequest)
		return
	}

	user, err := h.authService.Register(
		r.FormValue("username"),
		r.FormValue("full_name"),
		r.FormValue("password"),
	)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, _ := h.cookieStore.Get(r, "auth-session")
	session.Values["user_uuid"] = user.UUID
	session.Values["username"] = user.Username
	if err := sessions.Save(r, w); err != nil {
		http.Error(w, "Saving cookie", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// Login shows the login form on GET and authenticates on POST. A ?next=
// parameter set by the identity middleware sends the user back to the page
// that required logging in.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		data := map[string]interface{}{
			"Next": r.URL.Query().Get("next"),
		}
		if err := h.renderer.RenderTemplate(w, "login.html", data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return
	}

	user, err := h.authService.Login(r.FormValue("username"), r.FormValue("password"))
	if err != nil {
		if errors.Is(err, apperr.ErrUnauthenticated) {
			monitoring.LoginFailure.Inc()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	monitoring.LoginSuccess.Inc()

	session, _ := h.cookieStore.Get(r, "auth-session")
	session.Values["user_uuid"] = user.UUID
	session.Values["username"] = user.Username
	if err := sessions.Save(r, w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Only same-site paths are honored, an absolute URL in next would be
	// an open redirect.
	next := r.FormValue("next")
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		next = "/"
	}
	http.Redirect(w, r, next, http.StatusFound)
}

// DeleteAccount removes the logged-in user's account. Their posts, comments
// and follow edges go down with it, and the session is dropped.
func (h *AuthHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	viewer, _ := currentUser(r)

	if err := h.userService.DeleteUser(viewer.UUID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	session, _ := h.cookieStore.Get(r, "auth-session")
	session.Options.MaxAge = -1
	if err := sessions.Save(r, w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// Logout deletes the current user's session, effectively logging them out
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := h.cookieStore.Get(r, "auth-session")
	session.Options.MaxAge = -1
	if err := sessions.Save(r, w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
}
