/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package handler

import (
	"context"
	"net/http"
	"net/url"

	"blog/internal/entity"

	"github.com/gorilla/sessions"
)

// Identity is the write-side gate of the platform. WithUser resolves the
// session into a viewer placed on the request context; RequireLogin wraps
// the write routes, bouncing anonymous requests to the login page with the
// originally requested path preserved for the post-login redirect.
type Identity struct {
	store *sessions.CookieStore
}

func NewIdentity(store *sessions.CookieStore) *Identity {
	return &Identity{store: store}
}

// WithUser puts the logged-in user, when there is one, on the request
// context. Anonymous requests pass through untouched.
func (i *Identity) WithUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, _ := i.store.Get(r, "auth-session")

		userUUID, okUUID := session.Values["user_uuid"].(string)
		username, okName := session.Values["username"].(string)
		if okUUID && okName && userUUID != "" {
			ctx := context.WithValue(r.Context(), "user", entity.User{UUID: userUUID, Username: username})
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// RequireLogin redirects anonymous requests to the login flow, carrying the
// requested path along as ?next= so the login handler can send the user
// back where they wanted to go.
func (i *Identity) RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Context().Value("user").(entity.User); !ok {
			http.Redirect(w, r, "/auth/login?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
