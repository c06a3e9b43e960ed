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
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnonymousWritesBounceToLoginWithTheRequestedPath(t *testing.T) {
	identity := NewIdentity(sessions.NewCookieStore([]byte("test-key")))

	protected := identity.WithUser(identity.RequireLogin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("an anonymous request reached the protected handler")
	})))

	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, httptest.NewRequest("GET", "/posts/create?page=2", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth/login?next=%2Fposts%2Fcreate%3Fpage%3D2", rec.Header().Get("Location"))
}

func TestTheSessionViewerRidesTheRequestContext(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-key"))
	identity := NewIdentity(store)

	// Build a session cookie the way the login handler does.
	seed := httptest.NewRequest("GET", "/", nil)
	seedRec := httptest.NewRecorder()
	session, err := store.Get(seed, "auth-session")
	require.NoError(t, err)
	session.Values["user_uuid"] = "uuid-alice"
	session.Values["username"] = "alice"
	require.NoError(t, session.Save(seed, seedRec))
	cookie := seedRec.Result().Cookies()[0]

	reached := false
	protected := identity.WithUser(identity.RequireLogin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		viewer, ok := currentUser(r)
		require.True(t, ok)
		assert.Equal(t, "uuid-alice", viewer.UUID)
		assert.Equal(t, "alice", viewer.Username)
	})))

	req := httptest.NewRequest("GET", "/posts/create", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, req)

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}
