/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package routes

import (
	"net/http"

	"blog/internal/handler"
	"blog/internal/monitoring"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes initializes all the application routes.
// Read routes are open to anonymous viewers; every write route sits behind
// the login requirement of the identity middleware.
func SetupRoutes(
	identity *handler.Identity,
	authHandler *handler.AuthHandler,
	feedHandler *handler.FeedHandler,
	groupHandler *handler.GroupHandler,
	postHandler *handler.PostHandler,
	profileHandler *handler.ProfileHandler,
	mediaDir string,
) http.Handler {
	router := mux.NewRouter()

	login := func(h http.HandlerFunc) http.Handler { return identity.RequireLogin(h) }

	// Feeds
	router.HandleFunc("/", feedHandler.Index).Methods("GET")
	router.Handle("/follow", login(feedHandler.FollowingFeed)).Methods("GET")

	// Groups
	router.HandleFunc("/group/", groupHandler.ListGroups).Methods("GET")
	router.Handle("/group/create", login(groupHandler.CreateGroup)).Methods("GET", "POST")
	router.HandleFunc("/group/{slug}/", groupHandler.GroupPosts).Methods("GET")

	// Posts
	router.Handle("/posts/create", login(postHandler.CreatePost)).Methods("GET", "POST")
	router.HandleFunc("/posts/{uuid}/", postHandler.PostDetail).Methods("GET")
	router.Handle("/posts/{uuid}/edit", login(postHandler.EditPost)).Methods("GET", "POST")
	router.Handle("/posts/{uuid}/comment", login(postHandler.AddComment)).Methods("POST")

	// Profiles and the follow graph
	router.HandleFunc("/profile/{username}/", profileHandler.Profile).Methods("GET")
	router.Handle("/profile/{username}/follow", login(profileHandler.Follow)).Methods("POST")
	router.Handle("/profile/{username}/unfollow", login(profileHandler.Unfollow)).Methods("POST")

	// Authentication
	router.HandleFunc("/auth/signup", authHandler.Register).Methods("GET", "POST")
	router.HandleFunc("/auth/login", authHandler.Login).Methods("GET", "POST")
	router.HandleFunc("/auth/logout", authHandler.Logout).Methods("GET")
	router.Handle("/auth/delete", login(authHandler.DeleteAccount)).Methods("POST")

	// Post images, served straight off the media store
	router.PathPrefix("/media/").Handler(
		http.StripPrefix("/media/", http.FileServer(http.Dir(mediaDir))))

	// Metrics endpoint
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return monitoring.InstrumentHandler(identity.WithUser(router))
}
