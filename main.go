/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package main

import (
	"net/http"

	"blog/internal/config"
	"blog/internal/database"
	"blog/internal/handler"
	"blog/internal/logger"
	"blog/internal/media"
	"blog/internal/repository"
	"blog/internal/service"
	"blog/internal/view"
	"blog/routes"

	"github.com/gorilla/sessions"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.Init(cfg.LogFile)

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Opening database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migrating schema: %v", err)
	}

	mediaStore, err := media.NewDiskStore(cfg.MediaDir)
	if err != nil {
		log.Fatalf("Preparing media directory: %v", err)
	}

	renderer, err := view.NewPageRenderer("templates")
	if err != nil {
		log.Fatalf("Parsing templates: %v", err)
	}

	userRepo := repository.NewSQLUserRepository(db)
	groupRepo := repository.NewSQLGroupRepository(db)
	postRepo := repository.NewSQLPostRepository(db)
	commentRepo := repository.NewSQLCommentRepository(db)
	followRepo := repository.NewSQLFollowRepository(db)

	authService := service.NewAuthService(userRepo, logger.For(log, "auth"))
	userService := service.NewUserService(userRepo, logger.For(log, "users"))
	groupService := service.NewGroupService(groupRepo, logger.For(log, "groups"))
	postService := service.NewPostService(postRepo, groupRepo, logger.For(log, "posts"))
	commentService := service.NewCommentService(commentRepo, postRepo, logger.For(log, "comments"))
	followService := service.NewFollowService(followRepo, logger.For(log, "follows"))
	feedService := service.NewFeedService(postRepo, commentRepo, followRepo, userRepo, groupRepo, logger.For(log, "feeds"))

	cookieStore := sessions.NewCookieStore([]byte(cfg.SessionKey))
	identity := handler.NewIdentity(cookieStore)

	router := routes.SetupRoutes(
		identity,
		handler.NewAuthHandler(authService, userService, cookieStore, renderer),
		handler.NewFeedHandler(feedService, renderer, cfg.PageSize),
		handler.NewGroupHandler(groupService, feedService, renderer, cfg.PageSize),
		handler.NewPostHandler(postService, commentService, feedService, groupService, mediaStore, renderer),
		handler.NewProfileHandler(feedService, followService, userService, renderer, cfg.PageSize),
		cfg.MediaDir,
	)

	log.Infof("Server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("%v", err)
	}
}
