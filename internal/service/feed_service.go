/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package service

import (
	"errors"
	"fmt"

	"blog/internal/apperr"
	"blog/internal/entity"
	"blog/internal/logger"
	"blog/internal/repository"

	"gorm.io/gorm"
)

// AuthorFeed is the profile view of one author: their posts, how many they
// wrote in total, and whether the viewer already follows them. Following is
// always false for an anonymous viewer.
type AuthorFeed struct {
	Author    *entity.User
	Posts     []*entity.Post
	Total     int64
	Following bool
}

// PostPage is the detail view of one post with its comments and the
// author's total post count.
type PostPage struct {
	Post        *entity.Post
	AuthorTotal int64
	Comments    []*entity.Comment
}

// The read side of the platform. Each call composes a view from the stores
// underneath it, materialized fresh and ordered newest-first; the handlers
// slice the result into pages. The composer itself holds no state.
type FeedService interface {
	Index() ([]*entity.Post, error)                                // Every post
	ByGroup(slug string) (*entity.Group, []*entity.Post, error)    // The posts filed under the group with the given slug
	ByAuthor(username, viewerUUID string) (*AuthorFeed, error)     // The profile view of the author with the given handle
	FollowingFeed(viewerUUID string) ([]*entity.Post, error)       // The posts of every author the viewer follows
	PostDetail(postUUID string) (*PostPage, error)                 // One post with its comments
}

type feedService struct {
	postRepository    repository.PostRepository
	commentRepository repository.CommentRepository
	followRepository  repository.FollowRepository
	userRepository    repository.UserRepository
	groupRepository   repository.GroupRepository
	logger            logger.Logger
}

func NewFeedService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	followRepo repository.FollowRepository,
	userRepo repository.UserRepository,
	groupRepo repository.GroupRepository,
	log logger.Logger,
) FeedService {
	return &feedService{
		postRepository:    postRepo,
		commentRepository: commentRepo,
		followRepository:  followRepo,
		userRepository:    userRepo,
		groupRepository:   groupRepo,
		logger:            log,
	}
}

func (f *feedService) Index() ([]*entity.Post, error) {
	return f.postRepository.GetAll()
}

func (f *feedService) ByGroup(slug string) (*entity.Group, []*entity.Post, error) {
	group, err := f.groupRepository.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("group %q: %w", slug, apperr.ErrNotFound)
		}
		return nil, nil, err
	}

	posts, err := f.postRepository.GetByGroup(group.UUID)
	if err != nil {
		return nil, nil, err
	}
	return group, posts, nil
}

func (f *feedService) ByAuthor(username, viewerUUID string) (*AuthorFeed, error) {
	author, err := f.userRepository.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %q: %w", username, apperr.ErrNotFound)
		}
		return nil, err
	}

	posts, err := f.postRepository.GetByAuthor(author.UUID)
	if err != nil {
		return nil, err
	}

	total, err := f.postRepository.CountByAuthor(author.UUID)
	if err != nil {
		return nil, err
	}

	following := false
	if viewerUUID != "" {
		following, err = f.followRepository.Exists(viewerUUID, author.UUID)
		if err != nil {
			return nil, err
		}
	}

	return &AuthorFeed{
		Author:    author,
		Posts:     posts,
		Total:     total,
		Following: following,
	}, nil
}

func (f *feedService) FollowingFeed(viewerUUID string) ([]*entity.Post, error) {
	authorUUIDs, err := f.followRepository.GetAuthorUUIDs(viewerUUID)
	if err != nil {
		return nil, err
	}
	// Following nobody is an empty feed, not an error.
	return f.postRepository.GetByAuthors(authorUUIDs)
}

func (f *feedService) PostDetail(postUUID string) (*PostPage, error) {
	post, err := f.postRepository.GetByUUID(postUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("post %s: %w", postUUID, apperr.ErrNotFound)
		}
		return nil, err
	}

	total, err := f.postRepository.CountByAuthor(post.AuthorUUID)
	if err != nil {
		return nil, err
	}

	comments, err := f.commentRepository.GetByPost(postUUID)
	if err != nil {
		return nil, err
	}

	return &PostPage{
		Post:        post,
		AuthorTotal: total,
		Comments:    comments,
	}, nil
}
