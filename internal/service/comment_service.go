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
	"time"

	"blog/internal/apperr"
	"blog/internal/entity"
	"blog/internal/logger"
	"blog/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service used to attach comments to posts. Comments cannot be edited or
// removed once created.
type CommentService interface {
	AddComment(postUUID, authorUUID, text string) (*entity.Comment, error) // Creates a comment on the post
	GetByPost(postUUID string) ([]*entity.Comment, error)                  // Retrieves the comments of a post, newest-first
}

type commentService struct {
	commentRepository repository.CommentRepository
	postRepository    repository.PostRepository
	logger            logger.Logger
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository, log logger.Logger) CommentService {
	return &commentService{
		commentRepository: commentRepo,
		postRepository:    postRepo,
		logger:            log,
	}
}

func (c *commentService) AddComment(postUUID, authorUUID, text string) (*entity.Comment, error) {
	if text == "" {
		return nil, fmt.Errorf("the comment text is required")
	}

	if _, err := c.postRepository.GetByUUID(postUUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("post %s: %w", postUUID, apperr.ErrNotFound)
		}
		return nil, err
	}

	comment := &entity.Comment{
		UUID:       uuid.New().String(),
		Text:       text,
		CreatedAt:  time.Now(),
		PostUUID:   postUUID,
		AuthorUUID: authorUUID,
	}
	if err := c.commentRepository.Create(comment); err != nil {
		return nil, err
	}

	c.logger.Logf("Comment %s added on post %s", comment.UUID, postUUID)
	return comment, nil
}

func (c *commentService) GetByPost(postUUID string) ([]*entity.Comment, error) {
	return c.commentRepository.GetByPost(postUUID)
}
