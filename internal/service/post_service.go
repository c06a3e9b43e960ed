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

// PostEdit carries the author-editable fields of a post. A nil GroupUUID
// clears the group; an empty ImagePath keeps the current image.
type PostEdit struct {
	Text      string
	GroupUUID *string
	ImagePath string
}

// Service used to author and edit posts. Every write checks ownership:
// only the author of a post may change or remove it.
type PostService interface {
	CreatePost(authorUUID, text string, groupUUID *string, imagePath string) (*entity.Post, error) // Creates a post for the author
	UpdatePost(postUUID, editorUUID string, edit PostEdit) (*entity.Post, error)                   // Applies the edit if the editor owns the post
	DeletePost(postUUID, editorUUID string) error                                                  // Removes the post if the editor owns it
	GetPost(postUUID string) (*entity.Post, error)                                                 // Retrieves a single post
}

type postService struct {
	postRepository  repository.PostRepository
	groupRepository repository.GroupRepository
	logger          logger.Logger
}

func NewPostService(postRepo repository.PostRepository, groupRepo repository.GroupRepository, log logger.Logger) PostService {
	return &postService{
		postRepository:  postRepo,
		groupRepository: groupRepo,
		logger:          log,
	}
}

func (p *postService) CreatePost(authorUUID, text string, groupUUID *string, imagePath string) (*entity.Post, error) {
	if text == "" {
		return nil, fmt.Errorf("the post text is required")
	}
	if err := p.checkGroup(groupUUID); err != nil {
		return nil, err
	}

	post := &entity.Post{
		UUID:       uuid.New().String(),
		Text:       text,
		CreatedAt:  time.Now(),
		AuthorUUID: authorUUID,
		GroupUUID:  groupUUID,
		ImagePath:  imagePath,
	}
	if err := p.postRepository.Create(post); err != nil {
		return nil, err
	}

	p.logger.Logf("Post %s created by %s", post.UUID, authorUUID)
	return post, nil
}

func (p *postService) UpdatePost(postUUID, editorUUID string, edit PostEdit) (*entity.Post, error) {
	post, err := p.GetPost(postUUID)
	if err != nil {
		return nil, err
	}
	if post.AuthorUUID != editorUUID {
		return nil, fmt.Errorf("post %s does not belong to %s: %w", postUUID, editorUUID, apperr.ErrForbidden)
	}
	if edit.Text == "" {
		return nil, fmt.Errorf("the post text is required")
	}
	if err := p.checkGroup(edit.GroupUUID); err != nil {
		return nil, err
	}

	post.Text = edit.Text
	post.GroupUUID = edit.GroupUUID
	if edit.ImagePath != "" {
		post.ImagePath = edit.ImagePath
	}
	if err := p.postRepository.Update(post); err != nil {
		return nil, err
	}

	p.logger.Logf("Post %s edited by its author", postUUID)
	return post, nil
}

func (p *postService) DeletePost(postUUID, editorUUID string) error {
	post, err := p.GetPost(postUUID)
	if err != nil {
		return err
	}
	if post.AuthorUUID != editorUUID {
		return fmt.Errorf("post %s does not belong to %s: %w", postUUID, editorUUID, apperr.ErrForbidden)
	}
	return p.postRepository.Delete(postUUID)
}

func (p *postService) GetPost(postUUID string) (*entity.Post, error) {
	post, err := p.postRepository.GetByUUID(postUUID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("post %s: %w", postUUID, apperr.ErrNotFound)
	}
	return post, err
}

// checkGroup verifies that the referenced group exists. Posting without a
// group is always fine.
func (p *postService) checkGroup(groupUUID *string) error {
	if groupUUID == nil {
		return nil
	}
	_, err := p.groupRepository.GetByUUID(*groupUUID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("group %s: %w", *groupUUID, apperr.ErrNotFound)
	}
	return err
}
