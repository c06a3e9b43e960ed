/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package repository

import (
	"blog/internal/entity"

	"gorm.io/gorm"
)

// This repository holds the comments attached to posts. Comments only get
// created and listed; there is no edit or delete path, they disappear with
// their post or their author through the storage-level cascade.
type CommentRepository interface {
	Create(comment *entity.Comment) error                 // Inserts a comment
	GetByPost(postUUID string) ([]*entity.Comment, error) // Retrieves the comments of a post, newest-first
}

// Implementation of the repository using a SQL database through gorm
type SQLCommentRepository struct {
	db *gorm.DB
}

func NewSQLCommentRepository(db *gorm.DB) CommentRepository {
	return &SQLCommentRepository{db}
}

func (repo *SQLCommentRepository) Create(comment *entity.Comment) error {
	return repo.db.Create(comment).Error
}

func (repo *SQLCommentRepository) GetByPost(postUUID string) ([]*entity.Comment, error) {
	var comments []*entity.Comment
	err := repo.db.Preload("Author").
		Where("post_uuid = ?", postUUID).
		Order("created_at DESC, uuid DESC").
		Find(&comments).Error
	return comments, err
}
