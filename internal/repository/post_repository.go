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

// Every listing comes back newest-first, with the uuid as a tiebreak so two
// posts created in the same instant always land in the same order.
const postOrder = "created_at DESC, uuid DESC"

// This repository holds the authored posts. Listings are always ordered
// newest-first and carry the author (and group, when set) preloaded, so the
// callers never go back to the database per row.
type PostRepository interface {
	Create(post *entity.Post) error                         // Inserts a post
	Update(post *entity.Post) error                         // Rewrites text, group and image of the post
	GetByUUID(uuid string) (*entity.Post, error)            // Retrieves the post with the given uuid
	GetAll() ([]*entity.Post, error)                        // Retrieves every post, newest-first
	GetByGroup(groupUUID string) ([]*entity.Post, error)    // Retrieves the posts filed under a group, newest-first
	GetByAuthor(authorUUID string) ([]*entity.Post, error)  // Retrieves the posts of one author, newest-first
	GetByAuthors(authorUUIDs []string) ([]*entity.Post, error) // Retrieves the posts of a set of authors, newest-first
	CountByAuthor(authorUUID string) (int64, error)         // Counts the posts of one author
	Delete(uuid string) error                               // Removes the post; its comments go down with it
}

// Implementation of the repository using a SQL database through gorm
type SQLPostRepository struct {
	db *gorm.DB
}

func NewSQLPostRepository(db *gorm.DB) PostRepository {
	return &SQLPostRepository{db}
}

func (repo *SQLPostRepository) Create(post *entity.Post) error {
	return repo.db.Create(post).Error
}

func (repo *SQLPostRepository) Update(post *entity.Post) error {
	// Select forces gorm to write zero values too, so clearing the group
	// (nil) or the image (empty string) actually reaches the database.
	return repo.db.Model(&entity.Post{UUID: post.UUID}).
		Select("Text", "GroupUUID", "ImagePath").
		Updates(post).Error
}

func (repo *SQLPostRepository) GetByUUID(uuid string) (*entity.Post, error) {
	var post entity.Post
	err := repo.db.Preload("Author").Preload("Group").Where("uuid = ?", uuid).First(&post).Error
	return &post, err
}

func (repo *SQLPostRepository) GetAll() ([]*entity.Post, error) {
	var posts []*entity.Post
	err := repo.db.Preload("Author").Preload("Group").Order(postOrder).Find(&posts).Error
	return posts, err
}

func (repo *SQLPostRepository) GetByGroup(groupUUID string) ([]*entity.Post, error) {
	var posts []*entity.Post
	err := repo.db.Preload("Author").Preload("Group").
		Where("group_uuid = ?", groupUUID).
		Order(postOrder).
		Find(&posts).Error
	return posts, err
}

func (repo *SQLPostRepository) GetByAuthor(authorUUID string) ([]*entity.Post, error) {
	var posts []*entity.Post
	err := repo.db.Preload("Author").Preload("Group").
		Where("author_uuid = ?", authorUUID).
		Order(postOrder).
		Find(&posts).Error
	return posts, err
}

func (repo *SQLPostRepository) GetByAuthors(authorUUIDs []string) ([]*entity.Post, error) {
	posts := []*entity.Post{}
	if len(authorUUIDs) == 0 {
		return posts, nil
	}
	err := repo.db.Preload("Author").Preload("Group").
		Where("author_uuid IN ?", authorUUIDs).
		Order(postOrder).
		Find(&posts).Error
	return posts, err
}

func (repo *SQLPostRepository) CountByAuthor(authorUUID string) (int64, error) {
	var count int64
	err := repo.db.Model(&entity.Post{}).Where("author_uuid = ?", authorUUID).Count(&count).Error
	return count, err
}

func (repo *SQLPostRepository) Delete(uuid string) error {
	return repo.db.Where("uuid = ?", uuid).Delete(&entity.Post{}).Error
}
