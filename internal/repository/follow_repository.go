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
	"gorm.io/gorm/clause"
)

// This repository holds the directed user->author follow edges. The unique
// index on the pair makes Create an insert-or-ignore: following someone
// twice leaves exactly one edge and is not an error. The self-follow rule
// is NOT enforced here; it belongs to the follow service.
type FollowRepository interface {
	Create(follow *entity.Follow) error                 // Inserts the edge, silently ignoring a duplicate
	Delete(userUUID, authorUUID string) error           // Removes the edge, silently ignoring an absent one
	Exists(userUUID, authorUUID string) (bool, error)   // Reports whether the edge exists
	CountFollowers(authorUUID string) (int64, error)    // Counts how many users follow the author
	CountFollowing(userUUID string) (int64, error)      // Counts how many authors the user follows
	GetAuthorUUIDs(userUUID string) ([]string, error)   // Retrieves the set of authors the user follows
}

// Implementation of the repository using a SQL database through gorm
type SQLFollowRepository struct {
	db *gorm.DB
}

func NewSQLFollowRepository(db *gorm.DB) FollowRepository {
	return &SQLFollowRepository{db}
}

func (repo *SQLFollowRepository) Create(follow *entity.Follow) error {
	return repo.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_uuid"}, {Name: "author_uuid"}},
		DoNothing: true,
	}).Create(follow).Error
}

func (repo *SQLFollowRepository) Delete(userUUID, authorUUID string) error {
	return repo.db.
		Where("user_uuid = ? AND author_uuid = ?", userUUID, authorUUID).
		Delete(&entity.Follow{}).Error
}

func (repo *SQLFollowRepository) Exists(userUUID, authorUUID string) (bool, error) {
	var count int64
	err := repo.db.Model(&entity.Follow{}).
		Where("user_uuid = ? AND author_uuid = ?", userUUID, authorUUID).
		Count(&count).Error
	return count > 0, err
}

func (repo *SQLFollowRepository) CountFollowers(authorUUID string) (int64, error) {
	var count int64
	err := repo.db.Model(&entity.Follow{}).Where("author_uuid = ?", authorUUID).Count(&count).Error
	return count, err
}

func (repo *SQLFollowRepository) CountFollowing(userUUID string) (int64, error) {
	var count int64
	err := repo.db.Model(&entity.Follow{}).Where("user_uuid = ?", userUUID).Count(&count).Error
	return count, err
}

func (repo *SQLFollowRepository) GetAuthorUUIDs(userUUID string) ([]string, error) {
	var authorUUIDs []string
	err := repo.db.Model(&entity.Follow{}).
		Where("user_uuid = ?", userUUID).
		Pluck("author_uuid", &authorUUIDs).Error
	return authorUUIDs, err
}
