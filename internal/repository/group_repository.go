/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package repository

import (
	"blog/internal/apperr"
	"blog/internal/entity"

	"gorm.io/gorm"
)

// This repository is the catalog of groups. Slugs are unique: creating a
// group whose slug is already taken fails with apperr.ErrDuplicateSlug.
// Groups have no lifecycle beyond create, update and the admin-only delete;
// deleting one clears the group reference on its posts at the storage level.
type GroupRepository interface {
	Create(group *entity.Group) error             // Inserts a group, rejecting duplicate slugs
	Update(group *entity.Group) error             // Updates title, slug and description (admin path)
	GetBySlug(slug string) (*entity.Group, error) // Retrieves the group with the given slug
	GetByUUID(uuid string) (*entity.Group, error) // Retrieves the group with the given uuid
	GetAll() ([]*entity.Group, error)             // Retrieves every group, ordered by title
	Delete(uuid string) error                     // Removes the group; its posts survive with a cleared reference
}

// Implementation of the repository using a SQL database through gorm
type SQLGroupRepository struct {
	db *gorm.DB
}

func NewSQLGroupRepository(db *gorm.DB) GroupRepository {
	return &SQLGroupRepository{db}
}

func (repo *SQLGroupRepository) Create(group *entity.Group) error {
	return repo.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entity.Group{}).Where("slug = ?", group.Slug).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperr.ErrDuplicateSlug
		}
		return tx.Create(group).Error
	})
}

func (repo *SQLGroupRepository) Update(group *entity.Group) error {
	return repo.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entity.Group{}).
			Where("slug = ? AND uuid <> ?", group.Slug, group.UUID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperr.ErrDuplicateSlug
		}
		return tx.Model(&entity.Group{UUID: group.UUID}).
			Select("Title", "Slug", "Description").
			Updates(group).Error
	})
}

func (repo *SQLGroupRepository) GetBySlug(slug string) (*entity.Group, error) {
	var group entity.Group
	err := repo.db.Where("slug = ?", slug).First(&group).Error
	return &group, err
}

func (repo *SQLGroupRepository) GetByUUID(uuid string) (*entity.Group, error) {
	var group entity.Group
	err := repo.db.Where("uuid = ?", uuid).First(&group).Error
	return &group, err
}

func (repo *SQLGroupRepository) GetAll() ([]*entity.Group, error) {
	var groups []*entity.Group
	err := repo.db.Order("title ASC").Find(&groups).Error
	return groups, err
}

func (repo *SQLGroupRepository) Delete(uuid string) error {
	return repo.db.Where("uuid = ?", uuid).Delete(&entity.Group{}).Error
}
