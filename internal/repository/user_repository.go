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

// This repository holds the registered users. Deleting a user is a hard
// delete: their posts, comments and follow edges disappear through the
// storage-level cascade.
type UserRepository interface {
	Create(user *entity.User) error                       // Inserts a user together with its secret
	GetByUUID(uuid string) (*entity.User, error)          // Retrieves the user with the given uuid
	GetByUsername(username string) (*entity.User, error)  // Retrieves the user with the given handle
	GetForLogin(username string) (*entity.User, error)    // Retrieves the user WITH its secret, for the login check
	Exists(username string) (bool, error)                 // Reports whether the handle is taken
	Delete(uuid string) error                             // Removes the user and everything they authored
}

// Implementation of the repository using a SQL database through gorm
type SQLUserRepository struct {
	db *gorm.DB
}

func NewSQLUserRepository(db *gorm.DB) UserRepository {
	return &SQLUserRepository{db}
}

func (repo *SQLUserRepository) Create(user *entity.User) error {
	return repo.db.Create(user).Error
}

func (repo *SQLUserRepository) GetByUUID(uuid string) (*entity.User, error) {
	var user entity.User
	err := repo.db.Where("uuid = ?", uuid).First(&user).Error
	return &user, err
}

func (repo *SQLUserRepository) GetByUsername(username string) (*entity.User, error) {
	var user entity.User
	err := repo.db.Where("username = ?", username).First(&user).Error
	return &user, err
}

func (repo *SQLUserRepository) GetForLogin(username string) (*entity.User, error) {
	var user entity.User
	if err := repo.db.Preload("Secret").Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *SQLUserRepository) Exists(username string) (bool, error) {
	var count int64
	err := repo.db.Model(&entity.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (repo *SQLUserRepository) Delete(uuid string) error {
	return repo.db.Where("uuid = ?", uuid).Delete(&entity.User{}).Error
}
