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

// Service used to look up and remove users
type UserService interface {
	GetByUsername(username string) (*entity.User, error) // Retrieves the user with the given handle
	GetByUUID(uuid string) (*entity.User, error)         // Retrieves the user with the given uuid
	DeleteUser(uuid string) error                        // Removes the user and everything they authored
}

type userService struct {
	userRepository repository.UserRepository
	logger         logger.Logger
}

func NewUserService(userRepo repository.UserRepository, log logger.Logger) UserService {
	return &userService{
		userRepository: userRepo,
		logger:         log,
	}
}

func (u *userService) GetByUsername(username string) (*entity.User, error) {
	user, err := u.userRepository.GetByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user %q: %w", username, apperr.ErrNotFound)
	}
	return user, err
}

func (u *userService) GetByUUID(uuid string) (*entity.User, error) {
	user, err := u.userRepository.GetByUUID(uuid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user %s: %w", uuid, apperr.ErrNotFound)
	}
	return user, err
}

func (u *userService) DeleteUser(uuid string) error {
	u.logger.Logf("Deleting user %s", uuid)
	return u.userRepository.Delete(uuid)
}
