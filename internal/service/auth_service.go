/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package service

import (
	"fmt"
	"time"

	"blog/internal/apperr"
	"blog/internal/entity"
	"blog/internal/logger"
	"blog/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Service used for user registration and login. Everything past this point
// identifies users by UUID; the password hash never leaves this service.
type AuthService interface {
	Register(username, fullName, password string) (*entity.User, error) // Creates a new user, returning it if successful
	Login(username, password string) (*entity.User, error)              // Authenticates a user via its credentials
}

type authService struct {
	userRepository repository.UserRepository
	logger         logger.Logger
}

func NewAuthService(userRepo repository.UserRepository, log logger.Logger) AuthService {
	return &authService{
		userRepository: userRepo,
		logger:         log,
	}
}

func (a *authService) Register(username, fullName, password string) (*entity.User, error) {
	if username == "" {
		return nil, fmt.Errorf("a username is required")
	}
	if password == "" {
		return nil, fmt.Errorf("a password is required")
	}

	taken, err := a.userRepository.Exists(username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("the username %q is already taken", username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		a.logger.Logf("Could not calculate hash{%v}", err)
		return nil, err
	}

	id := uuid.New().String()
	u := &entity.User{
		UUID:      id,
		Username:  username,
		FullName:  fullName,
		CreatedAt: time.Now(),

		Secret: entity.UserSecret{
			UserUUID: id,
			Hash:     string(hash),
		},
	}
	if err := a.userRepository.Create(u); err != nil {
		return nil, err
	}

	a.logger.Logf("User %s registered", username)
	return u, nil
}

func (a *authService) Login(username, password string) (*entity.User, error) {
	// An unknown username and a wrong password both come back as
	// ErrUnauthenticated, the login form never learns which one it was.
	u, err := a.userRepository.GetForLogin(username)
	if err != nil {
		return nil, fmt.Errorf("wrong credentials for %q: %w", username, apperr.ErrUnauthenticated)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Secret.Hash), []byte(password)); err != nil {
		return nil, fmt.Errorf("wrong credentials for %q: %w", username, apperr.ErrUnauthenticated)
	}
	return u, nil
}
