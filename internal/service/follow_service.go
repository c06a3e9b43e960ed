/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package service

import (
	"blog/internal/entity"
	"blog/internal/logger"
	"blog/internal/repository"

	"github.com/google/uuid"
)

// Service used to manage the follow graph. Follow and Unfollow are both
// idempotent, and following yourself is a silent no-op here, mirroring the
// idempotent-edge semantics rather than raising an error.
type FollowService interface {
	Follow(followerUUID, authorUUID string) error           // Adds the edge; no-op on duplicates and on self-follow
	Unfollow(followerUUID, authorUUID string) error         // Removes the edge; no-op when absent
	IsFollowing(followerUUID, authorUUID string) (bool, error) // Reports whether the edge exists
	CountFollowers(authorUUID string) (int64, error)        // Counts how many users follow the author
	CountFollowing(userUUID string) (int64, error)          // Counts how many authors the user follows
	FeedAuthorUUIDs(followerUUID string) ([]string, error)  // Retrieves the authors feeding the user's personal feed
}

type followService struct {
	followRepository repository.FollowRepository
	logger           logger.Logger
}

func NewFollowService(followRepo repository.FollowRepository, log logger.Logger) FollowService {
	return &followService{
		followRepository: followRepo,
		logger:           log,
	}
}

func (f *followService) Follow(followerUUID, authorUUID string) error {
	if followerUUID == authorUUID {
		// Following yourself is dropped here, above the storage layer.
		return nil
	}
	if err := f.followRepository.Create(&entity.Follow{
		UUID:       uuid.New().String(),
		UserUUID:   followerUUID,
		AuthorUUID: authorUUID,
	}); err != nil {
		return err
	}
	f.logger.Logf("%s now follows %s", followerUUID, authorUUID)
	return nil
}

func (f *followService) Unfollow(followerUUID, authorUUID string) error {
	return f.followRepository.Delete(followerUUID, authorUUID)
}

func (f *followService) IsFollowing(followerUUID, authorUUID string) (bool, error) {
	return f.followRepository.Exists(followerUUID, authorUUID)
}

func (f *followService) CountFollowers(authorUUID string) (int64, error) {
	return f.followRepository.CountFollowers(authorUUID)
}

func (f *followService) CountFollowing(userUUID string) (int64, error) {
	return f.followRepository.CountFollowing(userUUID)
}

func (f *followService) FeedAuthorUUIDs(followerUUID string) ([]string, error) {
	return f.followRepository.GetAuthorUUIDs(followerUUID)
}
