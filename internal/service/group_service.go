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

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// Service used to manage the group catalog
type GroupService interface {
	CreateGroup(title, rawSlug, description string) (*entity.Group, error) // Creates a group; the slug is derived from the title when none is given
	GetBySlug(slug string) (*entity.Group, error)                          // Retrieves a group by its slug
	ListGroups() ([]*entity.Group, error)                                  // Retrieves every group
}

type groupService struct {
	groupRepository repository.GroupRepository
	logger          logger.Logger
}

func NewGroupService(groupRepo repository.GroupRepository, log logger.Logger) GroupService {
	return &groupService{
		groupRepository: groupRepo,
		logger:          log,
	}
}

func (g *groupService) CreateGroup(title, rawSlug, description string) (*entity.Group, error) {
	if title == "" {
		return nil, fmt.Errorf("a group title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("the group title cannot exceed 200 characters")
	}

	if rawSlug == "" {
		rawSlug = title
	}

	group := &entity.Group{
		UUID:        uuid.New().String(),
		Title:       title,
		Slug:        slug.Make(rawSlug),
		Description: description,
	}
	if err := g.groupRepository.Create(group); err != nil {
		return nil, err
	}

	g.logger.Logf("Group %q created with slug %q", title, group.Slug)
	return group, nil
}

func (g *groupService) GetBySlug(s string) (*entity.Group, error) {
	group, err := g.groupRepository.GetBySlug(s)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("group %q: %w", s, apperr.ErrNotFound)
	}
	return group, err
}

func (g *groupService) ListGroups() ([]*entity.Group, error) {
	return g.groupRepository.GetAll()
}
