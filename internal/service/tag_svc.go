package service

import (
	"context"

	"github.com/pulsar1812/code-hunt/internal/model"
	"github.com/pulsar1812/code-hunt/internal/repository"
	"github.com/pulsar1812/code-hunt/pkg/pagination"
)

const (
	popularTagsLimit       = 5
	topInteractedTagsLimit = 3
)

type TagService struct {
	tags         *repository.TagRepo
	users        *repository.UserRepo
	interactions *InteractionService
}

func NewTagService(tags *repository.TagRepo, users *repository.UserRepo, interactions *InteractionService) *TagService {
	return &TagService{tags: tags, users: users, interactions: interactions}
}

// List returns a paginated tag directory.
func (s *TagService) List(ctx context.Context, search, filter string, page, pageSize int) (*model.TagListResponse, error) {
	skip := pagination.Offset(page, pageSize)

	tags, err := s.tags.List(ctx, search, filter, skip, pageSize)
	if err != nil {
		return nil, err
	}

	total, err := s.tags.Count(ctx, search)
	if err != nil {
		return nil, err
	}

	return &model.TagListResponse{
		Tags:   tags,
		IsNext: pagination.HasNextCount(total, skip, len(tags)),
	}, nil
}

// PopularTop returns the tags with the most questions.
func (s *TagService) PopularTop(ctx context.Context) ([]model.Tag, error) {
	return s.tags.PopularTop(ctx, popularTagsLimit)
}

// TopInteracted returns the tags a user engages with most, from their
// journal.
func (s *TagService) TopInteracted(ctx context.Context, userID int64) ([]model.Tag, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.interactions.TopInteractedTags(ctx, userID, topInteractedTagsLimit)
}
