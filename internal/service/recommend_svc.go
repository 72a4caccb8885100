package service

import (
	"context"

	"github.com/pulsar1812/code-hunt/internal/model"
	"github.com/pulsar1812/code-hunt/internal/repository"
	"github.com/pulsar1812/code-hunt/pkg/pagination"
)

// RecommendService ranks questions by the caller's tag affinity, derived
// from their interaction journal.
type RecommendService struct {
	users        *repository.UserRepo
	questions    *repository.QuestionRepo
	interactions *repository.InteractionRepo
}

func NewRecommendService(users *repository.UserRepo, questions *repository.QuestionRepo, interactions *repository.InteractionRepo) *RecommendService {
	return &RecommendService{users: users, questions: questions, interactions: interactions}
}

// affinityTags collapses the journal's per-row tag sets into one
// deduplicated set. Order is irrelevant; only membership matters.
func affinityTags(tagSets [][]int64) []int64 {
	seen := make(map[int64]struct{})
	var distinct []int64
	for _, set := range tagSets {
		for _, id := range set {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			distinct = append(distinct, id)
		}
	}
	return distinct
}

// Recommend returns questions whose tags intersect the user's affinity set,
// excluding the user's own questions. A user with no journal history gets
// an empty page, not an error; the caller falls back to the plain feed.
func (s *RecommendService) Recommend(ctx context.Context, userID int64, searchQuery string, page, pageSize int) (*model.QuestionListResponse, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	tagSets, err := s.interactions.TagIDsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	affinity := affinityTags(tagSets)
	if len(affinity) == 0 {
		return &model.QuestionListResponse{Questions: []model.Question{}, IsNext: false}, nil
	}

	skip := pagination.Offset(page, pageSize)

	total, err := s.questions.CountRecommended(ctx, userID, affinity, searchQuery)
	if err != nil {
		return nil, err
	}

	questions, err := s.questions.Recommended(ctx, userID, affinity, searchQuery, skip, pageSize)
	if err != nil {
		return nil, err
	}
	if err := s.questions.Populate(ctx, questions); err != nil {
		return nil, err
	}

	return &model.QuestionListResponse{
		Questions: questions,
		IsNext:    pagination.HasNextCount(total, skip, len(questions)),
	}, nil
}
