package service

import (
	"context"
	"log"
	"strings"

	"github.com/pulsar1812/code-hunt/internal/apperror"
	"github.com/pulsar1812/code-hunt/internal/model"
	"github.com/pulsar1812/code-hunt/internal/repository"
)

type AnswerService struct {
	answers      *repository.AnswerRepo
	questions    *repository.QuestionRepo
	interactions *InteractionService
	rep          *ReputationService
	cache        *CacheService
}

func NewAnswerService(answers *repository.AnswerRepo, questions *repository.QuestionRepo, interactions *InteractionService, rep *ReputationService, cache *CacheService) *AnswerService {
	return &AnswerService{
		answers:      answers,
		questions:    questions,
		interactions: interactions,
		rep:          rep,
		cache:        cache,
	}
}

// Create posts an answer: insert the row, journal it with the question's
// tag set captured now, and credit the author.
func (s *AnswerService) Create(ctx context.Context, req model.CreateAnswerRequest) (*model.Answer, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, apperror.ValidationFailed("content", "content is required")
	}

	// The question must exist before anything is written.
	if _, err := s.questions.FindByID(ctx, req.QuestionID); err != nil {
		return nil, err
	}

	a, err := s.answers.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	tagIDs, err := s.questions.TagIDs(ctx, req.QuestionID)
	if err != nil {
		return nil, err
	}

	if err := s.interactions.RecordAnswer(ctx, req.QuestionID, a.ID, req.AuthorID, tagIDs); err != nil {
		return nil, err
	}

	if err := s.rep.AwardAnswerCreated(ctx, req.AuthorID); err != nil {
		return nil, err
	}

	s.invalidateQuestion(ctx, req.QuestionID)
	return a, nil
}

// ListByQuestion returns a question's answers in the requested order.
func (s *AnswerService) ListByQuestion(ctx context.Context, questionID int64, sortBy string) (*model.AnswerListResponse, error) {
	if _, err := s.questions.FindByID(ctx, questionID); err != nil {
		return nil, err
	}

	answers, err := s.answers.ListByQuestion(ctx, questionID, sortBy)
	if err != nil {
		return nil, err
	}
	if err := s.answers.PopulateAuthors(ctx, answers); err != nil {
		return nil, err
	}
	return &model.AnswerListResponse{Answers: answers}, nil
}

// Delete removes an answer; votes and interactions cascade.
func (s *AnswerService) Delete(ctx context.Context, answerID int64) error {
	a, err := s.answers.FindByID(ctx, answerID)
	if err != nil {
		return err
	}
	if err := s.answers.Delete(ctx, answerID); err != nil {
		return err
	}
	s.invalidateQuestion(ctx, a.QuestionID)
	return nil
}

func (s *AnswerService) invalidateQuestion(ctx context.Context, questionID int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateItem(ctx, model.ContentQuestion, questionID); err != nil {
		log.Printf("cache: invalidate question %d error: %v", questionID, err)
	}
}
