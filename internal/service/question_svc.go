package service

import (
	"context"
	"log"
	"strings"

	"github.com/pulsar1812/code-hunt/internal/apperror"
	"github.com/pulsar1812/code-hunt/internal/model"
	"github.com/pulsar1812/code-hunt/internal/repository"
	"github.com/pulsar1812/code-hunt/pkg/pagination"
)

const hotQuestionsLimit = 5

type QuestionService struct {
	questions    *repository.QuestionRepo
	tags         *repository.TagRepo
	interactions *InteractionService
	rep          *ReputationService
	cache        *CacheService
}

func NewQuestionService(questions *repository.QuestionRepo, tags *repository.TagRepo, interactions *InteractionService, rep *ReputationService, cache *CacheService) *QuestionService {
	return &QuestionService{
		questions:    questions,
		tags:         tags,
		interactions: interactions,
		rep:          rep,
		cache:        cache,
	}
}

// Create asks a question: insert the row, upsert each tag name
// case-insensitively, attach the tag set, journal the ask with that set,
// and credit the author.
func (s *QuestionService) Create(ctx context.Context, req model.CreateQuestionRequest) (*model.Question, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperror.ValidationFailed("title", "title is required")
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, apperror.ValidationFailed("content", "content is required")
	}
	if len(req.Tags) == 0 {
		return nil, apperror.ValidationFailed("tags", "at least one tag is required")
	}

	q, err := s.questions.Create(ctx, req.AuthorID, req.Title, req.Content)
	if err != nil {
		return nil, err
	}

	tagIDs := make([]int64, 0, len(req.Tags))
	for _, name := range req.Tags {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		id, err := s.tags.UpsertByName(ctx, name)
		if err != nil {
			return nil, err
		}
		tagIDs = append(tagIDs, id)
	}

	if err := s.questions.AttachTags(ctx, q.ID, tagIDs); err != nil {
		return nil, err
	}

	if err := s.interactions.RecordAsk(ctx, q.ID, req.AuthorID, tagIDs); err != nil {
		return nil, err
	}

	if err := s.rep.AwardQuestionCreated(ctx, req.AuthorID); err != nil {
		return nil, err
	}

	s.invalidateFeed(ctx)
	return s.questions.FindByID(ctx, q.ID)
}

// Get returns a question with tags and author populated.
func (s *QuestionService) Get(ctx context.Context, questionID int64) (*model.Question, error) {
	return s.questions.FindByID(ctx, questionID)
}

// List is the home feed: search + filter + count-based pagination.
func (s *QuestionService) List(ctx context.Context, search, filter string, page, pageSize int) (*model.QuestionListResponse, error) {
	skip := pagination.Offset(page, pageSize)

	questions, err := s.questions.List(ctx, search, filter, skip, pageSize)
	if err != nil {
		return nil, err
	}
	if err := s.questions.Populate(ctx, questions); err != nil {
		return nil, err
	}

	total, err := s.questions.Count(ctx, search, filter)
	if err != nil {
		return nil, err
	}

	return &model.QuestionListResponse{
		Questions: questions,
		IsNext:    pagination.HasNextCount(total, skip, len(questions)),
	}, nil
}

// Edit updates title and content only.
func (s *QuestionService) Edit(ctx context.Context, questionID int64, req model.EditQuestionRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return apperror.ValidationFailed("title", "title is required")
	}
	if err := s.questions.UpdateContent(ctx, questionID, req.Title, req.Content); err != nil {
		return err
	}
	s.invalidate(ctx, questionID)
	return nil
}

// Delete removes a question; answers, votes, interactions and tag
// back-references cascade with it.
func (s *QuestionService) Delete(ctx context.Context, questionID int64) error {
	if err := s.questions.Delete(ctx, questionID); err != nil {
		return err
	}
	s.invalidate(ctx, questionID)
	return nil
}

// Hot returns the top questions by views then upvotes.
func (s *QuestionService) Hot(ctx context.Context) ([]model.Question, error) {
	questions, err := s.questions.Hot(ctx, hotQuestionsLimit)
	if err != nil {
		return nil, err
	}
	if err := s.questions.Populate(ctx, questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// ByTag lists a tag's questions with overfetch pagination: the repo fetched
// pageSize+1 rows and the extra row is trimmed here.
func (s *QuestionService) ByTag(ctx context.Context, tagID int64, search string, page, pageSize int) (*model.QuestionListResponse, string, error) {
	tag, err := s.tags.FindByID(ctx, tagID)
	if err != nil {
		return nil, "", err
	}

	skip := pagination.Offset(page, pageSize)
	questions, err := s.questions.ByTag(ctx, tagID, search, skip, pageSize)
	if err != nil {
		return nil, "", err
	}

	isNext := pagination.HasNextOverfetch(len(questions), pageSize)
	questions = pagination.Trim(questions, pageSize)

	if err := s.questions.Populate(ctx, questions); err != nil {
		return nil, "", err
	}

	return &model.QuestionListResponse{Questions: questions, IsNext: isNext}, tag.Name, nil
}

func (s *QuestionService) invalidate(ctx context.Context, questionID int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateItem(ctx, model.ContentQuestion, questionID); err != nil {
		log.Printf("cache: invalidate question %d error: %v", questionID, err)
	}
}

func (s *QuestionService) invalidateFeed(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFeed(ctx); err != nil {
		log.Printf("cache: invalidate feed error: %v", err)
	}
}
