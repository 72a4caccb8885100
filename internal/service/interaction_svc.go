package service

import (
	"context"

	"github.com/pulsar1812/code-hunt/internal/model"
	"github.com/pulsar1812/code-hunt/internal/repository"
)

// InteractionService maintains the append-only journal that feeds the
// recommendation engine, plus the raw view counter.
type InteractionService struct {
	interactions *repository.InteractionRepo
	questions    *repository.QuestionRepo
}

func NewInteractionService(interactions *repository.InteractionRepo, questions *repository.QuestionRepo) *InteractionService {
	return &InteractionService{interactions: interactions, questions: questions}
}

// RecordView bumps the question's view counter on every call, anonymous or
// not. The journal append is separate: at most one view row per
// (user, question), so repeat visits keep counting traffic without skewing
// the recommendation signal.
func (s *InteractionService) RecordView(ctx context.Context, questionID int64, userID *int64) error {
	if err := s.questions.IncrementViews(ctx, questionID); err != nil {
		return err
	}

	if userID == nil {
		return nil
	}

	viewed, err := s.interactions.HasViewed(ctx, *userID, questionID)
	if err != nil {
		return err
	}
	if viewed {
		// Already journaled for this pair; the skip is success, not an error.
		return nil
	}

	return s.interactions.Insert(ctx, model.Interaction{
		UserID:     *userID,
		Action:     model.ActionView,
		QuestionID: questionID,
	})
}

// RecordAsk journals a question submission with its tag set at ask time.
// Always appends.
func (s *InteractionService) RecordAsk(ctx context.Context, questionID, userID int64, tagIDs []int64) error {
	return s.interactions.Insert(ctx, model.Interaction{
		UserID:     userID,
		Action:     model.ActionAskQuestion,
		QuestionID: questionID,
		TagIDs:     tagIDs,
	})
}

// RecordAnswer journals an answer submission, capturing the question's tag
// set at answer time. Always appends.
func (s *InteractionService) RecordAnswer(ctx context.Context, questionID, answerID, userID int64, tagIDs []int64) error {
	return s.interactions.Insert(ctx, model.Interaction{
		UserID:     userID,
		Action:     model.ActionAnswer,
		QuestionID: questionID,
		AnswerID:   &answerID,
		TagIDs:     tagIDs,
	})
}

// TopInteractedTags returns the user's most frequent journal tags.
func (s *InteractionService) TopInteractedTags(ctx context.Context, userID int64, limit int) ([]model.Tag, error) {
	return s.interactions.TopTagsByUser(ctx, userID, limit)
}
