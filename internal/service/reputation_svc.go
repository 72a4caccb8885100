package service

import (
	"context"

	"github.com/pulsar1812/code-hunt/internal/model"
	"github.com/pulsar1812/code-hunt/internal/repository"
)

// One-shot creation awards, applied once at submission and never reversed
// on edit.
const (
	AskQuestionAward = 5
	PostAnswerAward  = 10
)

// ReputationService applies point deltas to the voter and the content
// author. Reputation is a denormalized counter; these increments are its
// only write path.
type ReputationService struct {
	users *repository.UserRepo
}

func NewReputationService(users *repository.UserRepo) *ReputationService {
	return &ReputationService{users: users}
}

// voteDelta returns the signed voter/author deltas for one transition.
// hadPrior is the target direction's prior flag: false applies the vote,
// true revokes it and flips the sign. Upvotes credit, downvotes debit.
//
//	question/up:   voter 1,  author 10
//	question/down: voter 2,  author 10
//	answer/up:     voter 2,  author 10
//	answer/down:   voter 2,  author 10
func voteDelta(itemType, direction string, hadPrior bool) (voterDelta, authorDelta int) {
	voterMagnitude := 2
	if itemType == model.ContentQuestion && direction == model.VoteUp {
		voterMagnitude = 1
	}

	if direction == model.VoteUp {
		voterDelta, authorDelta = voterMagnitude, 10
	} else {
		voterDelta, authorDelta = -voterMagnitude, -10
	}

	if hadPrior {
		voterDelta, authorDelta = -voterDelta, -authorDelta
	}
	return voterDelta, authorDelta
}

// ApplyVoteDelta issues the two reputation updates for a vote transition.
// The voter and author writes are independent; there is no cross-record
// transaction.
func (s *ReputationService) ApplyVoteDelta(ctx context.Context, itemType string, voterID, authorID int64, hadPrior bool, direction string) error {
	voterDelta, authorDelta := voteDelta(itemType, direction, hadPrior)

	if err := s.users.IncrementReputation(ctx, voterID, voterDelta); err != nil {
		return err
	}
	return s.users.IncrementReputation(ctx, authorID, authorDelta)
}

// AwardQuestionCreated credits the author for asking a question.
func (s *ReputationService) AwardQuestionCreated(ctx context.Context, authorID int64) error {
	return s.users.IncrementReputation(ctx, authorID, AskQuestionAward)
}

// AwardAnswerCreated credits the author for posting an answer.
func (s *ReputationService) AwardAnswerCreated(ctx context.Context, authorID int64) error {
	return s.users.IncrementReputation(ctx, authorID, PostAnswerAward)
}
