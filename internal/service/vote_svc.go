package service

import (
	"context"
	"log"

	"github.com/pulsar1812/code-hunt/internal/apperror"
	"github.com/pulsar1812/code-hunt/internal/model"
	"github.com/pulsar1812/code-hunt/internal/repository"
)

// voteOp is the set mutation a transition resolves to.
type voteOp int

const (
	opAdd    voteOp = iota // voter not in either set: add to target set
	opRemove               // voter already in target set: toggle off
	opSwitch               // voter in opposite set: flip in one mutation
)

// VoteService is the per-(item, voter) tri-state toggle engine. Each cast
// applies exactly one set mutation and exactly one reputation call.
type VoteService struct {
	repo  *repository.VoteRepo
	rep   *ReputationService
	cache *CacheService
}

func NewVoteService(repo *repository.VoteRepo, rep *ReputationService, cache *CacheService) *VoteService {
	return &VoteService{repo: repo, rep: rep, cache: cache}
}

// resolveTransition maps the voter's prior state and the requested direction
// to a set mutation:
//
//	none      -> add to the target set
//	same      -> remove (a repeated identical vote toggles off)
//	opposite  -> switch sets atomically
func resolveTransition(hasUp, hasDown bool, direction string) voteOp {
	switch {
	case direction == model.VoteUp && hasUp,
		direction == model.VoteDown && hasDown:
		return opRemove
	case direction == model.VoteUp && hasDown,
		direction == model.VoteDown && hasUp:
		return opSwitch
	default:
		return opAdd
	}
}

// priorFlag returns whether the target direction's flag was already set.
// The reputation delta is computed from this flag alone; switching from the
// opposite direction charges the plain apply delta without reversing the
// opposite direction's earlier delta.
func priorFlag(hasUp, hasDown bool, direction string) bool {
	if direction == model.VoteUp {
		return hasUp
	}
	return hasDown
}

// Cast applies one vote transition for a content item.
func (s *VoteService) Cast(ctx context.Context, itemType string, itemID, voterID int64, direction string) (*model.VoteResult, error) {
	if direction != model.VoteUp && direction != model.VoteDown {
		return nil, apperror.ValidationFailed("direction", "direction must be 'up' or 'down'")
	}

	switch itemType {
	case model.ContentQuestion, model.ContentAnswer:
	default:
		return nil, apperror.ValidationFailed("itemType", "itemType must be 'question' or 'answer'")
	}

	state, err := s.loadState(ctx, itemType, itemID, voterID)
	if err != nil {
		return nil, err
	}

	op := resolveTransition(state.HasUpvote, state.HasDownvote, direction)
	if err := s.applyMutation(ctx, itemType, itemID, voterID, direction, op); err != nil {
		return nil, err
	}

	// The set mutation above and the two reputation writes below are three
	// independent statements, not one transaction. A crash in between can
	// leave vote sets and reputation inconsistent; callers wanting strict
	// consistency need a wrapping transaction or a compensating retry.
	hadPrior := priorFlag(state.HasUpvote, state.HasDownvote, direction)
	if err := s.rep.ApplyVoteDelta(ctx, itemType, voterID, state.AuthorID, hadPrior, direction); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateItem(ctx, itemType, itemID); err != nil {
			log.Printf("cache: invalidate %s %d error: %v", itemType, itemID, err)
		}
	}

	return s.result(ctx, itemType, itemID, direction, op)
}

func (s *VoteService) loadState(ctx context.Context, itemType string, itemID, voterID int64) (*repository.VoteState, error) {
	if itemType == model.ContentQuestion {
		return s.repo.QuestionVoteState(ctx, itemID, voterID)
	}
	return s.repo.AnswerVoteState(ctx, itemID, voterID)
}

func (s *VoteService) applyMutation(ctx context.Context, itemType string, itemID, voterID int64, direction string, op voteOp) error {
	if itemType == model.ContentQuestion {
		switch op {
		case opAdd:
			return s.repo.AddQuestionVote(ctx, itemID, voterID, direction)
		case opRemove:
			return s.repo.RemoveQuestionVote(ctx, itemID, voterID)
		default:
			return s.repo.SwitchQuestionVote(ctx, itemID, voterID, direction)
		}
	}
	switch op {
	case opAdd:
		return s.repo.AddAnswerVote(ctx, itemID, voterID, direction)
	case opRemove:
		return s.repo.RemoveAnswerVote(ctx, itemID, voterID)
	default:
		return s.repo.SwitchAnswerVote(ctx, itemID, voterID, direction)
	}
}

func (s *VoteService) result(ctx context.Context, itemType string, itemID int64, direction string, op voteOp) (*model.VoteResult, error) {
	var up, down int
	var err error
	if itemType == model.ContentQuestion {
		up, down, err = s.repo.QuestionVoteCounts(ctx, itemID)
	} else {
		up, down, err = s.repo.AnswerVoteCounts(ctx, itemID)
	}
	if err != nil {
		return nil, err
	}

	res := &model.VoteResult{
		Success:   true,
		Upvotes:   up,
		Downvotes: down,
	}
	if op != opRemove {
		res.HasUpvote = direction == model.VoteUp
		res.HasDownvote = direction == model.VoteDown
	}
	return res, nil
}
