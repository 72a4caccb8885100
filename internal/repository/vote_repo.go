package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pulsar1812/code-hunt/internal/apperror"
	"github.com/pulsar1812/code-hunt/internal/model"
)

type VoteRepo struct {
	pool *pgxpool.Pool
}

func NewVoteRepo(pool *pgxpool.Pool) *VoteRepo {
	return &VoteRepo{pool: pool}
}

// VoteState is the prior per-(item, voter) state loaded before a transition,
// plus the item's author for the reputation side effect.
type VoteState struct {
	AuthorID    int64
	HasUpvote   bool
	HasDownvote bool
}

// QuestionVoteState loads the author and the voter's current direction for a
// question. Fails with NotFound when the question does not exist.
func (r *VoteRepo) QuestionVoteState(ctx context.Context, questionID, userID int64) (*VoteState, error) {
	query := `
		SELECT q.author_id, COALESCE(v.direction, '')
		FROM questions q
		LEFT JOIN question_votes v ON v.question_id = q.id AND v.user_id = $2
		WHERE q.id = $1`

	return r.voteState(ctx, query, "question", questionID, userID)
}

// AnswerVoteState loads the author and the voter's current direction for an
// answer. Fails with NotFound when the answer does not exist.
func (r *VoteRepo) AnswerVoteState(ctx context.Context, answerID, userID int64) (*VoteState, error) {
	query := `
		SELECT a.author_id, COALESCE(v.direction, '')
		FROM answers a
		LEFT JOIN answer_votes v ON v.answer_id = a.id AND v.user_id = $2
		WHERE a.id = $1`

	return r.voteState(ctx, query, "answer", answerID, userID)
}

func (r *VoteRepo) voteState(ctx context.Context, query, resource string, itemID, userID int64) (*VoteState, error) {
	var state VoteState
	var direction string
	err := r.pool.QueryRow(ctx, query, itemID, userID).Scan(&state.AuthorID, &direction)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.NotFound(resource, itemID)
	}
	if err != nil {
		return nil, apperror.StoreUnavailable("load vote state", err)
	}
	state.HasUpvote = direction == model.VoteUp
	state.HasDownvote = direction == model.VoteDown
	return &state, nil
}

// AddQuestionVote adds the voter to the given direction's set. The insert is
// a single atomic statement; ON CONFLICT keeps it set-like.
func (r *VoteRepo) AddQuestionVote(ctx context.Context, questionID, userID int64, direction string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO question_votes (question_id, user_id, direction)
		VALUES ($1, $2, $3)
		ON CONFLICT (question_id, user_id) DO NOTHING`,
		questionID, userID, direction)
	if err != nil {
		return apperror.StoreUnavailable("add question vote", err)
	}
	return nil
}

// RemoveQuestionVote removes the voter's row, whatever its direction.
func (r *VoteRepo) RemoveQuestionVote(ctx context.Context, questionID, userID int64) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM question_votes WHERE question_id = $1 AND user_id = $2`,
		questionID, userID)
	if err != nil {
		return apperror.StoreUnavailable("remove question vote", err)
	}
	return nil
}

// SwitchQuestionVote flips the voter's existing row to the target direction.
// Removing from one set and adding to the other is one atomic mutation.
func (r *VoteRepo) SwitchQuestionVote(ctx context.Context, questionID, userID int64, direction string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE question_votes SET direction = $3, created_at = NOW()
		WHERE question_id = $1 AND user_id = $2`,
		questionID, userID, direction)
	if err != nil {
		return apperror.StoreUnavailable("switch question vote", err)
	}
	return nil
}

func (r *VoteRepo) AddAnswerVote(ctx context.Context, answerID, userID int64, direction string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO answer_votes (answer_id, user_id, direction)
		VALUES ($1, $2, $3)
		ON CONFLICT (answer_id, user_id) DO NOTHING`,
		answerID, userID, direction)
	if err != nil {
		return apperror.StoreUnavailable("add answer vote", err)
	}
	return nil
}

func (r *VoteRepo) RemoveAnswerVote(ctx context.Context, answerID, userID int64) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM answer_votes WHERE answer_id = $1 AND user_id = $2`,
		answerID, userID)
	if err != nil {
		return apperror.StoreUnavailable("remove answer vote", err)
	}
	return nil
}

func (r *VoteRepo) SwitchAnswerVote(ctx context.Context, answerID, userID int64, direction string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE answer_votes SET direction = $3, created_at = NOW()
		WHERE answer_id = $1 AND user_id = $2`,
		answerID, userID, direction)
	if err != nil {
		return apperror.StoreUnavailable("switch answer vote", err)
	}
	return nil
}

// QuestionVoteCounts returns the current up/down tallies for a question.
func (r *VoteRepo) QuestionVoteCounts(ctx context.Context, questionID int64) (up, down int, err error) {
	err = r.pool.QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE direction = 'up'),
			COUNT(*) FILTER (WHERE direction = 'down')
		FROM question_votes WHERE question_id = $1`,
		questionID).Scan(&up, &down)
	if err != nil {
		return 0, 0, apperror.StoreUnavailable("count question votes", err)
	}
	return up, down, nil
}

// AnswerVoteCounts returns the current up/down tallies for an answer.
func (r *VoteRepo) AnswerVoteCounts(ctx context.Context, answerID int64) (up, down int, err error) {
	err = r.pool.QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE direction = 'up'),
			COUNT(*) FILTER (WHERE direction = 'down')
		FROM answer_votes WHERE answer_id = $1`,
		answerID).Scan(&up, &down)
	if err != nil {
		return 0, 0, apperror.StoreUnavailable("count answer votes", err)
	}
	return up, down, nil
}
