package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pulsar1812/code-hunt/internal/apperror"
	"github.com/pulsar1812/code-hunt/internal/model"
)

// InteractionRepo persists the append-only journal. Rows are inserted once
// per triggering event and only ever removed by content-deletion cascades.
type InteractionRepo struct {
	pool *pgxpool.Pool
}

func NewInteractionRepo(pool *pgxpool.Pool) *InteractionRepo {
	return &InteractionRepo{pool: pool}
}

// Insert appends one journal row.
func (r *InteractionRepo) Insert(ctx context.Context, in model.Interaction) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO interactions (user_id, action, question_id, answer_id, tag_ids)
		VALUES ($1, $2, $3, $4, $5)`,
		in.UserID, in.Action, in.QuestionID, in.AnswerID, in.TagIDs)
	if err != nil {
		return apperror.StoreUnavailable("insert interaction", err)
	}
	return nil
}

// HasViewed reports whether a view row already exists for the pair. The
// journal records at most one view per (user, question); the raw counter is
// independent of this check.
func (r *InteractionRepo) HasViewed(ctx context.Context, userID, questionID int64) (bool, error) {
	var viewed bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM interactions
			WHERE user_id = $1 AND question_id = $2 AND action = 'view'
		)`, userID, questionID).Scan(&viewed)
	if err != nil {
		return false, apperror.StoreUnavailable("check viewed", err)
	}
	return viewed, nil
}

// TagIDsByUser returns the tag_ids arrays of all of a user's interactions.
// The service derives the deduplicated affinity set from them.
func (r *InteractionRepo) TagIDsByUser(ctx context.Context, userID int64) ([][]int64, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT tag_ids FROM interactions WHERE user_id = $1`, userID)
	if err != nil {
		return nil, apperror.StoreUnavailable("load interaction tags", err)
	}
	defer rows.Close()

	var sets [][]int64
	for rows.Next() {
		var ids []int64
		if err := rows.Scan(&ids); err != nil {
			return nil, apperror.StoreUnavailable("scan interaction tags", err)
		}
		sets = append(sets, ids)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.StoreUnavailable("load interaction tags", err)
	}
	return sets, nil
}

// TopTagsByUser returns the user's most frequently interacted tags.
func (r *InteractionRepo) TopTagsByUser(ctx context.Context, userID int64, limit int) ([]model.Tag, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT t.id, t.name, t.created_at, COUNT(*) AS interactions
		FROM interactions i
		CROSS JOIN LATERAL UNNEST(i.tag_ids) AS tid
		JOIN tags t ON t.id = tid
		WHERE i.user_id = $1
		GROUP BY t.id, t.name, t.created_at
		ORDER BY interactions DESC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, apperror.StoreUnavailable("top interacted tags", err)
	}
	defer rows.Close()

	var tags []model.Tag
	for rows.Next() {
		var t model.Tag
		var count int
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt, &count); err != nil {
			return nil, apperror.StoreUnavailable("scan top tag", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.StoreUnavailable("top interacted tags", err)
	}
	return tags, nil
}
