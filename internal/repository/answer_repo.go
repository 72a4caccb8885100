package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pulsar1812/code-hunt/internal/apperror"
	"github.com/pulsar1812/code-hunt/internal/model"
)

type AnswerRepo struct {
	pool *pgxpool.Pool
}

func NewAnswerRepo(pool *pgxpool.Pool) *AnswerRepo {
	return &AnswerRepo{pool: pool}
}

const answerColumns = `
	a.id, a.question_id, a.author_id, a.content, a.created_at,
	(SELECT COUNT(*) FROM answer_votes v WHERE v.answer_id = a.id AND v.direction = 'up') AS upvotes,
	(SELECT COUNT(*) FROM answer_votes v WHERE v.answer_id = a.id AND v.direction = 'down') AS downvotes`

func scanAnswer(row pgx.Row) (*model.Answer, error) {
	var a model.Answer
	err := row.Scan(&a.ID, &a.QuestionID, &a.AuthorID, &a.Content, &a.CreatedAt,
		&a.Upvotes, &a.Downvotes)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AnswerRepo) collect(rows pgx.Rows) ([]model.Answer, error) {
	defer rows.Close()
	var answers []model.Answer
	for rows.Next() {
		a, err := scanAnswer(rows)
		if err != nil {
			return nil, apperror.StoreUnavailable("scan answer", err)
		}
		answers = append(answers, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.StoreUnavailable("read answers", err)
	}
	return answers, nil
}

// Create inserts an answer. The question membership is the foreign key; no
// separate answer-list push is needed.
func (r *AnswerRepo) Create(ctx context.Context, req model.CreateAnswerRequest) (*model.Answer, error) {
	var a model.Answer
	err := r.pool.QueryRow(ctx, `
		INSERT INTO answers (question_id, author_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, question_id, author_id, content, created_at`,
		req.QuestionID, req.AuthorID, req.Content).Scan(
		&a.ID, &a.QuestionID, &a.AuthorID, &a.Content, &a.CreatedAt)
	if err != nil {
		return nil, apperror.StoreUnavailable("create answer", err)
	}
	return &a, nil
}

// FindByID returns a single answer.
func (r *AnswerRepo) FindByID(ctx context.Context, answerID int64) (*model.Answer, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+answerColumns+` FROM answers a WHERE a.id = $1`, answerID)
	a, err := scanAnswer(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.NotFound("answer", answerID)
	}
	if err != nil {
		return nil, apperror.StoreUnavailable("find answer", err)
	}
	return a, nil
}

// ListByQuestion returns a question's answers in the requested order.
func (r *AnswerRepo) ListByQuestion(ctx context.Context, questionID int64, sortBy string) ([]model.Answer, error) {
	orderBy := "a.created_at DESC"
	switch sortBy {
	case model.AnswerSortHighestUpvotes:
		orderBy = "upvotes DESC"
	case model.AnswerSortLowestUpvotes:
		orderBy = "upvotes ASC"
	case model.AnswerSortOld:
		orderBy = "a.created_at ASC"
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+answerColumns+`
		FROM answers a
		WHERE a.question_id = $1
		ORDER BY `+orderBy, questionID)
	if err != nil {
		return nil, apperror.StoreUnavailable("list answers", err)
	}
	return r.collect(rows)
}

// PopulateAuthors fills Author on a slice of answers with one batched query.
func (r *AnswerRepo) PopulateAuthors(ctx context.Context, answers []model.Answer) error {
	if len(answers) == 0 {
		return nil
	}

	authorIDs := make([]int64, len(answers))
	for i, a := range answers {
		authorIDs[i] = a.AuthorID
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+userColumns+` FROM users WHERE id = ANY($1)`, authorIDs)
	if err != nil {
		return apperror.StoreUnavailable("populate answer authors", err)
	}
	defer rows.Close()

	authors := make(map[int64]*model.User)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return apperror.StoreUnavailable("scan answer author", err)
		}
		authors[u.ID] = u
	}
	if err := rows.Err(); err != nil {
		return apperror.StoreUnavailable("populate answer authors", err)
	}

	attachAuthors(answers, authors)
	return nil
}

func attachAuthors(answers []model.Answer, authors map[int64]*model.User) {
	for i := range answers {
		answers[i].Author = authors[answers[i].AuthorID]
	}
}

// Delete removes an answer; its votes and interactions cascade.
func (r *AnswerRepo) Delete(ctx context.Context, answerID int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM answers WHERE id = $1`, answerID)
	if err != nil {
		return apperror.StoreUnavailable("delete answer", err)
	}
	if res.RowsAffected() == 0 {
		return apperror.NotFound("answer", answerID)
	}
	return nil
}

// ByAuthor returns a user's answers for their profile page, most upvoted
// first.
func (r *AnswerRepo) ByAuthor(ctx context.Context, authorID int64, offset, limit int) ([]model.Answer, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+answerColumns+`
		FROM answers a
		WHERE a.author_id = $1
		ORDER BY upvotes DESC
		OFFSET $2 LIMIT $3`, authorID, offset, limit)
	if err != nil {
		return nil, apperror.StoreUnavailable("answers by author", err)
	}
	return r.collect(rows)
}

// CountByAuthor counts a user's answers.
func (r *AnswerRepo) CountByAuthor(ctx context.Context, authorID int64) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM answers WHERE author_id = $1`, authorID).Scan(&n)
	if err != nil {
		return 0, apperror.StoreUnavailable("count answers by author", err)
	}
	return n, nil
}

// SearchByContent returns answers matching a content substring, for global
// search.
func (r *AnswerRepo) SearchByContent(ctx context.Context, query string, limit int) ([]model.Answer, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+answerColumns+`
		FROM answers a
		WHERE a.content ILIKE '%' || $1 || '%'
		LIMIT $2`, query, limit)
	if err != nil {
		return nil, apperror.StoreUnavailable("search answers", err)
	}
	return r.collect(rows)
}

// UpvotesReceived sums upvotes across a user's answers, for badges.
func (r *AnswerRepo) UpvotesReceived(ctx context.Context, authorID int64) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM answer_votes v
		JOIN answers a ON a.id = v.answer_id
		WHERE a.author_id = $1 AND v.direction = 'up'`, authorID).Scan(&n)
	if err != nil {
		return 0, apperror.StoreUnavailable("answer upvotes received", err)
	}
	return n, nil
}
