package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pulsar1812/code-hunt/internal/apperror"
	"github.com/pulsar1812/code-hunt/internal/model"
)

type QuestionRepo struct {
	pool *pgxpool.Pool
}

func NewQuestionRepo(pool *pgxpool.Pool) *QuestionRepo {
	return &QuestionRepo{pool: pool}
}

// questionColumns selects the question row plus denormalized vote/answer
// tallies. The subqueries keep a single round trip per listing.
const questionColumns = `
	q.id, q.author_id, q.title, q.content, q.views, q.created_at,
	(SELECT COUNT(*) FROM question_votes v WHERE v.question_id = q.id AND v.direction = 'up') AS upvotes,
	(SELECT COUNT(*) FROM question_votes v WHERE v.question_id = q.id AND v.direction = 'down') AS downvotes,
	(SELECT COUNT(*) FROM answers a WHERE a.question_id = q.id) AS answers`

func scanQuestion(row pgx.Row) (*model.Question, error) {
	var q model.Question
	err := row.Scan(&q.ID, &q.AuthorID, &q.Title, &q.Content, &q.Views, &q.CreatedAt,
		&q.Upvotes, &q.Downvotes, &q.Answers)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuestionRepo) collect(rows pgx.Rows) ([]model.Question, error) {
	defer rows.Close()
	var questions []model.Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, apperror.StoreUnavailable("scan question", err)
		}
		questions = append(questions, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.StoreUnavailable("read questions", err)
	}
	return questions, nil
}

// Create inserts a bare question row; tags are attached separately after
// the tag upsert pass.
func (r *QuestionRepo) Create(ctx context.Context, authorID int64, title, content string) (*model.Question, error) {
	var q model.Question
	err := r.pool.QueryRow(ctx, `
		INSERT INTO questions (author_id, title, content)
		VALUES ($1, $2, $3)
		RETURNING id, author_id, title, content, views, created_at`,
		authorID, title, content).Scan(
		&q.ID, &q.AuthorID, &q.Title, &q.Content, &q.Views, &q.CreatedAt)
	if err != nil {
		return nil, apperror.StoreUnavailable("create question", err)
	}
	return &q, nil
}

// AttachTags links the question to its tag set.
func (r *QuestionRepo) AttachTags(ctx context.Context, questionID int64, tagIDs []int64) error {
	for _, tagID := range tagIDs {
		_, err := r.pool.Exec(ctx, `
			INSERT INTO question_tags (question_id, tag_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING`,
			questionID, tagID)
		if err != nil {
			return apperror.StoreUnavailable("attach tag", err)
		}
	}
	return nil
}

// TagIDs returns the question's tag id set, captured by the interaction
// journal at ask/answer time.
func (r *QuestionRepo) TagIDs(ctx context.Context, questionID int64) ([]int64, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT tag_id FROM question_tags WHERE question_id = $1`, questionID)
	if err != nil {
		return nil, apperror.StoreUnavailable("load question tags", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, apperror.StoreUnavailable("scan tag id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.StoreUnavailable("load question tags", err)
	}
	return ids, nil
}

// FindByID returns a question with its tags and author populated.
func (r *QuestionRepo) FindByID(ctx context.Context, questionID int64) (*model.Question, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+questionColumns+` FROM questions q WHERE q.id = $1`, questionID)
	q, err := scanQuestion(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.NotFound("question", questionID)
	}
	if err != nil {
		return nil, apperror.StoreUnavailable("find question", err)
	}

	questions := []model.Question{*q}
	if err := r.Populate(ctx, questions); err != nil {
		return nil, err
	}
	return &questions[0], nil
}

// Populate fills Tags and Author on a slice of questions with two batched
// queries instead of one pair per row.
func (r *QuestionRepo) Populate(ctx context.Context, questions []model.Question) error {
	if len(questions) == 0 {
		return nil
	}

	ids := make([]int64, len(questions))
	authorIDs := make([]int64, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
		authorIDs[i] = q.AuthorID
	}

	rows, err := r.pool.Query(ctx, `
		SELECT qt.question_id, t.id, t.name, t.created_at
		FROM question_tags qt
		JOIN tags t ON t.id = qt.tag_id
		WHERE qt.question_id = ANY($1)`, ids)
	if err != nil {
		return apperror.StoreUnavailable("populate tags", err)
	}
	tagsByQuestion := make(map[int64][]model.Tag)
	for rows.Next() {
		var qID int64
		var t model.Tag
		if err := rows.Scan(&qID, &t.ID, &t.Name, &t.CreatedAt); err != nil {
			rows.Close()
			return apperror.StoreUnavailable("scan question tag", err)
		}
		tagsByQuestion[qID] = append(tagsByQuestion[qID], t)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return apperror.StoreUnavailable("populate tags", err)
	}

	rows, err = r.pool.Query(ctx, `
		SELECT `+userColumns+` FROM users WHERE id = ANY($1)`, authorIDs)
	if err != nil {
		return apperror.StoreUnavailable("populate authors", err)
	}
	authors := make(map[int64]*model.User)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			rows.Close()
			return apperror.StoreUnavailable("scan author", err)
		}
		authors[u.ID] = u
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return apperror.StoreUnavailable("populate authors", err)
	}

	for i := range questions {
		questions[i].Tags = tagsByQuestion[questions[i].ID]
		questions[i].Author = authors[questions[i].AuthorID]
	}
	return nil
}

// listFilter builds the shared WHERE/ORDER BY fragments for List and Count
// so both run against the same filter.
func listFilter(filter string) (where, orderBy string) {
	orderBy = "q.created_at DESC"
	switch filter {
	case model.QuestionFilterFrequent:
		orderBy = "q.views DESC"
	case model.QuestionFilterUnanswered:
		where = " AND NOT EXISTS (SELECT 1 FROM answers a WHERE a.question_id = q.id)"
	}
	return where, orderBy
}

// List returns the home feed: optional title/content substring search plus
// a named sort filter.
func (r *QuestionRepo) List(ctx context.Context, search, filter string, offset, limit int) ([]model.Question, error) {
	where, orderBy := listFilter(filter)
	query := `
		SELECT ` + questionColumns + `
		FROM questions q
		WHERE ($1 = '' OR q.title ILIKE '%' || $1 || '%' OR q.content ILIKE '%' || $1 || '%')` +
		where + `
		ORDER BY ` + orderBy + `
		OFFSET $2 LIMIT $3`

	rows, err := r.pool.Query(ctx, query, search, offset, limit)
	if err != nil {
		return nil, apperror.StoreUnavailable("list questions", err)
	}
	return r.collect(rows)
}

// Count returns the total matching the same filter List applies.
func (r *QuestionRepo) Count(ctx context.Context, search, filter string) (int, error) {
	where, _ := listFilter(filter)
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM questions q
		WHERE ($1 = '' OR q.title ILIKE '%' || $1 || '%' OR q.content ILIKE '%' || $1 || '%')`+where,
		search).Scan(&n)
	if err != nil {
		return 0, apperror.StoreUnavailable("count questions", err)
	}
	return n, nil
}

// UpdateContent edits title and content in place. Tags are immutable after
// creation.
func (r *QuestionRepo) UpdateContent(ctx context.Context, questionID int64, title, content string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE questions SET title = $2, content = $3 WHERE id = $1`,
		questionID, title, content)
	if err != nil {
		return apperror.StoreUnavailable("update question", err)
	}
	if res.RowsAffected() == 0 {
		return apperror.NotFound("question", questionID)
	}
	return nil
}

// Delete removes a question. Answers, votes, saved references, tag
// back-references and interactions cascade via foreign keys.
func (r *QuestionRepo) Delete(ctx context.Context, questionID int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM questions WHERE id = $1`, questionID)
	if err != nil {
		return apperror.StoreUnavailable("delete question", err)
	}
	if res.RowsAffected() == 0 {
		return apperror.NotFound("question", questionID)
	}
	return nil
}

// IncrementViews bumps the raw traffic counter by one. Always called,
// independent of the journal's per-user dedup.
func (r *QuestionRepo) IncrementViews(ctx context.Context, questionID int64) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE questions SET views = views + 1 WHERE id = $1`, questionID)
	if err != nil {
		return apperror.StoreUnavailable("increment views", err)
	}
	if res.RowsAffected() == 0 {
		return apperror.NotFound("question", questionID)
	}
	return nil
}

// Hot returns the top questions by views then upvotes.
func (r *QuestionRepo) Hot(ctx context.Context, limit int) ([]model.Question, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+questionColumns+`
		FROM questions q
		ORDER BY q.views DESC, upvotes DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, apperror.StoreUnavailable("hot questions", err)
	}
	return r.collect(rows)
}

// Recommended returns candidate questions whose tag set intersects the
// affinity tags, excluding the user's own questions.
func (r *QuestionRepo) Recommended(ctx context.Context, userID int64, tagIDs []int64, search string, offset, limit int) ([]model.Question, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+questionColumns+`
		FROM questions q
		WHERE q.author_id <> $1
		  AND EXISTS (
			SELECT 1 FROM question_tags qt
			WHERE qt.question_id = q.id AND qt.tag_id = ANY($2)
		  )
		  AND ($3 = '' OR q.title ILIKE '%' || $3 || '%' OR q.content ILIKE '%' || $3 || '%')
		ORDER BY q.created_at DESC
		OFFSET $4 LIMIT $5`,
		userID, tagIDs, search, offset, limit)
	if err != nil {
		return nil, apperror.StoreUnavailable("recommended questions", err)
	}
	return r.collect(rows)
}

// CountRecommended counts the same candidate set Recommended pages over.
func (r *QuestionRepo) CountRecommended(ctx context.Context, userID int64, tagIDs []int64, search string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM questions q
		WHERE q.author_id <> $1
		  AND EXISTS (
			SELECT 1 FROM question_tags qt
			WHERE qt.question_id = q.id AND qt.tag_id = ANY($2)
		  )
		  AND ($3 = '' OR q.title ILIKE '%' || $3 || '%' OR q.content ILIKE '%' || $3 || '%')`,
		userID, tagIDs, search).Scan(&n)
	if err != nil {
		return 0, apperror.StoreUnavailable("count recommended", err)
	}
	return n, nil
}

// ByAuthor returns a user's questions ordered for their profile page.
func (r *QuestionRepo) ByAuthor(ctx context.Context, authorID int64, offset, limit int) ([]model.Question, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+questionColumns+`
		FROM questions q
		WHERE q.author_id = $1
		ORDER BY q.created_at DESC, q.views DESC, upvotes DESC
		OFFSET $2 LIMIT $3`, authorID, offset, limit)
	if err != nil {
		return nil, apperror.StoreUnavailable("questions by author", err)
	}
	return r.collect(rows)
}

// CountByAuthor counts a user's questions.
func (r *QuestionRepo) CountByAuthor(ctx context.Context, authorID int64) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM questions WHERE author_id = $1`, authorID).Scan(&n)
	if err != nil {
		return 0, apperror.StoreUnavailable("count by author", err)
	}
	return n, nil
}

// ByTag returns questions carrying a tag, overfetched by one row so the
// caller computes page existence without a second count query.
func (r *QuestionRepo) ByTag(ctx context.Context, tagID int64, search string, offset, limit int) ([]model.Question, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+questionColumns+`
		FROM questions q
		JOIN question_tags qt ON qt.question_id = q.id
		WHERE qt.tag_id = $1
		  AND ($2 = '' OR q.title ILIKE '%' || $2 || '%')
		ORDER BY q.created_at DESC
		OFFSET $3 LIMIT $4`,
		tagID, search, offset, limit+1)
	if err != nil {
		return nil, apperror.StoreUnavailable("questions by tag", err)
	}
	return r.collect(rows)
}

// Saved returns a user's saved questions, overfetched by one row.
func (r *QuestionRepo) Saved(ctx context.Context, userID int64, search, filter string, offset, limit int) ([]model.Question, error) {
	orderBy := "q.created_at DESC"
	switch filter {
	case model.SavedFilterOldest:
		orderBy = "q.created_at ASC"
	case model.SavedFilterMostVoted:
		orderBy = "upvotes DESC"
	case model.SavedFilterMostViewed:
		orderBy = "q.views DESC"
	case model.SavedFilterMostAnswered:
		orderBy = "answers DESC"
	}

	query := `
		SELECT ` + questionColumns + `
		FROM questions q
		JOIN saved_questions s ON s.question_id = q.id
		WHERE s.user_id = $1
		  AND ($2 = '' OR q.title ILIKE '%' || $2 || '%')
		ORDER BY ` + orderBy + `
		OFFSET $3 LIMIT $4`

	rows, err := r.pool.Query(ctx, query, userID, search, offset, limit+1)
	if err != nil {
		return nil, apperror.StoreUnavailable("saved questions", err)
	}
	return r.collect(rows)
}

// SearchByTitle returns questions matching a title substring, for global
// search.
func (r *QuestionRepo) SearchByTitle(ctx context.Context, query string, limit int) ([]model.Question, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+questionColumns+`
		FROM questions q
		WHERE q.title ILIKE '%' || $1 || '%'
		LIMIT $2`, query, limit)
	if err != nil {
		return nil, apperror.StoreUnavailable("search questions", err)
	}
	return r.collect(rows)
}

// UpvotesReceived sums upvotes across a user's questions, for badges.
func (r *QuestionRepo) UpvotesReceived(ctx context.Context, authorID int64) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM question_votes v
		JOIN questions q ON q.id = v.question_id
		WHERE q.author_id = $1 AND v.direction = 'up'`, authorID).Scan(&n)
	if err != nil {
		return 0, apperror.StoreUnavailable("question upvotes received", err)
	}
	return n, nil
}

// ViewsTotal sums views across a user's questions, for badges.
func (r *QuestionRepo) ViewsTotal(ctx context.Context, authorID int64) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(views), 0) FROM questions WHERE author_id = $1`,
		authorID).Scan(&n)
	if err != nil {
		return 0, apperror.StoreUnavailable("question views total", err)
	}
	return n, nil
}
