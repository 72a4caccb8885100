package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pulsar1812/code-hunt/internal/apperror"
	"github.com/pulsar1812/code-hunt/internal/model"
)

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = `id, name, username, email, reputation, joined_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Reputation, &u.JoinedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user. Reputation starts at zero.
func (r *UserRepo) Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (name, username, email)
		VALUES ($1, $2, $3)
		RETURNING `+userColumns,
		req.Name, req.Username, req.Email)

	u, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperror.ValidationFailed("username", "username or email already taken")
		}
		return nil, apperror.StoreUnavailable("create user", err)
	}
	return u, nil
}

// FindByID returns a single user by id.
func (r *UserRepo) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, userID)
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.NotFound("user", userID)
	}
	if err != nil {
		return nil, apperror.StoreUnavailable("find user", err)
	}
	return u, nil
}

// List returns users matching an optional name/username substring, in the
// requested order.
func (r *UserRepo) List(ctx context.Context, search, filter string, offset, limit int) ([]model.User, error) {
	orderBy := "joined_at DESC"
	switch filter {
	case model.UserFilterOld:
		orderBy = "joined_at ASC"
	case model.UserFilterTopContributors:
		orderBy = "reputation DESC"
	}

	query := `
		SELECT ` + userColumns + ` FROM users
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR username ILIKE '%' || $1 || '%')
		ORDER BY ` + orderBy + `
		OFFSET $2 LIMIT $3`

	rows, err := r.pool.Query(ctx, query, search, offset, limit)
	if err != nil {
		return nil, apperror.StoreUnavailable("list users", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, apperror.StoreUnavailable("scan user", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.StoreUnavailable("list users", err)
	}
	return users, nil
}

// Count returns how many users match the search filter.
func (r *UserRepo) Count(ctx context.Context, search string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM users
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR username ILIKE '%' || $1 || '%')`,
		search).Scan(&n)
	if err != nil {
		return 0, apperror.StoreUnavailable("count users", err)
	}
	return n, nil
}

// IncrementReputation applies a signed delta to a user's denormalized
// reputation counter. This is the only write path for reputation.
func (r *UserRepo) IncrementReputation(ctx context.Context, userID int64, delta int) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE users SET reputation = reputation + $2 WHERE id = $1`,
		userID, delta)
	if err != nil {
		return apperror.StoreUnavailable("increment reputation", err)
	}
	return nil
}

// IsSaved reports whether the user has saved the question.
func (r *UserRepo) IsSaved(ctx context.Context, userID, questionID int64) (bool, error) {
	var saved bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM saved_questions WHERE user_id = $1 AND question_id = $2
		)`, userID, questionID).Scan(&saved)
	if err != nil {
		return false, apperror.StoreUnavailable("check saved", err)
	}
	return saved, nil
}

// AddSaved adds a question to the user's saved set.
func (r *UserRepo) AddSaved(ctx context.Context, userID, questionID int64) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO saved_questions (user_id, question_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, question_id) DO NOTHING`,
		userID, questionID)
	if err != nil {
		return apperror.StoreUnavailable("add saved", err)
	}
	return nil
}

// RemoveSaved removes a question from the user's saved set.
func (r *UserRepo) RemoveSaved(ctx context.Context, userID, questionID int64) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM saved_questions WHERE user_id = $1 AND question_id = $2`,
		userID, questionID)
	if err != nil {
		return apperror.StoreUnavailable("remove saved", err)
	}
	return nil
}

// Delete removes a user. Their questions, answers, votes, saved references
// and interactions all cascade from the user row, including rows on content
// they did not author.
func (r *UserRepo) Delete(ctx context.Context, userID int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return apperror.StoreUnavailable("delete user", err)
	}
	if res.RowsAffected() == 0 {
		return apperror.NotFound("user", userID)
	}
	return nil
}

// SearchByName returns users whose name matches the substring, for global
// search.
func (r *UserRepo) SearchByName(ctx context.Context, query string, limit int) ([]model.User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+userColumns+` FROM users
		WHERE name ILIKE '%' || $1 || '%'
		LIMIT $2`, query, limit)
	if err != nil {
		return nil, apperror.StoreUnavailable("search users", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, apperror.StoreUnavailable("scan user", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.StoreUnavailable("search users", err)
	}
	return users, nil
}

// Stats returns aggregate platform statistics.
func (r *UserRepo) Stats(ctx context.Context) (*model.StatsResponse, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM questions) AS total_questions,
			(SELECT COUNT(*) FROM answers) AS total_answers,
			(SELECT COUNT(*) FROM users) AS total_users,
			(SELECT COUNT(*) FROM tags) AS total_tags,
			(SELECT COUNT(*) FROM question_votes) +
			(SELECT COUNT(*) FROM answer_votes) AS total_votes`

	var stats model.StatsResponse
	err := r.pool.QueryRow(ctx, query).Scan(
		&stats.TotalQuestions, &stats.TotalAnswers, &stats.TotalUsers,
		&stats.TotalTags, &stats.TotalVotes,
	)
	if err != nil {
		return nil, apperror.StoreUnavailable("load stats", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT t.name, COUNT(qt.question_id) AS total
		FROM tags t
		JOIN question_tags qt ON qt.tag_id = t.id
		GROUP BY t.name
		ORDER BY total DESC
		LIMIT 5`)
	if err != nil {
		return nil, apperror.StoreUnavailable("load top tags", err)
	}
	defer rows.Close()

	stats.TopTags = make(map[string]int)
	for rows.Next() {
		var name string
		var count int
		if err := rows.Scan(&name, &count); err != nil {
			return nil, apperror.StoreUnavailable("scan top tag", err)
		}
		stats.TopTags[name] = count
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.StoreUnavailable("load top tags", err)
	}
	return &stats, nil
}
