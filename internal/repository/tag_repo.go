package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pulsar1812/code-hunt/internal/apperror"
	"github.com/pulsar1812/code-hunt/internal/model"
)

type TagRepo struct {
	pool *pgxpool.Pool
}

func NewTagRepo(pool *pgxpool.Pool) *TagRepo {
	return &TagRepo{pool: pool}
}

// UpsertByName finds a tag case-insensitively or creates it, returning the
// id either way. The first writer's spelling wins.
func (r *TagRepo) UpsertByName(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO tags (name) VALUES ($1)
		ON CONFLICT (LOWER(name)) DO UPDATE SET name = tags.name
		RETURNING id`, name).Scan(&id)
	if err != nil {
		return 0, apperror.StoreUnavailable("upsert tag", err)
	}
	return id, nil
}

// FindByID returns a single tag.
func (r *TagRepo) FindByID(ctx context.Context, tagID int64) (*model.Tag, error) {
	var t model.Tag
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, created_at FROM tags WHERE id = $1`, tagID).Scan(
		&t.ID, &t.Name, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.NotFound("tag", tagID)
	}
	if err != nil {
		return nil, apperror.StoreUnavailable("find tag", err)
	}
	return &t, nil
}

// List returns tags with their question counts, searchable and sortable.
func (r *TagRepo) List(ctx context.Context, search, filter string, offset, limit int) ([]model.Tag, error) {
	orderBy := "t.created_at DESC"
	switch filter {
	case model.TagFilterPopular:
		orderBy = "questions DESC"
	case model.TagFilterName:
		orderBy = "t.name ASC"
	case model.TagFilterOld:
		orderBy = "t.created_at ASC"
	}

	query := `
		SELECT t.id, t.name, t.created_at,
		       (SELECT COUNT(*) FROM question_tags qt WHERE qt.tag_id = t.id) AS questions
		FROM tags t
		WHERE ($1 = '' OR t.name ILIKE '%' || $1 || '%')
		ORDER BY ` + orderBy + `
		OFFSET $2 LIMIT $3`

	rows, err := r.pool.Query(ctx, query, search, offset, limit)
	if err != nil {
		return nil, apperror.StoreUnavailable("list tags", err)
	}
	return collectTags(rows)
}

// Count returns how many tags match the search filter.
func (r *TagRepo) Count(ctx context.Context, search string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM tags
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')`, search).Scan(&n)
	if err != nil {
		return 0, apperror.StoreUnavailable("count tags", err)
	}
	return n, nil
}

// PopularTop returns the tags with the most questions.
func (r *TagRepo) PopularTop(ctx context.Context, limit int) ([]model.Tag, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT t.id, t.name, t.created_at,
		       (SELECT COUNT(*) FROM question_tags qt WHERE qt.tag_id = t.id) AS questions
		FROM tags t
		ORDER BY questions DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, apperror.StoreUnavailable("popular tags", err)
	}
	return collectTags(rows)
}

// SearchByName returns tags matching a name substring, for global search.
func (r *TagRepo) SearchByName(ctx context.Context, query string, limit int) ([]model.Tag, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT t.id, t.name, t.created_at,
		       0 AS questions
		FROM tags t
		WHERE t.name ILIKE '%' || $1 || '%'
		LIMIT $2`, query, limit)
	if err != nil {
		return nil, apperror.StoreUnavailable("search tags", err)
	}
	return collectTags(rows)
}

func collectTags(rows pgx.Rows) ([]model.Tag, error) {
	defer rows.Close()
	var tags []model.Tag
	for rows.Next() {
		var t model.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt, &t.Questions); err != nil {
			return nil, apperror.StoreUnavailable("scan tag", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.StoreUnavailable("read tags", err)
	}
	return tags, nil
}
