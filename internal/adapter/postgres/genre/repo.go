// Package genre implements the Genre repository using PostgreSQL.
package genre

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/yamdb-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yamdb-backend/internal/domain"
)

const table = "genres"

// Repo provides genre persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new genre repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type row struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
	Slug string `db:"slug"`
}

func (r row) toDomain() domain.Genre {
	return domain.Genre{ID: r.ID, Name: r.Name, Slug: r.Slug}
}

// List returns a page of genres ordered by name. A non-empty name keeps
// only genres with exactly that name.
func (r *Repo) List(ctx context.Context, name string, page domain.PageRequest) (domain.Page[domain.Genre], error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := sq.And{}
	if name != "" {
		where = append(where, sq.Eq{"name": name})
	}

	countSQL, countArgs, err := postgres.Builder.Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return domain.Page[domain.Genre]{}, postgres.MapError(err, "genre", "list")
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return domain.Page[domain.Genre]{}, postgres.MapError(err, "genre", "list")
	}

	query, args, err := postgres.Builder.
		Select("id", "name", "slug").
		From(table).
		Where(where).
		OrderBy("name", "id").
		Limit(uint64(page.Size)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return domain.Page[domain.Genre]{}, postgres.MapError(err, "genre", "list")
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return domain.Page[domain.Genre]{}, postgres.MapError(err, "genre", "list")
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[row])
	if err != nil {
		return domain.Page[domain.Genre]{}, postgres.MapError(err, "genre", "list")
	}

	items := make([]domain.Genre, len(collected))
	for i, c := range collected {
		items[i] = c.toDomain()
	}
	return domain.Page[domain.Genre]{Items: items, Total: total}, nil
}

// GetBySlug returns a genre by slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Genre, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT id, name, slug FROM genres WHERE slug = $1`, slug)
	if err != nil {
		return nil, postgres.MapError(err, "genre", slug)
	}
	got, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[row])
	if err != nil {
		return nil, postgres.MapError(err, "genre", slug)
	}

	c := got.toDomain()
	return &c, nil
}

// Create inserts a genre. A taken slug yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, c domain.Genre) (*domain.Genre, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	err := q.QueryRow(ctx,
		`INSERT INTO genres (name, slug) VALUES ($1, $2) RETURNING id`,
		c.Name, c.Slug,
	).Scan(&c.ID)
	if err != nil {
		return nil, postgres.MapError(err, "genre", c.Slug)
	}
	return &c, nil
}

// DeleteBySlug removes a genre and its links to titles.
func (r *Repo) DeleteBySlug(ctx context.Context, slug string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM genres WHERE slug = $1`, slug)
	if err != nil {
		return postgres.MapError(err, "genre", slug)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "genre", slug)
	}
	return nil
}
