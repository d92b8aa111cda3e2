// Package category implements the Category repository using PostgreSQL.
package category

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/yamdb-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yamdb-backend/internal/domain"
)

const table = "categories"

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new category repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type row struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
	Slug string `db:"slug"`
}

func (r row) toDomain() domain.Category {
	return domain.Category{ID: r.ID, Name: r.Name, Slug: r.Slug}
}

// List returns a page of categories ordered by name. A non-empty name keeps
// only categories with exactly that name.
func (r *Repo) List(ctx context.Context, name string, page domain.PageRequest) (domain.Page[domain.Category], error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := sq.And{}
	if name != "" {
		where = append(where, sq.Eq{"name": name})
	}

	countSQL, countArgs, err := postgres.Builder.Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return domain.Page[domain.Category]{}, postgres.MapError(err, "category", "list")
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return domain.Page[domain.Category]{}, postgres.MapError(err, "category", "list")
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
		return domain.Page[domain.Category]{}, postgres.MapError(err, "category", "list")
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return domain.Page[domain.Category]{}, postgres.MapError(err, "category", "list")
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[row])
	if err != nil {
		return domain.Page[domain.Category]{}, postgres.MapError(err, "category", "list")
	}

	items := make([]domain.Category, len(collected))
	for i, c := range collected {
		items[i] = c.toDomain()
	}
	return domain.Page[domain.Category]{Items: items, Total: total}, nil
}

// GetBySlug returns a category by slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT id, name, slug FROM categories WHERE slug = $1`, slug)
	if err != nil {
		return nil, postgres.MapError(err, "category", slug)
	}
	got, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[row])
	if err != nil {
		return nil, postgres.MapError(err, "category", slug)
	}

	c := got.toDomain()
	return &c, nil
}

// Create inserts a category. A taken slug yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, c domain.Category) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	err := q.QueryRow(ctx,
		`INSERT INTO categories (name, slug) VALUES ($1, $2) RETURNING id`,
		c.Name, c.Slug,
	).Scan(&c.ID)
	if err != nil {
		return nil, postgres.MapError(err, "category", c.Slug)
	}
	return &c, nil
}

// DeleteBySlug removes a category. Titles in it keep existing without a category.
func (r *Repo) DeleteBySlug(ctx context.Context, slug string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM categories WHERE slug = $1`, slug)
	if err != nil {
		return postgres.MapError(err, "category", slug)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "category", slug)
	}
	return nil
}
