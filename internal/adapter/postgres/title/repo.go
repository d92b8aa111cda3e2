// Package title implements the Title repository using PostgreSQL.
package title

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/yamdb-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yamdb-backend/internal/domain"
)

// Repo provides title persistence backed by PostgreSQL. Titles are always
// returned with their category and genres.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new title repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var titleColumns = []string{
	"t.id", "t.name", "t.year", "t.description", "t.rating",
	"c.id", "c.name", "c.slug",
}

func selectTitles(columns ...string) sq.SelectBuilder {
	return postgres.Builder.
		Select(columns...).
		From("titles t").
		LeftJoin("categories c ON c.id = t.category_id")
}

// filterClause translates a TitleFilter into a WHERE clause over selectTitles.
func filterClause(f domain.TitleFilter) sq.And {
	where := sq.And{}
	if f.CategorySlug != "" {
		where = append(where, sq.Eq{"c.slug": f.CategorySlug})
	}
	if f.GenreSlug != "" {
		where = append(where, sq.Expr(
			`EXISTS (SELECT 1 FROM title_genres tg JOIN genres g ON g.id = tg.genre_id
			 WHERE tg.title_id = t.id AND g.slug = ?)`, f.GenreSlug))
	}
	if f.Name != "" {
		where = append(where, sq.ILike{"t.name": "%" + escapeLike(f.Name) + "%"})
	}
	if f.Year != nil {
		where = append(where, sq.Eq{"t.year": *f.Year})
	}
	return where
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// List returns a page of titles matching f, ordered by id.
func (r *Repo) List(ctx context.Context, f domain.TitleFilter, page domain.PageRequest) (domain.Page[domain.Title], error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	where := filterClause(f)

	countSQL, countArgs, err := selectTitles("count(*)").Where(where).ToSql()
	if err != nil {
		return domain.Page[domain.Title]{}, postgres.MapError(err, "title", "list")
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return domain.Page[domain.Title]{}, postgres.MapError(err, "title", "list")
	}

	query, args, err := selectTitles(titleColumns...).
		Where(where).
		OrderBy("t.id").
		Limit(uint64(page.Size)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return domain.Page[domain.Title]{}, postgres.MapError(err, "title", "list")
	}

	titles, err := r.query(ctx, q, query, args...)
	if err != nil {
		return domain.Page[domain.Title]{}, postgres.MapError(err, "title", "list")
	}
	if err := r.attachGenres(ctx, q, titles); err != nil {
		return domain.Page[domain.Title]{}, postgres.MapError(err, "title", "list")
	}

	return domain.Page[domain.Title]{Items: titles, Total: total}, nil
}

// GetByID returns a title by id.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Title, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := selectTitles(titleColumns...).Where(sq.Eq{"t.id": id}).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "title", id)
	}

	titles, err := r.query(ctx, q, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "title", id)
	}
	if len(titles) == 0 {
		return nil, postgres.MapError(pgx.ErrNoRows, "title", id)
	}
	if err := r.attachGenres(ctx, q, titles); err != nil {
		return nil, postgres.MapError(err, "title", id)
	}

	return &titles[0], nil
}

// Exists reports whether a title with the id exists.
func (r *Repo) Exists(ctx context.Context, id int64) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM titles WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "title", id)
	}
	return exists, nil
}

// Create inserts a title with its genre links and returns the new id.
// Only the IDs of t.Category and t.Genres are used. Rating starts empty.
func (r *Repo) Create(ctx context.Context, t domain.Title) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var categoryID *int64
	if t.Category != nil {
		categoryID = &t.Category.ID
	}

	var id int64
	err := q.QueryRow(ctx,
		`INSERT INTO titles (name, year, description, category_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		t.Name, t.Year, t.Description, categoryID,
	).Scan(&id)
	if err != nil {
		return 0, postgres.MapError(err, "title", t.Name)
	}

	genreIDs := make([]int64, len(t.Genres))
	for i, g := range t.Genres {
		genreIDs[i] = g.ID
	}
	if err := linkGenres(ctx, q, id, genreIDs); err != nil {
		return 0, postgres.MapError(err, "title", id)
	}

	return id, nil
}

// Update applies a partial update. A non-nil GenreIDs replaces the genre set.
func (r *Repo) Update(ctx context.Context, id int64, u domain.TitleUpdate) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	set := map[string]any{}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Year != nil {
		set["year"] = *u.Year
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.SetCategory {
		set["category_id"] = u.CategoryID
	}

	if len(set) > 0 {
		query, args, err := postgres.Builder.Update("titles").SetMap(set).Where(sq.Eq{"id": id}).ToSql()
		if err != nil {
			return postgres.MapError(err, "title", id)
		}
		tag, err := q.Exec(ctx, query, args...)
		if err != nil {
			return postgres.MapError(err, "title", id)
		}
		if tag.RowsAffected() == 0 {
			return postgres.MapError(pgx.ErrNoRows, "title", id)
		}
	} else {
		exists, err := r.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return postgres.MapError(pgx.ErrNoRows, "title", id)
		}
	}

	if u.GenreIDs != nil {
		if _, err := q.Exec(ctx, `DELETE FROM title_genres WHERE title_id = $1`, id); err != nil {
			return postgres.MapError(err, "title", id)
		}
		if err := linkGenres(ctx, q, id, u.GenreIDs); err != nil {
			return postgres.MapError(err, "title", id)
		}
	}

	return nil
}

// SetRating stores the aggregated rating. nil clears it.
func (r *Repo) SetRating(ctx context.Context, id int64, rating *float64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `UPDATE titles SET rating = $2 WHERE id = $1`, id, rating)
	if err != nil {
		return postgres.MapError(err, "title", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "title", id)
	}
	return nil
}

// Delete removes a title with its reviews and their comments.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM titles WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "title", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "title", id)
	}
	return nil
}

func linkGenres(ctx context.Context, q postgres.Querier, titleID int64, genreIDs []int64) error {
	if len(genreIDs) == 0 {
		return nil
	}
	_, err := q.Exec(ctx,
		`INSERT INTO title_genres (title_id, genre_id)
		 SELECT $1, unnest($2::bigint[])
		 ON CONFLICT DO NOTHING`,
		titleID, genreIDs,
	)
	return err
}

func (r *Repo) query(ctx context.Context, q postgres.Querier, query string, args ...any) ([]domain.Title, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Title, error) {
		var (
			t                domain.Title
			catID            *int64
			catName, catSlug *string
		)
		if err := row.Scan(&t.ID, &t.Name, &t.Year, &t.Description, &t.Rating, &catID, &catName, &catSlug); err != nil {
			return domain.Title{}, err
		}
		if catID != nil {
			t.Category = &domain.Category{ID: *catID, Name: *catName, Slug: *catSlug}
		}
		t.Genres = []domain.Genre{}
		return t, nil
	})
}

// attachGenres loads genres for all titles with one query.
func (r *Repo) attachGenres(ctx context.Context, q postgres.Querier, titles []domain.Title) error {
	if len(titles) == 0 {
		return nil
	}

	ids := make([]int64, len(titles))
	index := make(map[int64]int, len(titles))
	for i, t := range titles {
		ids[i] = t.ID
		index[t.ID] = i
	}

	rows, err := q.Query(ctx,
		`SELECT tg.title_id, g.id, g.name, g.slug
		 FROM title_genres tg
		 JOIN genres g ON g.id = tg.genre_id
		 WHERE tg.title_id = ANY($1)
		 ORDER BY g.name, g.id`,
		ids,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			titleID int64
			g       domain.Genre
		)
		if err := rows.Scan(&titleID, &g.ID, &g.Name, &g.Slug); err != nil {
			return err
		}
		i := index[titleID]
		titles[i].Genres = append(titles[i].Genres, g)
	}
	return rows.Err()
}
