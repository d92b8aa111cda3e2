// Package review implements the Review repository using PostgreSQL.
package review

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/yamdb-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yamdb-backend/internal/domain"
)

// Repo provides review persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new review repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type row struct {
	ID       int64     `db:"id"`
	TitleID  int64     `db:"title_id"`
	AuthorID uuid.UUID `db:"author_id"`
	Author   string    `db:"author"`
	Text     string    `db:"text"`
	Score    int       `db:"score"`
	PubDate  time.Time `db:"pub_date"`
}

func (r row) toDomain() domain.Review {
	return domain.Review{
		ID:       r.ID,
		TitleID:  r.TitleID,
		AuthorID: r.AuthorID,
		Author:   r.Author,
		Text:     r.Text,
		Score:    r.Score,
		PubDate:  r.PubDate,
	}
}

func selectReviews() sq.SelectBuilder {
	return postgres.Builder.
		Select("r.id", "r.title_id", "r.author_id", "u.username AS author", "r.text", "r.score", "r.pub_date").
		From("reviews r").
		Join("users u ON u.id = r.author_id")
}

// List returns a page of the title's reviews ordered by id.
func (r *Repo) List(ctx context.Context, titleID int64, page domain.PageRequest) (domain.Page[domain.Review], error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM reviews WHERE title_id = $1`, titleID).Scan(&total); err != nil {
		return domain.Page[domain.Review]{}, postgres.MapError(err, "review", fmt.Sprintf("title %d", titleID))
	}

	query, args, err := selectReviews().
		Where(sq.Eq{"r.title_id": titleID}).
		OrderBy("r.id").
		Limit(uint64(page.Size)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return domain.Page[domain.Review]{}, postgres.MapError(err, "review", "list")
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return domain.Page[domain.Review]{}, postgres.MapError(err, "review", "list")
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[row])
	if err != nil {
		return domain.Page[domain.Review]{}, postgres.MapError(err, "review", "list")
	}

	items := make([]domain.Review, len(collected))
	for i, c := range collected {
		items[i] = c.toDomain()
	}
	return domain.Page[domain.Review]{Items: items, Total: total}, nil
}

// Get returns a review of the given title. A review of another title is not found.
func (r *Repo) Get(ctx context.Context, titleID, id int64) (*domain.Review, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := selectReviews().Where(sq.Eq{"r.id": id, "r.title_id": titleID}).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "review", id)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "review", id)
	}
	got, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[row])
	if err != nil {
		return nil, postgres.MapError(err, "review", id)
	}

	rv := got.toDomain()
	return &rv, nil
}

// ExistsByAuthor reports whether the author already reviewed the title.
func (r *Repo) ExistsByAuthor(ctx context.Context, titleID int64, authorID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM reviews WHERE title_id = $1 AND author_id = $2)`,
		titleID, authorID,
	).Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "review", authorID)
	}
	return exists, nil
}

// Create inserts a review. A second review by the same author on the same
// title yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, rv domain.Review) (*domain.Review, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	err := q.QueryRow(ctx,
		`INSERT INTO reviews (title_id, author_id, text, score) VALUES ($1, $2, $3, $4)
		 RETURNING id, pub_date`,
		rv.TitleID, rv.AuthorID, rv.Text, rv.Score,
	).Scan(&rv.ID, &rv.PubDate)
	if err != nil {
		return nil, postgres.MapError(err, "review", fmt.Sprintf("title %d", rv.TitleID))
	}
	return &rv, nil
}

// Update changes text and/or score. Nil fields are left unchanged.
func (r *Repo) Update(ctx context.Context, id int64, text *string, score *int) error {
	if text == nil && score == nil {
		return nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	upd := postgres.Builder.Update("reviews").Where(sq.Eq{"id": id})
	if text != nil {
		upd = upd.Set("text", *text)
	}
	if score != nil {
		upd = upd.Set("score", *score)
	}

	query, args, err := upd.ToSql()
	if err != nil {
		return postgres.MapError(err, "review", id)
	}
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "review", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "review", id)
	}
	return nil
}

// Delete removes a review and its comments.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "review", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "review", id)
	}
	return nil
}

// AverageScore returns the mean score of the title's reviews, or nil when it has none.
func (r *Repo) AverageScore(ctx context.Context, titleID int64) (*float64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var avg *float64
	if err := q.QueryRow(ctx, `SELECT avg(score)::double precision FROM reviews WHERE title_id = $1`, titleID).Scan(&avg); err != nil {
		return nil, postgres.MapError(err, "review", fmt.Sprintf("title %d", titleID))
	}
	return avg, nil
}
