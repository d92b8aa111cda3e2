// Package comment implements the Comment repository using PostgreSQL.
package comment

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

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new comment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type row struct {
	ID       int64     `db:"id"`
	ReviewID int64     `db:"review_id"`
	AuthorID uuid.UUID `db:"author_id"`
	Author   string    `db:"author"`
	Text     string    `db:"text"`
	PubDate  time.Time `db:"pub_date"`
}

func (r row) toDomain() domain.Comment {
	return domain.Comment{
		ID:       r.ID,
		ReviewID: r.ReviewID,
		AuthorID: r.AuthorID,
		Author:   r.Author,
		Text:     r.Text,
		PubDate:  r.PubDate,
	}
}

func selectComments() sq.SelectBuilder {
	return postgres.Builder.
		Select("c.id", "c.review_id", "c.author_id", "u.username AS author", "c.text", "c.pub_date").
		From("comments c").
		Join("users u ON u.id = c.author_id")
}

// List returns a page of the review's comments ordered by id.
func (r *Repo) List(ctx context.Context, reviewID int64, page domain.PageRequest) (domain.Page[domain.Comment], error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM comments WHERE review_id = $1`, reviewID).Scan(&total); err != nil {
		return domain.Page[domain.Comment]{}, postgres.MapError(err, "comment", fmt.Sprintf("review %d", reviewID))
	}

	query, args, err := selectComments().
		Where(sq.Eq{"c.review_id": reviewID}).
		OrderBy("c.id").
		Limit(uint64(page.Size)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return domain.Page[domain.Comment]{}, postgres.MapError(err, "comment", "list")
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return domain.Page[domain.Comment]{}, postgres.MapError(err, "comment", "list")
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[row])
	if err != nil {
		return domain.Page[domain.Comment]{}, postgres.MapError(err, "comment", "list")
	}

	items := make([]domain.Comment, len(collected))
	for i, c := range collected {
		items[i] = c.toDomain()
	}
	return domain.Page[domain.Comment]{Items: items, Total: total}, nil
}

// Get returns a comment of the given review. A comment on another review is not found.
func (r *Repo) Get(ctx context.Context, reviewID, id int64) (*domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := selectComments().Where(sq.Eq{"c.id": id, "c.review_id": reviewID}).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "comment", id)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "comment", id)
	}
	got, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[row])
	if err != nil {
		return nil, postgres.MapError(err, "comment", id)
	}

	c := got.toDomain()
	return &c, nil
}

// Create inserts a comment.
func (r *Repo) Create(ctx context.Context, c domain.Comment) (*domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	err := q.QueryRow(ctx,
		`INSERT INTO comments (review_id, author_id, text) VALUES ($1, $2, $3) RETURNING id, pub_date`,
		c.ReviewID, c.AuthorID, c.Text,
	).Scan(&c.ID, &c.PubDate)
	if err != nil {
		return nil, postgres.MapError(err, "comment", fmt.Sprintf("review %d", c.ReviewID))
	}
	return &c, nil
}

// UpdateText replaces the comment text.
func (r *Repo) UpdateText(ctx context.Context, id int64, text string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `UPDATE comments SET text = $2 WHERE id = $1`, id, text)
	if err != nil {
		return postgres.MapError(err, "comment", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "comment", id)
	}
	return nil
}

// Delete removes a comment.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "comment", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "comment", id)
	}
	return nil
}
