package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/yamdb-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the plain user role.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return SeedUserWithRole(t, pool, domain.UserRoleUser)
}

// SeedUserWithRole creates a user with the given role and a unique username and email.
func SeedUserWithRole(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Username:  "user-" + suffix,
		Email:     "user-" + suffix + "@example.com",
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, email, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Username, user.Email, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedCategory creates a category with a unique slug.
func SeedCategory(t *testing.T, pool *pgxpool.Pool) domain.Category {
	t.Helper()

	suffix := uniqueSuffix()
	c := domain.Category{Name: "Category " + suffix, Slug: "cat-" + suffix}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO categories (name, slug) VALUES ($1, $2) RETURNING id`,
		c.Name, c.Slug,
	).Scan(&c.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}
	return c
}

// SeedGenre creates a genre with a unique slug.
func SeedGenre(t *testing.T, pool *pgxpool.Pool) domain.Genre {
	t.Helper()

	suffix := uniqueSuffix()
	g := domain.Genre{Name: "Genre " + suffix, Slug: "genre-" + suffix}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO genres (name, slug) VALUES ($1, $2) RETURNING id`,
		g.Name, g.Slug,
	).Scan(&g.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedGenre: %v", err)
	}
	return g
}

// SeedTitle creates a title in the given category (nil for none) linked to genres.
func SeedTitle(t *testing.T, pool *pgxpool.Pool, category *domain.Category, genres ...domain.Genre) domain.Title {
	t.Helper()
	ctx := context.Background()

	title := domain.Title{
		Name:     "Title " + uniqueSuffix(),
		Year:     2001,
		Category: category,
		Genres:   genres,
	}

	var categoryID *int64
	if category != nil {
		categoryID = &category.ID
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO titles (name, year, category_id) VALUES ($1, $2, $3) RETURNING id`,
		title.Name, title.Year, categoryID,
	).Scan(&title.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedTitle: %v", err)
	}

	for _, g := range genres {
		if _, err := pool.Exec(ctx,
			`INSERT INTO title_genres (title_id, genre_id) VALUES ($1, $2)`, title.ID, g.ID,
		); err != nil {
			t.Fatalf("testhelper: SeedTitle genre: %v", err)
		}
	}

	return title
}

// SeedReview creates a review without touching the title rating.
func SeedReview(t *testing.T, pool *pgxpool.Pool, titleID int64, author domain.User, score int) domain.Review {
	t.Helper()

	r := domain.Review{
		TitleID:  titleID,
		AuthorID: author.ID,
		Author:   author.Username,
		Text:     "review " + uniqueSuffix(),
		Score:    score,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO reviews (title_id, author_id, text, score) VALUES ($1, $2, $3, $4)
		 RETURNING id, pub_date`,
		r.TitleID, r.AuthorID, r.Text, r.Score,
	).Scan(&r.ID, &r.PubDate)
	if err != nil {
		t.Fatalf("testhelper: SeedReview: %v", err)
	}
	return r
}

// SeedComment creates a comment on a review.
func SeedComment(t *testing.T, pool *pgxpool.Pool, reviewID int64, author domain.User) domain.Comment {
	t.Helper()

	c := domain.Comment{
		ReviewID: reviewID,
		AuthorID: author.ID,
		Author:   author.Username,
		Text:     "comment " + uniqueSuffix(),
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO comments (review_id, author_id, text) VALUES ($1, $2, $3) RETURNING id, pub_date`,
		c.ReviewID, c.AuthorID, c.Text,
	).Scan(&c.ID, &c.PubDate)
	if err != nil {
		t.Fatalf("testhelper: SeedComment: %v", err)
	}
	return c
}
