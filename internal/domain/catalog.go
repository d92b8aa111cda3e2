package domain

import (
	"math"
	"regexp"
)

const (
	MaxTaxonNameLength = 256
	MaxSlugLength      = 50
	MaxTitleNameLength = 256

	// MinTitleYear is the lowest year the int4 year column holds.
	MinTitleYear = math.MinInt32
)

var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

// IsValidSlug reports whether s is a non-empty slug of letters, digits, hyphens and underscores.
func IsValidSlug(s string) bool {
	return len(s) <= MaxSlugLength && slugPattern.MatchString(s)
}

// Category groups titles by kind (film, book, music...).
type Category struct {
	ID   int64
	Name string
	Slug string
}

// Genre classifies titles; a title may have many genres.
type Genre struct {
	ID   int64
	Name string
	Slug string
}

// Title is a rated creative work.
type Title struct {
	ID          int64
	Name        string
	Year        int
	Description *string
	Category    *Category
	Genres      []Genre
	// Rating is the mean review score; nil while the title has no reviews.
	Rating *float64
}

// DisplayRating rounds the rating to one decimal place for presentation.
func (t *Title) DisplayRating() *float64 {
	if t.Rating == nil {
		return nil
	}
	r := math.Round(*t.Rating*10) / 10
	return &r
}

// TitleFilter narrows a title listing. Empty fields do not filter.
type TitleFilter struct {
	CategorySlug string
	GenreSlug    string
	// Name matches as a case-insensitive substring.
	Name string
	Year *int
}

// TitleUpdate holds a partial title update. Nil fields are left unchanged.
type TitleUpdate struct {
	Name        *string
	Year        *int
	Description *string
	// CategoryID is applied only when SetCategory is true; nil clears the category.
	CategoryID  *int64
	SetCategory bool
	// GenreIDs replaces the genre set when non-nil.
	GenreIDs []int64
}
