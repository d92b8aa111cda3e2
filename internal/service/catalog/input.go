package catalog

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/yamdb-backend/internal/domain"
)

// CreateTaxonInput holds the fields of a new category or genre.
type CreateTaxonInput struct {
	Name string
	Slug string
}

// Validate checks all fields and collects all errors.
func (i CreateTaxonInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > domain.MaxTaxonNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("max %d characters", domain.MaxTaxonNameLength)})
	}
	errs = append(errs, validateSlug("slug", i.Slug)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateSlug(field, slug string) []domain.FieldError {
	switch {
	case slug == "":
		return []domain.FieldError{{Field: field, Message: "required"}}
	case len(slug) > domain.MaxSlugLength:
		return []domain.FieldError{{Field: field, Message: fmt.Sprintf("max %d characters", domain.MaxSlugLength)}}
	case !domain.IsValidSlug(slug):
		return []domain.FieldError{{Field: field, Message: "only letters, digits, hyphens and underscores"}}
	}
	return nil
}

// CreateTitleInput holds the fields of a new title. Category and genres are
// referenced by slug.
type CreateTitleInput struct {
	Name         string
	Year         int
	Description  *string
	CategorySlug *string
	GenreSlugs   []string
}

// Validate checks all fields against the current year and collects all errors.
func (i CreateTitleInput) Validate(currentYear int) error {
	var errs []domain.FieldError

	errs = append(errs, validateTitleName(i.Name)...)
	errs = append(errs, validateYear(i.Year, currentYear)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateTitleInput holds a partial title update. Nil fields are left unchanged.
// A CategorySlug pointing to "" clears the category; a non-nil GenreSlugs
// replaces the genre set.
type UpdateTitleInput struct {
	ID           int64
	Name         *string
	Year         *int
	Description  *string
	CategorySlug *string
	GenreSlugs   *[]string
}

// Validate checks all fields against the current year and collects all errors.
func (i UpdateTitleInput) Validate(currentYear int) error {
	var errs []domain.FieldError

	if i.Name != nil {
		errs = append(errs, validateTitleName(*i.Name)...)
	}
	if i.Year != nil {
		errs = append(errs, validateYear(*i.Year, currentYear)...)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateTitleName(name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return []domain.FieldError{{Field: "name", Message: "required"}}
	}
	if utf8.RuneCountInString(name) > domain.MaxTitleNameLength {
		return []domain.FieldError{{Field: "name", Message: fmt.Sprintf("max %d characters", domain.MaxTitleNameLength)}}
	}
	return nil
}

func validateYear(year, currentYear int) []domain.FieldError {
	switch {
	case year > currentYear:
		return []domain.FieldError{{Field: "year", Message: "cannot be in the future"}}
	case year < domain.MinTitleYear:
		return []domain.FieldError{{Field: "year", Message: fmt.Sprintf("min %d", domain.MinTitleYear)}}
	}
	return nil
}
