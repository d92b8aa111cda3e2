package rest

import (
	"bytes"
	"time"

	"github.com/goccy/go-json"

	"github.com/heartmarshall/yamdb-backend/internal/domain"
)

// nullableString distinguishes an absent JSON field (Set=false) from an
// explicit null (Set=true, Value=nil).
type nullableString struct {
	Set   bool
	Value *string
}

func (n *nullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

type taxonResponse struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func toCategoryResponse(c domain.Category) taxonResponse {
	return taxonResponse{Name: c.Name, Slug: c.Slug}
}

func toGenreResponse(g domain.Genre) taxonResponse {
	return taxonResponse{Name: g.Name, Slug: g.Slug}
}

type titleResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Year        int             `json:"year"`
	Rating      *float64        `json:"rating"`
	Description *string         `json:"description"`
	Genre       []taxonResponse `json:"genre"`
	Category    *taxonResponse  `json:"category"`
}

func toTitleResponse(t domain.Title) titleResponse {
	resp := titleResponse{
		ID:          t.ID,
		Name:        t.Name,
		Year:        t.Year,
		Rating:      t.DisplayRating(),
		Description: t.Description,
		Genre:       make([]taxonResponse, 0, len(t.Genres)),
	}
	for _, g := range t.Genres {
		resp.Genre = append(resp.Genre, toGenreResponse(g))
	}
	if t.Category != nil {
		c := toCategoryResponse(*t.Category)
		resp.Category = &c
	}
	return resp
}

type reviewResponse struct {
	ID      int64     `json:"id"`
	Text    string    `json:"text"`
	Author  string    `json:"author"`
	Score   int       `json:"score"`
	PubDate time.Time `json:"pub_date"`
}

func toReviewResponse(rv domain.Review) reviewResponse {
	return reviewResponse{
		ID:      rv.ID,
		Text:    rv.Text,
		Author:  rv.Author,
		Score:   rv.Score,
		PubDate: rv.PubDate.UTC(),
	}
}

type commentResponse struct {
	ID      int64     `json:"id"`
	Text    string    `json:"text"`
	Author  string    `json:"author"`
	PubDate time.Time `json:"pub_date"`
}

func toCommentResponse(c domain.Comment) commentResponse {
	return commentResponse{
		ID:      c.ID,
		Text:    c.Text,
		Author:  c.Author,
		PubDate: c.PubDate.UTC(),
	}
}

type userResponse struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
	Role      string `json:"role"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Bio:       u.Bio,
		Role:      u.Role.String(),
	}
}
