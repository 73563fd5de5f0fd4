package posts

import (
	"time"

	"social-network/core/hateoas"
	"social-network/feature/users"
)

// PreviewTextLength is the number of characters kept in list previews.
const PreviewTextLength = 50

// Sortable fields of the post list.
const (
	SortPublishDate = "publishDate"
	SortLikes       = "likes"
)

// SortFields lists the accepted sort_by values, default first.
var SortFields = []string{SortPublishDate, SortLikes}

// Post is a stored post. OwnerID references a user.
type Post struct {
	ID          string
	Text        string
	Image       string
	Likes       int
	Link        *string
	Tags        []string
	OwnerID     string
	PublishDate time.Time
}

// Preview is the list representation of a post.
type Preview struct {
	ID          string        `json:"id"`
	Text        string        `json:"text"`
	Image       string        `json:"image"`
	Likes       int           `json:"likes"`
	Tags        []string      `json:"tags"`
	PublishDate string        `json:"publishDate"`
	Owner       users.Preview `json:"owner"`
	Links       hateoas.Links `json:"_links"`
}

// View is the full representation of a post.
type View struct {
	ID          string        `json:"id"`
	Text        string        `json:"text"`
	Image       string        `json:"image"`
	Likes       int           `json:"likes"`
	Link        *string       `json:"link"`
	Tags        []string      `json:"tags"`
	PublishDate string        `json:"publishDate"`
	Owner       users.Preview `json:"owner"`
	Links       hateoas.Links `json:"_links"`
}

// CreateInput is the body of POST /posts.
type CreateInput struct {
	Text  string   `json:"text"`
	Image string   `json:"image"`
	Likes *int     `json:"likes"`
	Tags  []string `json:"tags"`
	Owner string   `json:"owner"`
	Link  *string  `json:"link"`
}

// UpdateInput is the body of PUT /posts/:id. The owner cannot change.
type UpdateInput struct {
	Text  *string  `json:"text"`
	Image *string  `json:"image"`
	Likes *int     `json:"likes"`
	Tags  []string `json:"tags"`
	Link  *string  `json:"link"`
}

// Empty reports whether nothing would change.
func (in UpdateInput) Empty() bool {
	return in.Text == nil && in.Image == nil && in.Likes == nil && in.Tags == nil && in.Link == nil
}

// Apply copies the set fields onto p.
func (in UpdateInput) Apply(p *Post) {
	if in.Text != nil {
		p.Text = *in.Text
	}
	if in.Image != nil {
		p.Image = *in.Image
	}
	if in.Likes != nil {
		p.Likes = *in.Likes
	}
	if in.Tags != nil {
		p.Tags = in.Tags
	}
	if in.Link != nil {
		p.Link = in.Link
	}
}

// Filter narrows the post list. Empty fields are ignored.
type Filter struct {
	Search  string
	OwnerID string
	Tag     string
}

// DeleteResponse confirms a deletion.
type DeleteResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
