package comments

import (
	"time"

	"social-network/core/hateoas"
	"social-network/feature/users"
)

// SortPublishDate is the only sortable field.
const SortPublishDate = "publishDate"

// Comment is a stored comment on a post.
type Comment struct {
	ID          string
	Message     string
	OwnerID     string
	PostID      string
	PublishDate time.Time
}

// View is the representation of a comment. Dates stay in ISO-8601.
type View struct {
	ID          string        `json:"id"`
	Message     string        `json:"message"`
	Owner       users.Preview `json:"owner"`
	Post        string        `json:"post"`
	PublishDate time.Time     `json:"publishDate"`
	Links       hateoas.Links `json:"_links"`
}

// CreateInput is the body of POST /comments.
type CreateInput struct {
	Message string `json:"message"`
	Owner   string `json:"owner"`
	Post    string `json:"post"`
}

// Filter narrows the comment list. Empty fields are ignored.
type Filter struct {
	PostID  string
	OwnerID string
}

// DeleteResponse confirms a deletion.
type DeleteResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
