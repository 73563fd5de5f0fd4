package posts

import (
	"context"

	"social-network/core/database"
	"social-network/core/pagination"
)

// Tables are the SQL tables owned by this feature.
var Tables = []string{"posts", "post_tags"}

// Repository persists posts.
type Repository interface {
	Init(ctx context.Context) error
	List(ctx context.Context, filter Filter, page pagination.Params) ([]Post, int64, error)
	// Get returns database.ErrNotFound when no post has the id.
	Get(ctx context.Context, id string) (*Post, error)
	Create(ctx context.Context, p *Post) error
	// Update applies the input and returns the stored post, or database.ErrNotFound.
	Update(ctx context.Context, id string, in UpdateInput) (*Post, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	// Tags returns the distinct tags of all posts in ascending order.
	Tags(ctx context.Context) ([]string, error)
}

// NewRepository returns the repository for the handle's backend.
func NewRepository(h *database.Handle) Repository {
	if h.IsMongo() {
		return NewMongoRepository(h.Mongo)
	}
	return NewSQLRepository(h.SQL)
}
