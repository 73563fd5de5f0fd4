package comments

import (
	"context"

	"social-network/core/database"
	"social-network/core/pagination"
)

// Tables are the SQL tables owned by this feature.
var Tables = []string{"comments"}

// Repository persists comments.
type Repository interface {
	Init(ctx context.Context) error
	List(ctx context.Context, filter Filter, page pagination.Params) ([]Comment, int64, error)
	// Get returns database.ErrNotFound when no comment has the id.
	Get(ctx context.Context, id string) (*Comment, error)
	Create(ctx context.Context, c *Comment) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

// NewRepository returns the repository for the handle's backend.
func NewRepository(h *database.Handle) Repository {
	if h.IsMongo() {
		return NewMongoRepository(h.Mongo)
	}
	return NewSQLRepository(h.SQL)
}
