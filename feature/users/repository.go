package users

import (
	"context"

	"social-network/core/database"
	"social-network/core/pagination"
)

// Tables are the SQL tables owned by this feature.
var Tables = []string{"users"}

// Repository persists users.
type Repository interface {
	// Init migrates tables or creates indexes.
	Init(ctx context.Context) error
	List(ctx context.Context, filter Filter, page pagination.Params) ([]User, int64, error)
	// Get returns database.ErrNotFound when no user has the id.
	Get(ctx context.Context, id string) (*User, error)
	// GetMany returns the users that exist among ids, in no particular order.
	GetMany(ctx context.Context, ids []string) ([]User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, u *User) error
	// Update applies changes and returns the stored user, or database.ErrNotFound.
	Update(ctx context.Context, id string, changes Changes) (*User, error)
	// Delete returns database.ErrNotFound when no user has the id.
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
