package comments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"social-network/core/apierror"
	"social-network/core/database"
	"social-network/core/pagination"
	"social-network/core/validation"
	"social-network/feature/users"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OwnerLookup resolves user previews by id.
type OwnerLookup interface {
	Previews(ctx context.Context, ids []string) (map[string]users.Preview, error)
}

// PostLookup checks that a post exists.
type PostLookup interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// Item is a comment together with its owner's preview.
type Item struct {
	Comment
	Owner users.Preview
}

// Service implements the comment use cases.
type Service struct {
	repo   Repository
	owners OwnerLookup
	posts  PostLookup
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new comment service.
func NewService(repo Repository, owners OwnerLookup, posts PostLookup, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		owners: owners,
		posts:  posts,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Init prepares the storage.
func (s *Service) Init(ctx context.Context) error {
	return s.repo.Init(ctx)
}

// List returns a page of comments, newest first unless asked otherwise.
// A malformed post or user id matches nothing.
func (s *Service) List(ctx context.Context, filter Filter, page pagination.Params) ([]Item, int64, error) {
	if filter.PostID != "" && !validation.IsID(filter.PostID) {
		return nil, 0, nil
	}
	if filter.OwnerID != "" && !validation.IsID(filter.OwnerID) {
		return nil, 0, nil
	}

	found, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]string, len(found))
	for i, c := range found {
		ids[i] = c.OwnerID
	}
	owners, err := s.owners.Previews(ctx, ids)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to resolve comment owners: %w", err)
	}

	items := make([]Item, 0, len(found))
	for _, c := range found {
		owner, ok := owners[c.OwnerID]
		if !ok {
			s.logger.Debug("Skipping comment with missing owner", zap.String("comment_id", c.ID), zap.String("owner_id", c.OwnerID))
			continue
		}
		items = append(items, Item{Comment: c, Owner: owner})
	}
	return items, total, nil
}

// Get returns one comment with its owner.
func (s *Service) Get(ctx context.Context, id string) (*Item, error) {
	c, err := s.repo.Get(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, apierror.NotFound("Comment", id)
	}
	if err != nil {
		return nil, err
	}

	owners, err := s.owners.Previews(ctx, []string{c.OwnerID})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve comment owner: %w", err)
	}
	owner, ok := owners[c.OwnerID]
	if !ok {
		return nil, apierror.NotFound("User", c.OwnerID)
	}
	return &Item{Comment: *c, Owner: owner}, nil
}

// Create validates the input and stores a comment by an existing user on an existing post.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Item, error) {
	var errs validation.Errors
	errs.RequiredLength("message", in.Message, 2, 500)
	errs.Required("owner", in.Owner)
	errs.Required("post", in.Post)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	owners, err := s.owners.Previews(ctx, []string{in.Owner})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve comment owner: %w", err)
	}
	owner, ok := owners[in.Owner]
	if !ok {
		return nil, apierror.BodyField("owner", in.Owner, fmt.Sprintf("User with id %s not found", in.Owner))
	}

	exists, err := s.posts.Exists(ctx, in.Post)
	if err != nil {
		return nil, fmt.Errorf("failed to check post %s: %w", in.Post, err)
	}
	if !exists {
		return nil, apierror.BodyField("post", in.Post, fmt.Sprintf("Post with id %s not found", in.Post))
	}

	c := &Comment{
		ID:          uuid.NewString(),
		Message:     in.Message,
		OwnerID:     in.Owner,
		PostID:      in.Post,
		PublishDate: s.now(),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	s.logger.Info("Comment created", zap.String("comment_id", c.ID), zap.String("post_id", c.PostID))
	return &Item{Comment: *c, Owner: owner}, nil
}

// Delete removes a comment.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return apierror.NotFound("Comment", id)
	}
	return err
}

// Seed replaces all comments. It backs the seed command.
func (s *Service) Seed(ctx context.Context, comments []Comment) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear comments: %w", err)
	}
	for i := range comments {
		if err := s.repo.Create(ctx, &comments[i]); err != nil {
			return err
		}
	}
	return nil
}
