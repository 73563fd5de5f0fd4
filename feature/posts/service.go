package posts

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

// Item is a post together with its owner's preview.
type Item struct {
	Post
	Owner users.Preview
}

// Service implements the post use cases.
type Service struct {
	repo   Repository
	owners OwnerLookup
	logger *zap.Logger
	now    func() time.Time

	tagsChanged func()
}

// NewService creates a new post service.
func NewService(repo Repository, owners OwnerLookup, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		owners: owners,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// OnTagsChanged registers fn to run after any write that may change the tag set.
func (s *Service) OnTagsChanged(fn func()) {
	s.tagsChanged = fn
}

func (s *Service) notifyTags() {
	if s.tagsChanged != nil {
		s.tagsChanged()
	}
}

// Init prepares the storage.
func (s *Service) Init(ctx context.Context) error {
	return s.repo.Init(ctx)
}

// List returns a page of posts. Posts whose owner no longer exists are left out
// of the page but still counted in the total. A malformed owner id matches nothing.
func (s *Service) List(ctx context.Context, filter Filter, page pagination.Params) ([]Item, int64, error) {
	if filter.OwnerID != "" && !validation.IsID(filter.OwnerID) {
		return nil, 0, nil
	}
	found, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, 0, err
	}
	items, err := s.withOwners(ctx, found)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *Service) withOwners(ctx context.Context, found []Post) ([]Item, error) {
	ids := make([]string, len(found))
	for i, p := range found {
		ids[i] = p.OwnerID
	}
	owners, err := s.owners.Previews(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve post owners: %w", err)
	}

	items := make([]Item, 0, len(found))
	for _, p := range found {
		owner, ok := owners[p.OwnerID]
		if !ok {
			s.logger.Debug("Skipping post with missing owner", zap.String("post_id", p.ID), zap.String("owner_id", p.OwnerID))
			continue
		}
		items = append(items, Item{Post: p, Owner: owner})
	}
	return items, nil
}

// Get returns one post with its owner.
func (s *Service) Get(ctx context.Context, id string) (*Item, error) {
	p, err := s.repo.Get(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, apierror.NotFound("Post", id)
	}
	if err != nil {
		return nil, err
	}
	return s.item(ctx, p)
}

func (s *Service) item(ctx context.Context, p *Post) (*Item, error) {
	owners, err := s.owners.Previews(ctx, []string{p.OwnerID})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve post owner: %w", err)
	}
	owner, ok := owners[p.OwnerID]
	if !ok {
		return nil, apierror.NotFound("User", p.OwnerID)
	}
	return &Item{Post: *p, Owner: owner}, nil
}

// Exists reports whether a post with id exists.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	if !validation.IsID(id) {
		return false, nil
	}
	_, err := s.repo.Get(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

// Tags returns the distinct tags across all posts.
func (s *Service) Tags(ctx context.Context) ([]string, error) {
	return s.repo.Tags(ctx)
}

// Create validates the input and stores a new post for an existing owner.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Item, error) {
	var errs validation.Errors
	errs.RequiredLength("text", in.Text, 6, 1000)
	errs.Required("image", in.Image)
	likes := 0
	if in.Likes != nil && errs.Min("likes", *in.Likes, 0) {
		likes = *in.Likes
	}
	if in.Link != nil {
		errs.Length("link", *in.Link, 6, 200)
	}
	errs.Required("owner", in.Owner)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	owners, err := s.owners.Previews(ctx, []string{in.Owner})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve post owner: %w", err)
	}
	owner, ok := owners[in.Owner]
	if !ok {
		return nil, apierror.BodyField("owner", in.Owner, fmt.Sprintf("User with id %s not found", in.Owner))
	}

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	p := &Post{
		ID:          uuid.NewString(),
		Text:        in.Text,
		Image:       in.Image,
		Likes:       likes,
		Link:        in.Link,
		Tags:        tags,
		OwnerID:     in.Owner,
		PublishDate: s.now(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.notifyTags()
	s.logger.Info("Post created", zap.String("post_id", p.ID), zap.String("owner_id", p.OwnerID))
	return &Item{Post: *p, Owner: owner}, nil
}

// Update applies a partial update. An empty update returns the current post.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*Item, error) {
	var errs validation.Errors
	if in.Text != nil {
		errs.Length("text", *in.Text, 6, 1000)
	}
	if in.Likes != nil {
		errs.Min("likes", *in.Likes, 0)
	}
	if in.Link != nil {
		errs.Length("link", *in.Link, 6, 200)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if in.Empty() {
		return s.Get(ctx, id)
	}

	p, err := s.repo.Update(ctx, id, in)
	if errors.Is(err, database.ErrNotFound) {
		return nil, apierror.NotFound("Post", id)
	}
	if err != nil {
		return nil, err
	}
	if in.Tags != nil {
		s.notifyTags()
	}
	return s.item(ctx, p)
}

// Delete removes a post. Its comments are kept.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return apierror.NotFound("Post", id)
	}
	if err != nil {
		return err
	}
	s.notifyTags()
	return nil
}

// Seed replaces all posts. It backs the seed command.
func (s *Service) Seed(ctx context.Context, posts []Post) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear posts: %w", err)
	}
	for i := range posts {
		if err := s.repo.Create(ctx, &posts[i]); err != nil {
			return err
		}
	}
	s.notifyTags()
	return nil
}
