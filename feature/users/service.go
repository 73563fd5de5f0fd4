package users

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"social-network/core/apierror"
	"social-network/core/database"
	"social-network/core/pagination"
	"social-network/core/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var timezonePattern = regexp.MustCompile(`^[+-]\d{1,2}:\d{2}$`)

var minDateOfBirth = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)

// Service implements the user use cases.
type Service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new user service.
func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger, now: func() time.Time { return time.Now().UTC() }}
}

// Init prepares the storage.
func (s *Service) Init(ctx context.Context) error {
	return s.repo.Init(ctx)
}

// List returns a page of users.
func (s *Service) List(ctx context.Context, filter Filter, page pagination.Params) ([]User, int64, error) {
	return s.repo.List(ctx, filter, page)
}

// Get returns one user or a RESOURCE_NOT_FOUND error.
func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.Get(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, apierror.NotFound("User", id)
	}
	return u, err
}

// Previews returns the previews of the users that exist among ids, keyed by id.
func (s *Service) Previews(ctx context.Context, ids []string) (map[string]Preview, error) {
	found, err := s.repo.GetMany(ctx, unique(ids))
	if err != nil {
		return nil, err
	}
	out := make(map[string]Preview, len(found))
	for _, u := range found {
		out[u.ID] = u.Preview()
	}
	return out, nil
}

// Exists reports whether a user with id exists.
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

// Create validates the input and stores a new user.
func (s *Service) Create(ctx context.Context, in CreateInput) (*User, error) {
	var errs validation.Errors
	validateTitle(&errs, in.Title)
	errs.RequiredLength("firstName", in.FirstName, 2, 50)
	errs.RequiredLength("lastName", in.LastName, 2, 50)
	if errs.Required("email", in.Email) {
		errs.Email("email", in.Email)
	}

	var dob *time.Time
	if in.DateOfBirth != "" {
		if t, ok := errs.Time("dateOfBirth", in.DateOfBirth); ok {
			if t.Before(minDateOfBirth) || t.After(s.now()) {
				errs.Add("dateOfBirth", in.DateOfBirth, "Date of birth must be between 1900-01-01 and now", "value_error")
			} else {
				dob = &t
			}
		}
	}
	validateLocation(&errs, in.Location)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	exists, err := s.repo.EmailExists(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, emailTaken(in.Email)
	}

	picture := DefaultPicture
	if in.Picture != nil {
		picture = *in.Picture
	}

	u := &User{
		ID:           uuid.NewString(),
		Title:        in.Title,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		DateOfBirth:  dob,
		RegisterDate: s.now(),
		Phone:        in.Phone,
		Picture:      picture,
		Location:     in.Location,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		// A concurrent create can win between EmailExists and Create
		if errors.Is(err, database.ErrDuplicate) {
			return nil, emailTaken(in.Email)
		}
		return nil, err
	}
	s.logger.Info("User created", zap.String("user_id", u.ID))
	return u, nil
}

// Update applies a partial update. An empty update returns the current user.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*User, error) {
	var errs validation.Errors
	changes := Changes{Title: in.Title, Phone: in.Phone, Picture: in.Picture, Location: in.Location}
	if in.Title != nil {
		validateTitle(&errs, *in.Title)
	}
	if in.FirstName != nil && errs.Length("firstName", *in.FirstName, 2, 50) {
		changes.FirstName = in.FirstName
	}
	if in.LastName != nil && errs.Length("lastName", *in.LastName, 2, 50) {
		changes.LastName = in.LastName
	}
	if in.DateOfBirth != nil {
		if t, ok := errs.Time("dateOfBirth", *in.DateOfBirth); ok {
			changes.DateOfBirth = &t
		}
	}
	validateLocation(&errs, in.Location)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if changes.Empty() {
		return s.Get(ctx, id)
	}

	u, err := s.repo.Update(ctx, id, changes)
	if errors.Is(err, database.ErrNotFound) {
		return nil, apierror.NotFound("User", id)
	}
	return u, err
}

// Delete removes a user. Posts and comments of the user are kept.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return apierror.NotFound("User", id)
	}
	return err
}

// Seed replaces all users. It backs the seed command.
func (s *Service) Seed(ctx context.Context, users []User) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear users: %w", err)
	}
	for i := range users {
		if err := s.repo.Create(ctx, &users[i]); err != nil {
			return err
		}
	}
	return nil
}

func validateTitle(errs *validation.Errors, t Title) {
	errs.OneOf("title", string(t), string(TitleMr), string(TitleMiss), string(TitleDr), string(TitleNone))
}

func validateLocation(errs *validation.Errors, loc *Location) {
	if loc == nil {
		return
	}
	errs.RequiredLength("location.street", loc.Street, 5, 100)
	errs.RequiredLength("location.city", loc.City, 2, 30)
	errs.RequiredLength("location.state", loc.State, 2, 30)
	errs.RequiredLength("location.country", loc.Country, 2, 30)
	if errs.Required("location.timezone", loc.Timezone) {
		errs.Pattern("location.timezone", loc.Timezone, timezonePattern)
	}
}

func unique(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || !validation.IsID(id) {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func emailTaken(email string) error {
	return apierror.BodyField("email", email, fmt.Sprintf("User with email %s already exists", email))
}
