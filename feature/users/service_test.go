package users_test

import (
	"context"
	"errors"
	"testing"

	"social-network/core/apierror"
	"social-network/core/testutil"
	"social-network/feature/users"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T) *users.Service {
	svc := users.NewService(users.NewRepository(testutil.SQLite(t)), zap.NewNop())
	require.NoError(t, svc.Init(context.Background()))
	return svc
}

func apiCode(err error) string {
	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return ""
}

// staleEmailCheck reports every email as free so Create hits the unique index.
type staleEmailCheck struct {
	users.Repository
}

func (staleEmailCheck) EmailExists(context.Context, string) (bool, error) {
	return false, nil
}

func TestService_Create(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	u, err := svc.Create(ctx, users.CreateInput{
		Title:       users.TitleMr,
		FirstName:   "John",
		LastName:    "Doe",
		Email:       "john.doe@example.com",
		DateOfBirth: "1990-05-15",
	})
	require.NoError(t, err)
	assert.NoError(t, uuid.Validate(u.ID))
	assert.Equal(t, users.DefaultPicture, u.Picture)
	assert.False(t, u.RegisterDate.IsZero())
	require.NotNil(t, u.DateOfBirth)
	assert.Equal(t, 1990, u.DateOfBirth.Year())

	t.Run("DuplicateEmail", func(t *testing.T) {
		_, err := svc.Create(ctx, users.CreateInput{FirstName: "Jane", LastName: "Doe", Email: "john.doe@example.com"})
		assert.Equal(t, apierror.CodeBodyNotValid, apiCode(err))
		assert.Contains(t, err.(*apierror.Error).Details.([]apierror.FieldDetail)[0].Issue, "already exists")
	})

	t.Run("DuplicateEmailRace", func(t *testing.T) {
		repo := users.NewRepository(testutil.SQLite(t))
		racing := users.NewService(staleEmailCheck{repo}, zap.NewNop())
		require.NoError(t, racing.Init(ctx))

		in := users.CreateInput{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"}
		_, err := racing.Create(ctx, in)
		require.NoError(t, err)

		_, err = racing.Create(ctx, in)
		assert.Equal(t, apierror.CodeBodyNotValid, apiCode(err))
	})

	invalid := []struct {
		name  string
		input users.CreateInput
		field string
	}{
		{"ShortFirstName", users.CreateInput{FirstName: "J", LastName: "Doe", Email: "a@b.co"}, "firstName"},
		{"MissingLastName", users.CreateInput{FirstName: "John", Email: "a@b.co"}, "lastName"},
		{"BadEmail", users.CreateInput{FirstName: "John", LastName: "Doe", Email: "not-an-email"}, "email"},
		{"BadTitle", users.CreateInput{Title: "sir", FirstName: "John", LastName: "Doe", Email: "a@b.co"}, "title"},
		{"TooOld", users.CreateInput{FirstName: "John", LastName: "Doe", Email: "a@b.co", DateOfBirth: "1899-12-31"}, "dateOfBirth"},
		{"Future", users.CreateInput{FirstName: "John", LastName: "Doe", Email: "a@b.co", DateOfBirth: "2999-01-01"}, "dateOfBirth"},
		{"BadTimezone", users.CreateInput{FirstName: "John", LastName: "Doe", Email: "a@b.co", Location: &users.Location{
			Street: "1 Main Street", City: "Paris", State: "IDF", Country: "France", Timezone: "UTC",
		}}, "location.timezone"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.input)
			require.Equal(t, apierror.CodeBodyNotValid, apiCode(err))
			details := err.(*apierror.Error).Details.([]apierror.FieldDetail)
			assert.Equal(t, tt.field, details[0].Field)
		})
	}
}

func TestService_Update(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	u, err := svc.Create(ctx, users.CreateInput{FirstName: "Marie", LastName: "Dubois", Email: "marie@example.com"})
	require.NoError(t, err)

	t.Run("Partial", func(t *testing.T) {
		title := users.TitleDr
		got, err := svc.Update(ctx, u.ID, users.UpdateInput{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, users.TitleDr, got.Title)
		assert.Equal(t, "Marie", got.FirstName)
	})

	t.Run("Empty", func(t *testing.T) {
		got, err := svc.Update(ctx, u.ID, users.UpdateInput{})
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)
	})

	t.Run("Invalid", func(t *testing.T) {
		short := "M"
		_, err := svc.Update(ctx, u.ID, users.UpdateInput{FirstName: &short})
		assert.Equal(t, apierror.CodeBodyNotValid, apiCode(err))
	})

	t.Run("Missing", func(t *testing.T) {
		name := "Nobody"
		_, err := svc.Update(ctx, uuid.NewString(), users.UpdateInput{FirstName: &name})
		assert.Equal(t, apierror.CodeResourceNotFound, apiCode(err))

		_, err = svc.Update(ctx, uuid.NewString(), users.UpdateInput{})
		assert.Equal(t, apierror.CodeResourceNotFound, apiCode(err))
	})
}

func TestService_PreviewsAndExists(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	u, err := svc.Create(ctx, users.CreateInput{FirstName: "Sofia", LastName: "Garcia", Email: "sofia@example.com"})
	require.NoError(t, err)

	previews, err := svc.Previews(ctx, []string{u.ID, u.ID, "not-a-uuid", uuid.NewString()})
	require.NoError(t, err)
	require.Len(t, previews, 1)
	assert.Equal(t, "Sofia", previews[u.ID].FirstName)

	ok, err := svc.Exists(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Exists(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, svc.Delete(ctx, u.ID))
	assert.Equal(t, apierror.CodeResourceNotFound, apiCode(svc.Delete(ctx, u.ID)))
}
