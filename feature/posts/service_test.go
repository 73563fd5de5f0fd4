package posts_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"social-network/core/apierror"
	"social-network/core/pagination"
	"social-network/core/testutil"
	"social-network/feature/posts"
	"social-network/feature/users"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	users *users.Service
	posts *posts.Service
	owner *users.User
}

func newFixture(t *testing.T) *fixture {
	ctx := context.Background()
	h := testutil.SQLite(t)

	userSvc := users.NewService(users.NewRepository(h), zap.NewNop())
	require.NoError(t, userSvc.Init(ctx))
	postSvc := posts.NewService(posts.NewRepository(h), userSvc, zap.NewNop())
	require.NoError(t, postSvc.Init(ctx))

	owner, err := userSvc.Create(ctx, users.CreateInput{FirstName: "John", LastName: "Doe", Email: "john@example.com"})
	require.NoError(t, err)
	return &fixture{users: userSvc, posts: postSvc, owner: owner}
}

func apiCode(err error) string {
	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return ""
}

func TestService_Create(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var notified int
	f.posts.OnTagsChanged(func() { notified++ })

	it, err := f.posts.Create(ctx, posts.CreateInput{Text: "Hello world!", Image: "img.jpg", Owner: f.owner.ID})
	require.NoError(t, err)
	assert.Equal(t, 0, it.Likes)
	assert.Equal(t, []string{}, it.Tags)
	assert.Equal(t, "John", it.Owner.FirstName)
	assert.False(t, it.PublishDate.IsZero())
	assert.Equal(t, 1, notified)

	negative := -1
	short := "abc"
	invalid := []struct {
		name  string
		input posts.CreateInput
		field string
	}{
		{"ShortText", posts.CreateInput{Text: "hi", Image: "i", Owner: f.owner.ID}, "text"},
		{"LongText", posts.CreateInput{Text: strings.Repeat("x", 1001), Image: "i", Owner: f.owner.ID}, "text"},
		{"MissingImage", posts.CreateInput{Text: "Hello world", Owner: f.owner.ID}, "image"},
		{"NegativeLikes", posts.CreateInput{Text: "Hello world", Image: "i", Likes: &negative, Owner: f.owner.ID}, "likes"},
		{"ShortLink", posts.CreateInput{Text: "Hello world", Image: "i", Link: &short, Owner: f.owner.ID}, "link"},
		{"MissingOwner", posts.CreateInput{Text: "Hello world", Image: "i"}, "owner"},
		{"UnknownOwner", posts.CreateInput{Text: "Hello world", Image: "i", Owner: uuid.NewString()}, "owner"},
		{"MalformedOwner", posts.CreateInput{Text: "Hello world", Image: "i", Owner: "42"}, "owner"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.posts.Create(ctx, tt.input)
			require.Equal(t, apierror.CodeBodyNotValid, apiCode(err))
			assert.Equal(t, tt.field, err.(*apierror.Error).Details.([]apierror.FieldDetail)[0].Field)
		})
	}
}

func TestService_OrphanedPosts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	other, err := f.users.Create(ctx, users.CreateInput{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"})
	require.NoError(t, err)

	kept, err := f.posts.Create(ctx, posts.CreateInput{Text: "Still here", Image: "i", Owner: f.owner.ID})
	require.NoError(t, err)
	orphan, err := f.posts.Create(ctx, posts.CreateInput{Text: "Owner is gone", Image: "i", Owner: other.ID})
	require.NoError(t, err)

	require.NoError(t, f.users.Delete(ctx, other.ID))

	items, total, err := f.posts.List(ctx, posts.Filter{}, pagination.Params{Page: 1, Limit: 10, SortBy: posts.SortPublishDate, SortOrder: pagination.Desc})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, items, 1)
	assert.Equal(t, kept.ID, items[0].ID)

	_, err = f.posts.Get(ctx, orphan.ID)
	require.Equal(t, apierror.CodeResourceNotFound, apiCode(err))
	assert.Equal(t, "User not found", err.(*apierror.Error).Message)
}

func TestService_ListMalformedOwner(t *testing.T) {
	f := newFixture(t)
	items, total, err := f.posts.List(context.Background(), posts.Filter{OwnerID: "not-a-uuid"}, pagination.Params{Page: 1, Limit: 10, SortBy: posts.SortPublishDate})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, total)
}

func TestService_UpdateAndDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	it, err := f.posts.Create(ctx, posts.CreateInput{Text: "Original text", Image: "i", Tags: []string{"a"}, Owner: f.owner.ID})
	require.NoError(t, err)

	text := "Edited text"
	got, err := f.posts.Update(ctx, it.ID, posts.UpdateInput{Text: &text})
	require.NoError(t, err)
	assert.Equal(t, "Edited text", got.Text)
	assert.Equal(t, []string{"a"}, got.Tags)

	got, err = f.posts.Update(ctx, it.ID, posts.UpdateInput{})
	require.NoError(t, err)
	assert.Equal(t, "Edited text", got.Text)

	short := "no"
	_, err = f.posts.Update(ctx, it.ID, posts.UpdateInput{Text: &short})
	assert.Equal(t, apierror.CodeBodyNotValid, apiCode(err))

	_, err = f.posts.Update(ctx, uuid.NewString(), posts.UpdateInput{Text: &text})
	assert.Equal(t, apierror.CodeResourceNotFound, apiCode(err))

	ok, err := f.posts.Exists(ctx, it.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, f.posts.Delete(ctx, it.ID))
	assert.Equal(t, apierror.CodeResourceNotFound, apiCode(f.posts.Delete(ctx, it.ID)))

	ok, err = f.posts.Exists(ctx, it.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
