package comments_test

import (
	"context"
	"testing"
	"time"

	"social-network/core/database"
	"social-network/core/pagination"
	"social-network/core/testutil"
	"social-network/feature/comments"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRepository(t *testing.T, repo comments.Repository) {
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	post := uuid.NewString()
	otherPost := uuid.NewString()
	owner := uuid.NewString()
	base := time.Date(2024, 5, 10, 18, 30, 0, 0, time.UTC)

	first := comments.Comment{ID: uuid.NewString(), Message: "Great post!", OwnerID: owner, PostID: post, PublishDate: base}
	second := comments.Comment{ID: uuid.NewString(), Message: "Thanks for sharing", OwnerID: uuid.NewString(), PostID: post, PublishDate: base.Add(time.Minute)}
	third := comments.Comment{ID: uuid.NewString(), Message: "Love it", OwnerID: owner, PostID: otherPost, PublishDate: base.Add(2 * time.Minute)}
	for _, c := range []*comments.Comment{&first, &second, &third} {
		require.NoError(t, repo.Create(ctx, c))
	}

	newest := pagination.Params{Page: 1, Limit: 10, SortBy: comments.SortPublishDate, SortOrder: pagination.Desc}

	t.Run("Get", func(t *testing.T) {
		got, err := repo.Get(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "Great post!", got.Message)
		assert.Equal(t, post, got.PostID)
		assert.True(t, base.Equal(got.PublishDate))

		_, err = repo.Get(ctx, uuid.NewString())
		assert.ErrorIs(t, err, database.ErrNotFound)
	})

	t.Run("List", func(t *testing.T) {
		got, total, err := repo.List(ctx, comments.Filter{}, newest)
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		assert.Equal(t, []string{third.ID, second.ID, first.ID}, ids(got))

		got, total, err = repo.List(ctx, comments.Filter{PostID: post}, pagination.Params{Page: 1, Limit: 10, SortBy: comments.SortPublishDate, SortOrder: pagination.Asc})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.Equal(t, []string{first.ID, second.ID}, ids(got))

		got, total, err = repo.List(ctx, comments.Filter{PostID: post, OwnerID: owner}, newest)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		assert.Equal(t, []string{first.ID}, ids(got))

		got, total, err = repo.List(ctx, comments.Filter{}, pagination.Params{Page: 2, Limit: 2, SortBy: comments.SortPublishDate, SortOrder: pagination.Desc})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		assert.Equal(t, []string{first.ID}, ids(got))
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, second.ID))
		assert.ErrorIs(t, repo.Delete(ctx, second.ID), database.ErrNotFound)

		require.NoError(t, repo.DeleteAll(ctx))
		_, total, err := repo.List(ctx, comments.Filter{}, newest)
		require.NoError(t, err)
		assert.Zero(t, total)
	})
}

func ids(list []comments.Comment) []string {
	out := make([]string, len(list))
	for i, c := range list {
		out[i] = c.ID
	}
	return out
}

func TestSQLRepository(t *testing.T) {
	testRepository(t, comments.NewRepository(testutil.SQLite(t)))
}

func TestMongoRepository(t *testing.T) {
	testRepository(t, comments.NewRepository(testutil.Mongo(t)))
}
