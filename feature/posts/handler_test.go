package posts_test

import (
	"net/http"
	"strings"
	"testing"

	"social-network/core/apierror"
	"social-network/core/pagination"
	"social-network/core/testutil"
	"social-network/feature/posts"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostsApp(t *testing.T) (*fiber.App, *fixture) {
	f := newFixture(t)
	app := testutil.NewApp()
	feature := posts.NewFeature(f.posts, pagination.Options{DefaultLimit: 20, MaxLimit: 100})
	require.NoError(t, feature.Load(app.Group("/api/v1")))
	return app, f
}

func TestHandler_CreateAndGet(t *testing.T) {
	app, f := newPostsApp(t)
	text := strings.Repeat("Just discovered an amazing new tech stack! ", 3)

	resp := testutil.Request(t, app, "POST", "/api/v1/posts", map[string]any{
		"text":  text,
		"image": "https://picsum.photos/800/600",
		"likes": 3,
		"tags":  []string{"technology", "go"},
		"owner": f.owner.ID,
		"link":  "https://example.com/article/1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created posts.View
	testutil.Decode(t, resp, &created)
	assert.Equal(t, text, created.Text)
	assert.Equal(t, f.owner.ID, created.Owner.ID)
	assert.Equal(t, "http://example.com/api/v1/comments?post="+created.ID, created.Links["comments"].Href)
	assert.Equal(t, "http://example.com/api/v1/users/"+f.owner.ID, created.Links["owner"].Href)

	resp = testutil.Request(t, app, "GET", "/api/v1/posts/"+created.ID, nil, "Accept-Language", "fr")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got posts.View
	testutil.Decode(t, resp, &got)
	assert.Contains(t, got.PublishDate, " à ")
	require.NotNil(t, got.Link)

	t.Run("ListTruncatesText", func(t *testing.T) {
		resp := testutil.Request(t, app, "GET", "/api/v1/posts?search=TECH", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var page pagination.Response[posts.Preview]
		testutil.Decode(t, resp, &page)
		require.Len(t, page.Data, 1)
		assert.Len(t, []rune(page.Data[0].Text), posts.PreviewTextLength)
		assert.Equal(t, "http://example.com/api/v1/posts?page=1&limit=20&sort_by=publishDate&sort_order=desc&search=TECH", page.Links["self"].Href)
	})

	t.Run("ByTag", func(t *testing.T) {
		resp := testutil.Request(t, app, "GET", "/api/v1/posts/tag/go?sort_by=likes", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var page pagination.Response[posts.Preview]
		testutil.Decode(t, resp, &page)
		assert.EqualValues(t, 1, page.Total)
		assert.Equal(t, "http://example.com/api/v1/posts/tag/go?page=1&limit=20&sort_by=likes&sort_order=desc", page.Links["first"].Href)

		resp = testutil.Request(t, app, "GET", "/api/v1/posts/tag/unknown", nil)
		testutil.Decode(t, resp, &page)
		assert.EqualValues(t, 0, page.Total)
		assert.Equal(t, "http://example.com/api/v1/posts/tag/unknown?page=1&limit=20&sort_by=publishDate&sort_order=desc", page.Links["last"].Href)
	})

	t.Run("ByUser", func(t *testing.T) {
		resp := testutil.Request(t, app, "GET", "/api/v1/posts/user/"+f.owner.ID, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "1", resp.Header.Get("X-Total-Count"))

		resp = testutil.Request(t, app, "GET", "/api/v1/posts/user/not-an-id", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "0", resp.Header.Get("X-Total-Count"))
	})

	t.Run("UpdateAndDelete", func(t *testing.T) {
		resp := testutil.Request(t, app, "PUT", "/api/v1/posts/"+created.ID, map[string]any{"likes": 10})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var updated posts.View
		testutil.Decode(t, resp, &updated)
		assert.Equal(t, 10, updated.Likes)

		resp = testutil.Request(t, app, "DELETE", "/api/v1/posts/"+created.ID, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var out posts.DeleteResponse
		testutil.Decode(t, resp, &out)
		assert.Equal(t, "Post deleted successfully", out.Message)
	})
}

func TestHandler_Errors(t *testing.T) {
	app, _ := newPostsApp(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		code   string
	}{
		{"InvalidID", "GET", "/api/v1/posts/abc", nil, 400, apierror.CodeParamsNotValid},
		{"UnknownID", "GET", "/api/v1/posts/" + uuid.NewString(), nil, 404, apierror.CodeResourceNotFound},
		{"BadSort", "GET", "/api/v1/posts?sort_by=text", nil, 400, apierror.CodeParamsNotValid},
		{"BadOrder", "GET", "/api/v1/posts?sort_order=up", nil, 400, apierror.CodeParamsNotValid},
		{"UnknownOwner", "POST", "/api/v1/posts", map[string]any{"text": "Hello world", "image": "i", "owner": uuid.NewString()}, 400, apierror.CodeBodyNotValid},
		{"UpdateUnknown", "PUT", "/api/v1/posts/" + uuid.NewString(), map[string]any{"likes": 1}, 404, apierror.CodeResourceNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := testutil.Request(t, app, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
			var env apierror.Envelope
			testutil.Decode(t, resp, &env)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}
