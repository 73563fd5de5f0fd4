package pagination_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"social-network/core/apierror"
	"social-network/core/pagination"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var opts = pagination.Options{DefaultLimit: 20, MaxLimit: 100, SortFields: []string{"publishDate", "likes"}}

func newApp(captured *pagination.Params) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apierror.Handler(zap.NewNop())})
	app.Get("/items", func(c *fiber.Ctx) error {
		p, err := pagination.FromQuery(c, opts)
		if err != nil {
			return err
		}
		*captured = p
		return pagination.Send(c, "/items", p, []string{"a", "b"}, 42)
	})
	return app
}

func TestFromQuery(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		want   pagination.Params
		status int
	}{
		{"Defaults", "", pagination.Params{Page: 1, Limit: 20, SortBy: "publishDate", SortOrder: "desc"}, 200},
		{"Explicit", "?page=3&limit=5&sort_by=likes&sort_order=asc", pagination.Params{Page: 3, Limit: 5, SortBy: "likes", SortOrder: "asc"}, 200},
		{"PageZero", "?page=0", pagination.Params{}, 400},
		{"LimitTooBig", "?limit=101", pagination.Params{}, 400},
		{"LimitNotNumber", "?limit=ten", pagination.Params{}, 400},
		{"BadSort", "?sort_by=owner", pagination.Params{}, 400},
		{"BadOrder", "?sort_order=up", pagination.Params{}, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got pagination.Params
			app := newApp(&got)
			resp, err := app.Test(httptest.NewRequest("GET", "/items"+tt.query, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.status == 200 {
				assert.Equal(t, tt.want, got)
			} else {
				var env apierror.Envelope
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
				assert.Equal(t, apierror.CodeParamsNotValid, env.Error.Code)
			}
		})
	}
}

func TestSend(t *testing.T) {
	var got pagination.Params
	app := newApp(&got)

	resp, err := app.Test(httptest.NewRequest("GET", "/items?page=2&limit=10", nil))
	require.NoError(t, err)
	assert.Equal(t, "42", resp.Header.Get("X-Total-Count"))
	assert.Equal(t, "2", resp.Header.Get("X-Page"))
	assert.Equal(t, "10", resp.Header.Get("X-Limit"))

	var body pagination.Response[string]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []string{"a", "b"}, body.Data)
	assert.Equal(t, int64(42), body.Total)
	assert.Equal(t, "http://example.com/items?page=3&limit=10&sort_by=publishDate&sort_order=desc", body.Links["next"].Href)
	assert.Equal(t, "http://example.com/items?page=5&limit=10&sort_by=publishDate&sort_order=desc", body.Links["last"].Href)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 40, pagination.Params{Page: 3, Limit: 20}.Offset())
	assert.True(t, pagination.Params{SortOrder: "desc"}.Descending())
	assert.False(t, pagination.Params{SortOrder: "asc"}.Descending())
}
