package users_test

import (
	"net/http"
	"testing"

	"social-network/core/apierror"
	"social-network/core/pagination"
	"social-network/core/testutil"
	"social-network/feature/users"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUsersApp(t *testing.T) *fiber.App {
	app := testutil.NewApp()
	feature := users.NewFeature(newService(t), pagination.Options{DefaultLimit: 20, MaxLimit: 100})
	require.NoError(t, feature.Load(app.Group("/api/v1")))
	return app
}

func createUser(t *testing.T, app *fiber.App, body map[string]any) users.View {
	resp := testutil.Request(t, app, "POST", "/api/v1/users", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var v users.View
	testutil.Decode(t, resp, &v)
	return v
}

func TestHandler_CRUD(t *testing.T) {
	app := newUsersApp(t)

	created := createUser(t, app, map[string]any{
		"title":       "miss",
		"firstName":   "Jane",
		"lastName":    "Smith",
		"email":       "jane.smith@example.com",
		"dateOfBirth": "1992-08-20T00:00:00Z",
	})
	assert.Equal(t, "Jane", created.FirstName)
	require.NotNil(t, created.DateOfBirth)
	assert.Equal(t, "08/20/1992 at 12:00 AM", *created.DateOfBirth)
	assert.Equal(t, "http://example.com/api/v1/users/"+created.ID, created.Links["self"].Href)
	assert.Equal(t, "http://example.com/api/v1/posts/user/"+created.ID, created.Links["posts"].Href)

	t.Run("GetFrench", func(t *testing.T) {
		resp := testutil.Request(t, app, "GET", "/api/v1/users/"+created.ID, nil, "Accept-Language", "fr-FR,fr;q=0.9")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var v users.View
		testutil.Decode(t, resp, &v)
		require.NotNil(t, v.DateOfBirth)
		assert.Equal(t, "20/08/1992 à 00:00", *v.DateOfBirth)
		assert.Contains(t, v.RegisterDate, " à ")
	})

	t.Run("Update", func(t *testing.T) {
		resp := testutil.Request(t, app, "PUT", "/api/v1/users/"+created.ID, map[string]any{"lastName": "Smithers", "email": "ignored@example.com"})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var v users.View
		testutil.Decode(t, resp, &v)
		assert.Equal(t, "Smithers", v.LastName)
		assert.Equal(t, "jane.smith@example.com", v.Email)
	})

	t.Run("Delete", func(t *testing.T) {
		resp := testutil.Request(t, app, "DELETE", "/api/v1/users/"+created.ID, nil, "Accept-Language", "fr")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var out users.DeleteResponse
		testutil.Decode(t, resp, &out)
		assert.Equal(t, created.ID, out.ID)
		assert.Equal(t, "Utilisateur supprimé avec succès", out.Message)

		resp = testutil.Request(t, app, "GET", "/api/v1/users/"+created.ID, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var env apierror.Envelope
		testutil.Decode(t, resp, &env)
		assert.Equal(t, apierror.CodeResourceNotFound, env.Error.Code)
		assert.Equal(t, "User not found", env.Error.Message)
	})
}

func TestHandler_List(t *testing.T) {
	app := newUsersApp(t)
	for _, u := range []map[string]any{
		{"firstName": "John", "lastName": "Doe", "email": "john@example.com", "title": "mr"},
		{"firstName": "Jane", "lastName": "Smith", "email": "jane@example.com", "title": "miss"},
		{"firstName": "Ahmed", "lastName": "Hassan", "email": "ahmed@example.com", "title": "mr"},
	} {
		createUser(t, app, u)
	}

	resp := testutil.Request(t, app, "GET", "/api/v1/users?limit=2&title=mr", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "2", resp.Header.Get("X-Total-Count"))
	assert.Equal(t, "1", resp.Header.Get("X-Page"))
	assert.Equal(t, "2", resp.Header.Get("X-Limit"))

	var page pagination.Response[users.Preview]
	testutil.Decode(t, resp, &page)
	assert.EqualValues(t, 2, page.Total)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "Ahmed", page.Data[0].FirstName)
	assert.NotEmpty(t, page.Data[0].Links["self"].Href)
	assert.Equal(t, "http://example.com/api/v1/users?page=1&limit=2&sort_by=registerDate&sort_order=desc&title=mr", page.Links["self"].Href)
	assert.NotContains(t, page.Links, "next")

	resp = testutil.Request(t, app, "GET", "/api/v1/users?search=SMI", nil)
	testutil.Decode(t, resp, &page)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Jane", page.Data[0].FirstName)
}

func TestHandler_Errors(t *testing.T) {
	app := newUsersApp(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		code   string
	}{
		{"InvalidID", "GET", "/api/v1/users/123", nil, 400, apierror.CodeParamsNotValid},
		{"UnknownID", "GET", "/api/v1/users/" + uuid.NewString(), nil, 404, apierror.CodeResourceNotFound},
		{"BadLimit", "GET", "/api/v1/users?limit=500", nil, 400, apierror.CodeParamsNotValid},
		{"BadSort", "GET", "/api/v1/users?sort_by=email", nil, 400, apierror.CodeParamsNotValid},
		{"MalformedBody", "POST", "/api/v1/users", `{"firstName":`, 400, apierror.CodeBodyNotValid},
		{"InvalidBody", "POST", "/api/v1/users", map[string]any{"firstName": "J"}, 400, apierror.CodeBodyNotValid},
		{"DeleteUnknown", "DELETE", "/api/v1/users/" + uuid.NewString(), nil, 404, apierror.CodeResourceNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := testutil.Request(t, app, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
			var env apierror.Envelope
			testutil.Decode(t, resp, &env)
			assert.Equal(t, tt.code, env.Error.Code)
			assert.Equal(t, tt.status, env.Error.StatusCode)
		})
	}
}
