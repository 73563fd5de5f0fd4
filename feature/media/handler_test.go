package media_test

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"social-network/core/apierror"
	"social-network/core/storage"
	"social-network/core/storage/mocks"
	"social-network/core/testutil"
	"social-network/feature/media"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMediaApp(t *testing.T, client *mocks.Client, cfg storage.Config) *fiber.App {
	app := testutil.NewApp()
	feature := media.NewFeature(media.NewService(client, cfg, zap.NewNop()))
	require.NoError(t, feature.Load(app.Group("/api/v1")))
	return app
}

func uploadRequest(t *testing.T, filename, contentType string, content []byte) *http.Request {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if filename != "" {
		h := make(map[string][]string)
		h["Content-Disposition"] = []string{`form-data; name="file"; filename="` + filename + `"`}
		h["Content-Type"] = []string{contentType}
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	} else {
		require.NoError(t, w.WriteField("other", "value"))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/media", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestHandler_Upload(t *testing.T) {
	cfg := storage.Config{Enabled: true, Bucket: "social-network", MaxUploadBytes: 16}
	content := []byte("PNGDATA")

	t.Run("Success", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, "social-network", mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, media.Prefix) && strings.HasSuffix(key, ".png")
		}), mock.Anything, int64(len(content)), minio.PutObjectOptions{ContentType: "image/png"}).
			Return(minio.UploadInfo{}, nil)
		app := newMediaApp(t, client, cfg)

		resp, err := app.Test(uploadRequest(t, "Sunset.PNG", "image/png", content), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var out media.Object
		testutil.Decode(t, resp, &out)
		assert.True(t, strings.HasPrefix(out.Key, "media/"))
		assert.Equal(t, int64(len(content)), out.Size)
		assert.Equal(t, "image/png", out.ContentType)
		assert.Equal(t, "http://example.com/api/v1/"+out.Key, out.URL)
		client.AssertExpectations(t)
	})

	t.Run("PublicURL", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, nil)
		public := cfg
		public.PublicURL = "https://cdn.example.com/social-network/"
		app := newMediaApp(t, client, public)

		resp, err := app.Test(uploadRequest(t, "a.jpg", "image/jpeg", content), -1)
		require.NoError(t, err)
		var out media.Object
		testutil.Decode(t, resp, &out)
		assert.Equal(t, "https://cdn.example.com/social-network/"+out.Key, out.URL)
	})

	tests := []struct {
		name     string
		filename string
		content  []byte
	}{
		{"MissingFile", "", nil},
		{"TooLarge", "big.png", bytes.Repeat([]byte("x"), 17)},
		{"Empty", "empty.png", []byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(mocks.Client)
			app := newMediaApp(t, client, cfg)

			resp, err := app.Test(uploadRequest(t, tt.filename, "image/png", tt.content), -1)
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			var env apierror.Envelope
			testutil.Decode(t, resp, &env)
			assert.Equal(t, apierror.CodeBodyNotValid, env.Error.Code)
			client.AssertNotCalled(t, "PutObject")
		})
	}
}

func TestHandler_Download(t *testing.T) {
	cfg := storage.Config{Enabled: true, Bucket: "social-network"}
	name := uuid.NewString() + ".png"

	t.Run("Success", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("StatObject", mock.Anything, "social-network", "media/"+name, mock.Anything).
			Return(minio.ObjectInfo{Size: 4, ContentType: "image/png", ETag: "abc"}, nil)
		client.On("GetObject", mock.Anything, "social-network", "media/"+name, mock.Anything).
			Return(io.NopCloser(strings.NewReader("data")), nil)
		app := newMediaApp(t, client, cfg)

		resp := testutil.Request(t, app, "GET", "/api/v1/media/"+name, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "data", string(body))
	})

	t.Run("NotFound", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("StatObject", mock.Anything, "social-network", "media/"+name, mock.Anything).
			Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey", StatusCode: http.StatusNotFound})
		app := newMediaApp(t, client, cfg)

		resp := testutil.Request(t, app, "GET", "/api/v1/media/"+name, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		client.AssertNotCalled(t, "GetObject")
	})

	t.Run("StorageDown", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("StatObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.ObjectInfo{}, errors.New("dial tcp: connection refused"))
		app := newMediaApp(t, client, cfg)

		resp := testutil.Request(t, app, "GET", "/api/v1/media/"+name, nil)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})

	t.Run("InvalidName", func(t *testing.T) {
		app := newMediaApp(t, new(mocks.Client), cfg)
		for _, bad := range []string{"passwd", uuid.NewString() + ".p$g", "x" + uuid.NewString()} {
			resp := testutil.Request(t, app, "GET", "/api/v1/media/"+bad, nil)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, bad)
		}
	})
}

func TestFeature_EnabledAndInit(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "social-network").Return(false, nil)
	client.On("MakeBucket", mock.Anything, "social-network", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)

	f := media.NewFeature(media.NewService(client, storage.Config{Bucket: "social-network", Region: "eu-west-1"}, zap.NewNop()))
	assert.False(t, f.IsEnabled())
	require.NoError(t, f.Init(t.Context()))
	client.AssertExpectations(t)
}
