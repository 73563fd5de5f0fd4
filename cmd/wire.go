package cmd

import (
	"context"
	"fmt"

	"social-network/core/config"
	"social-network/core/database"
	"social-network/core/loader"
	"social-network/core/metrics"
	"social-network/core/pagination"
	"social-network/core/server"
	"social-network/core/storage"
	"social-network/feature/comments"
	"social-network/feature/media"
	"social-network/feature/posts"
	"social-network/feature/status"
	"social-network/feature/tags"
	"social-network/feature/users"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "social-network/docs/swagger"
)

// multipartOverhead leaves room for form boundaries around an upload.
const multipartOverhead = 1 << 20

// services groups the domain services shared by the HTTP app and the CLI.
type services struct {
	users    *users.Service
	posts    *posts.Service
	comments *comments.Service
}

func newServices(db *database.Handle, logg *zap.Logger) services {
	userSvc := users.NewService(users.NewRepository(db), logg)
	postSvc := posts.NewService(posts.NewRepository(db), userSvc, logg)
	commentSvc := comments.NewService(comments.NewRepository(db), userSvc, postSvc, logg)
	return services{users: userSvc, posts: postSvc, comments: commentSvc}
}

// schemaTables lists every SQL table the API needs.
func schemaTables() []string {
	var out []string
	out = append(out, users.Tables...)
	out = append(out, posts.Tables...)
	out = append(out, comments.Tables...)
	return out
}

// buildApp assembles the Fiber application, prepares storage for every enabled
// feature and mounts the routes.
func buildApp(ctx context.Context, cfg *config.Config, logg *zap.Logger, db *database.Handle) (*fiber.App, *loader.Manager, error) {
	opts := server.Options{
		Server:             cfg.Server,
		Logger:             logg,
		CompressionEnabled: cfg.Compression.Enabled,
		CompressionLevel:   cfg.Compression.Level,
	}
	if cfg.Cache.Enabled {
		opts.CacheMaxAge = cfg.Cache.TTL
	}
	if cfg.Metrics.Enabled {
		opts.Metrics = metrics.NewCollector()
		opts.MetricsPath = cfg.Metrics.Path
	}
	if cfg.Storage.Enabled && cfg.Storage.MaxUploadBytes > 0 {
		opts.BodyLimit = int(cfg.Storage.MaxUploadBytes) + multipartOverhead
	}
	app := server.NewApp(opts)

	app.Get("/api/v1/docs/*", swagger.HandlerDefault)

	page := pagination.Options{
		DefaultLimit: cfg.Pagination.DefaultPageSize,
		MaxLimit:     cfg.Pagination.MaxPageSize,
	}
	svc := newServices(db, logg)

	var tagSource tags.Source = svc.posts
	if cfg.Cache.Enabled {
		cache := tags.NewCache(svc.posts, cfg.Cache.TTL, cfg.Cache.MaxEntries)
		svc.posts.OnTagsChanged(cache.Invalidate)
		tagSource = cache
	}

	var store storage.Client
	if cfg.Storage.Enabled {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, nil, err
		}
		store = client
	}

	mgr := loader.NewManager(logg)
	mgr.Register(status.NewFeature(status.NewService(db, schemaTables(), logg), cfg.Server.Version, app))
	mgr.Register(users.NewFeature(svc.users, page))
	mgr.Register(posts.NewFeature(svc.posts, page))
	mgr.Register(comments.NewFeature(svc.comments, page))
	mgr.Register(tags.NewFeature(tagSource))
	mgr.Register(media.NewFeature(media.NewService(store, cfg.Storage, logg)))

	if err := mgr.InitAll(ctx); err != nil {
		return nil, nil, err
	}
	if err := mgr.LoadAll(app.Group("/api/v1")); err != nil {
		return nil, nil, fmt.Errorf("failed to load features: %w", err)
	}
	return app, mgr, nil
}
