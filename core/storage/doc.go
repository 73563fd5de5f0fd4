// Package storage wraps the MinIO client used for media uploads.
//
// The Client interface covers only what the media feature needs, so handlers and
// services can be tested against core/storage/mocks. It works with AWS S3 and
// self-hosted MinIO alike.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
//	    return err
//	}
package storage
