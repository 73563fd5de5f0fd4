// Package media uploads images to S3 compatible storage and serves them back.
//
// Objects are stored under media/<uuid><ext> in the configured bucket. The
// feature is only loaded when storage.enabled is set.
package media
