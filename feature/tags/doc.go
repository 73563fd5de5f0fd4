// Package tags serves the distinct tags used by posts.
//
// The list can be fronted by Cache, an LRU whose entries expire after a TTL.
// Concurrent misses are collapsed with singleflight. Post writes call
// Invalidate through posts.Service.OnTagsChanged.
package tags
