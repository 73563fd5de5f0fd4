// Package posts implements the post resource.
//
// A post belongs to an owner that must exist when the post is created. Owners
// are resolved in one batch per page through OwnerLookup. A post whose owner was
// deleted afterwards is skipped in lists, although the total still counts it,
// and fetching it directly reports the missing user.
//
// On SQL backends tags live in a post_tags table keyed by (post_id, position) so
// their order survives a round trip. MongoDB stores them as an array.
package posts
