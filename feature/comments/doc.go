// Package comments implements the comment resource.
//
// Comments reference a post and an owner by id. Both must exist at creation
// time. Nothing cascades afterwards, so a comment can outlive its post.
package comments
