// Package seed fills the database with sample users, posts and comments.
package seed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"social-network/feature/comments"
	"social-network/feature/posts"
	"social-network/feature/users"

	"github.com/google/uuid"
)

// PostsPerTemplate is how many posts are created from each sample text.
const PostsPerTemplate = 2

// Summary counts what Run inserted.
type Summary struct {
	Users    int
	Posts    int
	Comments int
	Tags     int
}

// Seeder replaces the content of every collection with sample data.
type Seeder struct {
	Users    *users.Service
	Posts    *posts.Service
	Comments *comments.Service

	Rand *rand.Rand
	Now  func() time.Time
}

func (s *Seeder) daysAgo(lo, hi int) time.Time {
	return s.Now().Add(-time.Duration(lo+s.Rand.IntN(hi-lo+1)) * 24 * time.Hour)
}

// Run clears comments, posts and users, in that order, then inserts samples.
func (s *Seeder) Run(ctx context.Context) (Summary, error) {
	if s.Rand == nil {
		s.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if s.Now == nil {
		s.Now = func() time.Time { return time.Now().UTC() }
	}

	if err := s.Comments.Seed(ctx, nil); err != nil {
		return Summary{}, err
	}
	if err := s.Posts.Seed(ctx, nil); err != nil {
		return Summary{}, err
	}

	us := make([]users.User, len(sampleUsers))
	for i, u := range sampleUsers {
		u.ID = uuid.NewString()
		u.RegisterDate = s.daysAgo(30, 365)
		us[i] = u
	}
	if err := s.Users.Seed(ctx, us); err != nil {
		return Summary{}, fmt.Errorf("failed to seed users: %w", err)
	}

	ps := make([]posts.Post, 0, len(samplePosts)*PostsPerTemplate)
	tags := map[string]struct{}{}
	for i, tpl := range samplePosts {
		for j := 0; j < PostsPerTemplate; j++ {
			link := fmt.Sprintf("https://example.com/article/%d%d", i, j)
			ps = append(ps, posts.Post{
				ID:          uuid.NewString(),
				Text:        tpl.text,
				Image:       fmt.Sprintf("https://picsum.photos/800/600?random=%d%d", i, j),
				Likes:       s.Rand.IntN(101),
				Link:        &link,
				Tags:        append([]string(nil), tpl.tags...),
				OwnerID:     us[s.Rand.IntN(len(us))].ID,
				PublishDate: s.daysAgo(1, 30),
			})
		}
		for _, t := range tpl.tags {
			tags[t] = struct{}{}
		}
	}
	if err := s.Posts.Seed(ctx, ps); err != nil {
		return Summary{}, fmt.Errorf("failed to seed posts: %w", err)
	}

	var cs []comments.Comment
	for _, p := range ps {
		n := 1 + s.Rand.IntN(5)
		for k := 0; k < n; k++ {
			cs = append(cs, comments.Comment{
				ID:          uuid.NewString(),
				Message:     sampleComments[s.Rand.IntN(len(sampleComments))],
				OwnerID:     us[s.Rand.IntN(len(us))].ID,
				PostID:      p.ID,
				PublishDate: s.daysAgo(0, 7),
			})
		}
	}
	if err := s.Comments.Seed(ctx, cs); err != nil {
		return Summary{}, fmt.Errorf("failed to seed comments: %w", err)
	}

	return Summary{Users: len(us), Posts: len(ps), Comments: len(cs), Tags: len(tags)}, nil
}
