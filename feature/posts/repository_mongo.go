package posts

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"time"

	"social-network/core/database"
	"social-network/core/pagination"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the MongoDB collection holding posts.
const Collection = "posts"

type postDocument struct {
	ID          string    `bson:"_id"`
	Text        string    `bson:"text"`
	Image       string    `bson:"image"`
	Likes       int       `bson:"likes"`
	Link        *string   `bson:"link,omitempty"`
	Tags        []string  `bson:"tags"`
	Owner       string    `bson:"owner"`
	PublishDate time.Time `bson:"publishDate"`
}

func toDocument(p *Post) postDocument {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return postDocument{
		ID:          p.ID,
		Text:        p.Text,
		Image:       p.Image,
		Likes:       p.Likes,
		Link:        p.Link,
		Tags:        tags,
		Owner:       p.OwnerID,
		PublishDate: p.PublishDate,
	}
}

func (d postDocument) toPost() Post {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return Post{
		ID:          d.ID,
		Text:        d.Text,
		Image:       d.Image,
		Likes:       d.Likes,
		Link:        d.Link,
		Tags:        tags,
		OwnerID:     d.Owner,
		PublishDate: d.PublishDate.UTC(),
	}
}

// MongoRepository stores posts in a MongoDB collection.
type MongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository creates a MongoDB-backed repository.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(Collection)}
}

func (r *MongoRepository) Init(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner", Value: 1}}},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
		{Keys: bson.D{{Key: "publishDate", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create post indexes: %w", err)
	}
	return nil
}

func (r *MongoRepository) List(ctx context.Context, filter Filter, page pagination.Params) ([]Post, int64, error) {
	query := bson.D{}
	if filter.Search != "" {
		query = append(query, bson.E{Key: "text", Value: primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}})
	}
	if filter.OwnerID != "" {
		query = append(query, bson.E{Key: "owner", Value: filter.OwnerID})
	}
	if filter.Tag != "" {
		query = append(query, bson.E{Key: "tags", Value: filter.Tag})
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	direction := 1
	if page.Descending() {
		direction = -1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: page.SortBy, Value: direction}, {Key: "_id", Value: 1}}).
		SetSkip(int64(page.Offset())).
		SetLimit(int64(page.Limit))

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}
	var docs []postDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("failed to decode posts: %w", err)
	}

	out := make([]Post, len(docs))
	for i, d := range docs {
		out[i] = d.toPost()
	}
	return out, total, nil
}

func (r *MongoRepository) Get(ctx context.Context, id string) (*Post, error) {
	var doc postDocument
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post %s: %w", id, err)
	}
	p := doc.toPost()
	return &p, nil
}

func (r *MongoRepository) Create(ctx context.Context, p *Post) error {
	if _, err := r.coll.InsertOne(ctx, toDocument(p)); err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func (r *MongoRepository) Update(ctx context.Context, id string, in UpdateInput) (*Post, error) {
	set := bson.D{}
	if in.Text != nil {
		set = append(set, bson.E{Key: "text", Value: *in.Text})
	}
	if in.Image != nil {
		set = append(set, bson.E{Key: "image", Value: *in.Image})
	}
	if in.Likes != nil {
		set = append(set, bson.E{Key: "likes", Value: *in.Likes})
	}
	if in.Tags != nil {
		set = append(set, bson.E{Key: "tags", Value: in.Tags})
	}
	if in.Link != nil {
		set = append(set, bson.E{Key: "link", Value: *in.Link})
	}
	if len(set) == 0 {
		return r.Get(ctx, id)
	}

	var doc postDocument
	err := r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: set}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update post %s: %w", id, err)
	}
	p := doc.toPost()
	return &p, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("failed to delete post %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return database.ErrNotFound
	}
	return nil
}

func (r *MongoRepository) DeleteAll(ctx context.Context) error {
	_, err := r.coll.DeleteMany(ctx, bson.D{})
	return err
}

func (r *MongoRepository) Tags(ctx context.Context) ([]string, error) {
	values, err := r.coll.Distinct(ctx, "tags", bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	tags := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			tags = append(tags, s)
		}
	}
	sort.Strings(tags)
	return tags, nil
}
