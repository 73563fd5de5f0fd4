package comments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"social-network/core/database"
	"social-network/core/pagination"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the MongoDB collection holding comments.
const Collection = "comments"

type commentDocument struct {
	ID          string    `bson:"_id"`
	Message     string    `bson:"message"`
	Owner       string    `bson:"owner"`
	Post        string    `bson:"post"`
	PublishDate time.Time `bson:"publishDate"`
}

func (d commentDocument) toComment() Comment {
	return Comment{ID: d.ID, Message: d.Message, OwnerID: d.Owner, PostID: d.Post, PublishDate: d.PublishDate.UTC()}
}

// MongoRepository stores comments in a MongoDB collection.
type MongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository creates a MongoDB-backed repository.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(Collection)}
}

func (r *MongoRepository) Init(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "post", Value: 1}, {Key: "publishDate", Value: -1}}},
		{Keys: bson.D{{Key: "owner", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create comment indexes: %w", err)
	}
	return nil
}

func (r *MongoRepository) List(ctx context.Context, filter Filter, page pagination.Params) ([]Comment, int64, error) {
	query := bson.D{}
	if filter.PostID != "" {
		query = append(query, bson.E{Key: "post", Value: filter.PostID})
	}
	if filter.OwnerID != "" {
		query = append(query, bson.E{Key: "owner", Value: filter.OwnerID})
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count comments: %w", err)
	}

	direction := 1
	if page.Descending() {
		direction = -1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "publishDate", Value: direction}, {Key: "_id", Value: 1}}).
		SetSkip(int64(page.Offset())).
		SetLimit(int64(page.Limit))

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list comments: %w", err)
	}
	var docs []commentDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("failed to decode comments: %w", err)
	}

	out := make([]Comment, len(docs))
	for i, d := range docs {
		out[i] = d.toComment()
	}
	return out, total, nil
}

func (r *MongoRepository) Get(ctx context.Context, id string) (*Comment, error) {
	var doc commentDocument
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment %s: %w", id, err)
	}
	c := doc.toComment()
	return &c, nil
}

func (r *MongoRepository) Create(ctx context.Context, c *Comment) error {
	doc := commentDocument{ID: c.ID, Message: c.Message, Owner: c.OwnerID, Post: c.PostID, PublishDate: c.PublishDate}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("failed to delete comment %s: %w", id, err)
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
