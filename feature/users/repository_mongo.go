package users

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"social-network/core/database"
	"social-network/core/pagination"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the MongoDB collection holding users.
const Collection = "users"

type userDocument struct {
	ID           string     `bson:"_id"`
	Title        string     `bson:"title"`
	FirstName    string     `bson:"firstName"`
	LastName     string     `bson:"lastName"`
	Email        string     `bson:"email"`
	DateOfBirth  *time.Time `bson:"dateOfBirth,omitempty"`
	RegisterDate time.Time  `bson:"registerDate"`
	Phone        *string    `bson:"phone,omitempty"`
	Picture      string     `bson:"picture"`
	Location     *Location  `bson:"location,omitempty"`
}

func toDocument(u *User) userDocument {
	return userDocument{
		ID:           u.ID,
		Title:        string(u.Title),
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		DateOfBirth:  u.DateOfBirth,
		RegisterDate: u.RegisterDate,
		Phone:        u.Phone,
		Picture:      u.Picture,
		Location:     u.Location,
	}
}

func (d userDocument) toUser() User {
	u := User{
		ID:           d.ID,
		Title:        Title(d.Title),
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Email:        d.Email,
		DateOfBirth:  d.DateOfBirth,
		RegisterDate: d.RegisterDate.UTC(),
		Phone:        d.Phone,
		Picture:      d.Picture,
		Location:     d.Location,
	}
	if u.DateOfBirth != nil {
		dob := u.DateOfBirth.UTC()
		u.DateOfBirth = &dob
	}
	return u
}

// MongoRepository stores users in a MongoDB collection.
type MongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository creates a MongoDB-backed repository.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(Collection)}
}

func (r *MongoRepository) Init(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "registerDate", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}
	return nil
}

func (r *MongoRepository) List(ctx context.Context, filter Filter, page pagination.Params) ([]User, int64, error) {
	query := bson.D{}
	if filter.Title != "" {
		query = append(query, bson.E{Key: "title", Value: filter.Title})
	}
	if filter.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query = append(query, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "firstName", Value: re}},
			bson.D{{Key: "lastName", Value: re}},
			bson.D{{Key: "email", Value: re}},
		}})
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
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
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	var docs []userDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("failed to decode users: %w", err)
	}

	out := make([]User, len(docs))
	for i, d := range docs {
		out[i] = d.toUser()
	}
	return out, total, nil
}

func (r *MongoRepository) Get(ctx context.Context, id string) (*User, error) {
	var doc userDocument
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", id, err)
	}
	u := doc.toUser()
	return &u, nil
}

func (r *MongoRepository) GetMany(ctx context.Context, ids []string) ([]User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := r.coll.Find(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}})
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	var docs []userDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	out := make([]User, len(docs))
	for i, d := range docs {
		out[i] = d.toUser()
	}
	return out, nil
}

func (r *MongoRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{{Key: "email", Value: email}}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return n > 0, nil
}

func (r *MongoRepository) Create(ctx context.Context, u *User) error {
	if _, err := r.coll.InsertOne(ctx, toDocument(u)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return database.ErrDuplicate
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *MongoRepository) Update(ctx context.Context, id string, changes Changes) (*User, error) {
	set := bson.D{}
	if changes.Title != nil {
		set = append(set, bson.E{Key: "title", Value: string(*changes.Title)})
	}
	if changes.FirstName != nil {
		set = append(set, bson.E{Key: "firstName", Value: *changes.FirstName})
	}
	if changes.LastName != nil {
		set = append(set, bson.E{Key: "lastName", Value: *changes.LastName})
	}
	if changes.DateOfBirth != nil {
		set = append(set, bson.E{Key: "dateOfBirth", Value: *changes.DateOfBirth})
	}
	if changes.Phone != nil {
		set = append(set, bson.E{Key: "phone", Value: *changes.Phone})
	}
	if changes.Picture != nil {
		set = append(set, bson.E{Key: "picture", Value: *changes.Picture})
	}
	if changes.Location != nil {
		set = append(set, bson.E{Key: "location", Value: changes.Location})
	}
	if len(set) == 0 {
		return r.Get(ctx, id)
	}

	var doc userDocument
	err := r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: set}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", id, err)
	}
	u := doc.toUser()
	return &u, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("failed to delete user %s: %w", id, err)
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
