package blogservice

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/sushihentaime/bloglist/internal/common"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	BlogCollection = "blogs"

	codeNamespaceExists          = 48
	codeDocumentValidationFailed = 121
)

var _ Store = (*MongoModel)(nil)

type MongoModel struct {
	coll *mongo.Collection
}

type blogDocument struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Title  string             `bson:"title"`
	Author string             `bson:"author,omitempty"`
	URL    string             `bson:"url"`
	Likes  int                `bson:"likes"`
}

func (d *blogDocument) blog() Blog {
	return Blog{
		ID:     d.ID.Hex(),
		Title:  d.Title,
		Author: d.Author,
		URL:    d.URL,
		Likes:  d.Likes,
	}
}

func newBlogDocument(b *Blog) *blogDocument {
	return &blogDocument{
		Title:  b.Title,
		Author: b.Author,
		URL:    b.URL,
		Likes:  b.Likes,
	}
}

func NewMongoModel(db *mongo.Database) *MongoModel {
	return &MongoModel{coll: db.Collection(BlogCollection)}
}

var blogSchema = bson.M{
	"bsonType": "object",
	"required": bson.A{"title", "url", "likes"},
	"properties": bson.M{
		"title":  bson.M{"bsonType": "string", "minLength": 1},
		"author": bson.M{"bsonType": "string"},
		"url":    bson.M{"bsonType": "string", "minLength": 1},
		"likes":  bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0, "maximum": math.MaxInt32},
	},
}

// EnsureSchema creates the blogs collection with a $jsonSchema validator, or
// updates the validator when the collection already exists.
func (m *MongoModel) EnsureSchema(ctx context.Context) error {
	db := m.coll.Database()
	validator := bson.M{"$jsonSchema": blogSchema}

	err := db.CreateCollection(ctx, BlogCollection, options.CreateCollection().SetValidator(validator))
	if err == nil {
		return nil
	}

	var se mongo.ServerError
	if !errors.As(err, &se) || !se.HasErrorCode(codeNamespaceExists) {
		return fmt.Errorf("create %s collection: %w", BlogCollection, err)
	}

	cmd := bson.D{{Key: "collMod", Value: BlogCollection}, {Key: "validator", Value: validator}}
	if err := db.RunCommand(ctx, cmd).Err(); err != nil {
		return fmt.Errorf("update %s validator: %w", BlogCollection, err)
	}

	return nil
}

func schemaViolation(err error) (common.ValidationError, bool) {
	var se mongo.ServerError
	if errors.As(err, &se) && se.HasErrorCode(codeDocumentValidationFailed) {
		return common.ValidationError{Errors: map[string]string{"blog": "rejected by the document schema"}}, true
	}

	return common.ValidationError{}, false
}

func (m *MongoModel) GetBlogs(ctx context.Context) ([]Blog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := m.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	var docs []blogDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	blogs := make([]Blog, 0, len(docs))
	for i := range docs {
		blogs = append(blogs, docs[i].blog())
	}

	return blogs, nil
}

func (m *MongoModel) InsertBlog(ctx context.Context, blog *Blog) error {
	doc := newBlogDocument(blog)
	doc.ID = primitive.NewObjectID()

	_, err := m.coll.InsertOne(ctx, doc)
	if err != nil {
		if verr, ok := schemaViolation(err); ok {
			return verr
		}
		return fmt.Errorf("insert blog: %w", err)
	}

	blog.ID = doc.ID.Hex()

	return nil
}

func (m *MongoModel) DeleteBlog(ctx context.Context, id primitive.ObjectID) error {
	res, err := m.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if res.DeletedCount == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// UpdateBlog replaces the whole document, so an empty author is removed rather than kept.
func (m *MongoModel) UpdateBlog(ctx context.Context, id primitive.ObjectID, blog *Blog) (*Blog, error) {
	opts := options.FindOneAndReplace().SetReturnDocument(options.After)

	var doc blogDocument
	err := m.coll.FindOneAndReplace(ctx, bson.M{"_id": id}, newBlogDocument(blog), opts).Decode(&doc)
	if err != nil {
		if verr, ok := schemaViolation(err); ok {
			return nil, verr
		}
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	updated := doc.blog()

	return &updated, nil
}
