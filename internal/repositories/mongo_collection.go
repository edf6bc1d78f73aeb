package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/anonto42/blogsphere/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/anonto42/blogsphere/backend/internal/repositories"

// MongoCollection implements Collection for MongoDB
type MongoCollection struct {
	collection *mongo.Collection
	tracer     trace.Tracer
}

// NewMongoCollection creates a new MongoCollection
func NewMongoCollection(db *mongo.Database, name string) *MongoCollection {
	return &MongoCollection{
		collection: db.Collection(name),
		tracer:     otel.Tracer(tracerName),
	}
}

// NewMongoCollections opens the application collections of db
func NewMongoCollections(db *mongo.Database) Collections {
	return Collections{
		Blogs:    NewMongoCollection(db, BlogsCollection),
		MyBlogs:  NewMongoCollection(db, MyBlogsCollection),
		Comments: NewMongoCollection(db, CommentsCollection),
		Wishlist: NewMongoCollection(db, WishlistCollection),
	}
}

func (c *MongoCollection) Name() string {
	return c.collection.Name()
}

// Find runs the filter and decodes all results into out
func (c *MongoCollection) Find(ctx context.Context, filter bson.M, out any) (err error) {
	ctx, span := c.startSpan(ctx, "find")
	defer func() { endSpan(span, err) }()

	cursor, err := c.collection.Find(ctx, nonNil(filter))
	if err != nil {
		return c.fault("find", err)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, out); err != nil {
		return c.fault("find", err)
	}
	return nil
}

// FindOne decodes the first document matching filter into out
func (c *MongoCollection) FindOne(ctx context.Context, filter bson.M, out any) (err error) {
	ctx, span := c.startSpan(ctx, "findOne")
	defer func() { endSpan(span, err) }()

	err = c.collection.FindOne(ctx, nonNil(filter)).Decode(out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return c.fault("findOne", err)
	}
	return nil
}

// Insert stores doc and returns the generated identifier
func (c *MongoCollection) Insert(ctx context.Context, doc any) (id string, err error) {
	ctx, span := c.startSpan(ctx, "insertOne")
	defer func() { endSpan(span, err) }()

	res, err := c.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", fmt.Errorf("%w: %v", ErrDuplicateKey, err)
		}
		return "", c.fault("insertOne", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

// UpdateFields applies a $set of fields to the document with the given id
func (c *MongoCollection) UpdateFields(ctx context.Context, id string, fields models.Document) (matched int64, err error) {
	filter, err := idFilter(id)
	if err != nil {
		return 0, err
	}

	ctx, span := c.startSpan(ctx, "updateOne")
	defer func() { endSpan(span, err) }()

	set := fields.Without(models.FieldID)
	if len(set) == 0 {
		// $set refuses an empty document, so only report whether the id matches.
		n, err := c.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
		if err != nil {
			return 0, c.fault("updateOne", err)
		}
		return n, nil
	}

	res, err := c.collection.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return 0, c.fault("updateOne", err)
	}
	return res.MatchedCount, nil
}

// Delete removes one document matching filter
func (c *MongoCollection) Delete(ctx context.Context, filter bson.M) (deleted int64, err error) {
	ctx, span := c.startSpan(ctx, "deleteOne")
	defer func() { endSpan(span, err) }()

	res, err := c.collection.DeleteOne(ctx, nonNil(filter))
	if err != nil {
		return 0, c.fault("deleteOne", err)
	}
	return res.DeletedCount, nil
}

func (c *MongoCollection) fault(op string, err error) error {
	return &StoreError{Collection: c.collection.Name(), Op: op, Err: err}
}

func (c *MongoCollection) startSpan(ctx context.Context, op string) (context.Context, trace.Span) {
	return c.tracer.Start(ctx, "mongo."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", "mongodb"),
			attribute.String("db.collection.name", c.collection.Name()),
			attribute.String("db.operation.name", op),
		),
	)
}

func endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func nonNil(filter bson.M) bson.M {
	if filter == nil {
		return bson.M{}
	}
	return filter
}
