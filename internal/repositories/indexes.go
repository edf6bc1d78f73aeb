package repositories

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anonto42/blogsphere/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Index names
const (
	PostTextIndex      = "post_text"
	CommentBlogIndex   = "comment_blog"
	WishlistOwnerIndex = "wishlist_owner_blog_unique"
)

// ErrDuplicateWishlistEntries indicates the wishlist already holds more than one entry for
// some (userEmail, blogId) pair, so the unique index cannot be built.
var ErrDuplicateWishlistEntries = errors.New("wishlist has duplicate (userEmail, blogId) entries")

// Server error codes for index definitions that clash with an existing index
const (
	codeCannotCreateIndex     = 67
	codeIndexOptionsConflict  = 85
	codeIndexKeySpecsConflict = 86
)

const duplicatePairsReportLimit = 10

// EnsureIndexes creates the indexes the repositories rely on. CreateMany is a
// no-op for indexes that already exist with the same definition.
//
// A collection holds at most one text index, so an existing one under any name is
// reused for searchText. The unique wishlist index is what guarantees one saved item
// per (userEmail, blogId) when two requests race past the Reserve check; failing to
// build it is fatal.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, name := range []string{BlogsCollection, MyBlogsCollection} {
		if err := ensureTextIndex(ctx, db.Collection(name)); err != nil {
			return err
		}
	}

	comments := db.Collection(CommentsCollection)
	if _, err := comments.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "blogId", Value: 1}},
		Options: options.Index().SetName(CommentBlogIndex),
	}); err != nil {
		return fmt.Errorf("failed to create indexes on %s: %w", CommentsCollection, err)
	}
	slog.Debug("Indexes ensured", "collection", CommentsCollection, "index", CommentBlogIndex)

	return ensureWishlistIndex(ctx, db.Collection(WishlistCollection))
}

func ensureTextIndex(ctx context.Context, coll *mongo.Collection) error {
	existing, err := textIndexName(ctx, coll)
	if err != nil {
		return fmt.Errorf("failed to list indexes on %s: %w", coll.Name(), err)
	}
	if existing != "" {
		if existing != PostTextIndex {
			slog.Warn("Reusing existing text index", "collection", coll.Name(), "index", existing)
		}
		return nil
	}

	keys := bson.D{}
	for _, f := range models.PostTextFields {
		keys = append(keys, bson.E{Key: f, Value: "text"})
	}
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: keys, Options: options.Index().SetName(PostTextIndex)})
	if err != nil {
		// Another process may have built a different text index since the listing.
		if hasErrorCode(err, codeCannotCreateIndex, codeIndexOptionsConflict, codeIndexKeySpecsConflict) {
			slog.Warn("Text index not created, search uses the existing one", "collection", coll.Name(), "err", err)
			return nil
		}
		return fmt.Errorf("failed to create indexes on %s: %w", coll.Name(), err)
	}
	slog.Debug("Indexes ensured", "collection", coll.Name(), "index", PostTextIndex)
	return nil
}

// textIndexName returns the name of the collection's text index, or "" when it has none.
func textIndexName(ctx context.Context, coll *mongo.Collection) (string, error) {
	cursor, err := coll.Indexes().List(ctx)
	if err != nil {
		return "", err
	}
	var specs []struct {
		Name string `bson:"name"`
		Key  bson.M `bson:"key"`
	}
	if err := cursor.All(ctx, &specs); err != nil {
		return "", err
	}
	for _, spec := range specs {
		// text indexes are stored with the synthetic _fts key
		if spec.Key["_fts"] == "text" {
			return spec.Name, nil
		}
	}
	return "", nil
}

func ensureWishlistIndex(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userEmail", Value: 1}, {Key: "blogId", Value: 1}},
		Options: options.Index().SetName(WishlistOwnerIndex).SetUnique(true),
	})
	if err == nil {
		slog.Debug("Indexes ensured", "collection", coll.Name(), "index", WishlistOwnerIndex)
		return nil
	}
	if !mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("failed to create indexes on %s: %w", coll.Name(), err)
	}

	pairs, listErr := duplicateOwnerPairs(ctx, coll)
	if listErr != nil {
		return fmt.Errorf("%w (listing them failed: %v): %v", ErrDuplicateWishlistEntries, listErr, err)
	}
	return fmt.Errorf("%w, remove the extra entries and restart: %s", ErrDuplicateWishlistEntries, strings.Join(pairs, ", "))
}

// duplicateOwnerPairs describes up to duplicatePairsReportLimit pairs stored more than once.
func duplicateOwnerPairs(ctx context.Context, coll *mongo.Collection) ([]string, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "userEmail", Value: "$userEmail"}, {Key: "blogId", Value: "$blogId"}}},
			{Key: "n", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$match", Value: bson.D{{Key: "n", Value: bson.D{{Key: "$gt", Value: 1}}}}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id.userEmail", Value: 1}, {Key: "_id.blogId", Value: 1}}}},
		{{Key: "$limit", Value: duplicatePairsReportLimit}},
	}
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var groups []struct {
		Pair struct {
			UserEmail string `bson:"userEmail"`
			BlogID    string `bson:"blogId"`
		} `bson:"_id"`
		N int `bson:"n"`
	}
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}

	pairs := make([]string, 0, len(groups))
	for _, g := range groups {
		pairs = append(pairs, fmt.Sprintf("(%s, %s) x%d", g.Pair.UserEmail, g.Pair.BlogID, g.N))
	}
	return pairs, nil
}

func hasErrorCode(err error, codes ...int) bool {
	var se mongo.ServerError
	if !errors.As(err, &se) {
		return false
	}
	for _, code := range codes {
		if se.HasErrorCode(code) {
			return true
		}
	}
	return false
}
