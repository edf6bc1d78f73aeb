package repositories

import (
	"context"

	"github.com/anonto42/blogsphere/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// Collection names
const (
	BlogsCollection    = "blogs"
	MyBlogsCollection  = "myblogs"
	CommentsCollection = "comments"
	WishlistCollection = "wishlist"
)

// Collection is a named set of documents. It enforces no relationships between collections.
//
// Filters map a field name to its required value; the "$text" key carries a
// {"$search": string} directive matched against the collection's text fields.
type Collection interface {
	Name() string
	// Find decodes every matching document into out, which must point to a slice.
	Find(ctx context.Context, filter bson.M, out any) error
	// FindOne decodes the first match into out, or returns ErrNotFound.
	FindOne(ctx context.Context, filter bson.M, out any) error
	// Insert stores doc and returns its generated identifier in hex form.
	Insert(ctx context.Context, doc any) (string, error)
	// UpdateFields sets fields on the document with the given id and returns the matched count.
	// The identifier itself is never part of the update.
	UpdateFields(ctx context.Context, id string, fields models.Document) (int64, error)
	// Delete removes one matching document and returns the deleted count.
	Delete(ctx context.Context, filter bson.M) (int64, error)
}

// Collections groups the application collections
type Collections struct {
	Blogs    Collection
	MyBlogs  Collection
	Comments Collection
	Wishlist Collection
}

func idFilter(id string) (bson.M, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	return bson.M{models.FieldID: oid}, nil
}
