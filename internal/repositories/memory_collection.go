package repositories

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/anonto42/blogsphere/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryCollection implements Collection in process memory. Documents go through the
// same BSON codec as MongoDB, so struct tags behave identically in both stores.
type MemoryCollection struct {
	mu         sync.RWMutex
	name       string
	docs       []bson.M // insertion order
	textFields []string
	uniqueKeys [][]string
}

// MemoryOption configures a MemoryCollection
type MemoryOption func(*MemoryCollection)

// WithTextFields sets the fields searched by a "$text" filter.
func WithTextFields(fields ...string) MemoryOption {
	return func(c *MemoryCollection) {
		c.textFields = fields
	}
}

// WithUniqueKey rejects inserts whose values for fields equal those of a stored document.
func WithUniqueKey(fields ...string) MemoryOption {
	return func(c *MemoryCollection) {
		c.uniqueKeys = append(c.uniqueKeys, fields)
	}
}

// NewMemoryCollection creates an empty in-memory collection
func NewMemoryCollection(name string, opts ...MemoryOption) *MemoryCollection {
	c := &MemoryCollection{name: name}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewMemoryCollections returns the application collections configured like their
// MongoDB counterparts after EnsureIndexes.
func NewMemoryCollections() Collections {
	return Collections{
		Blogs:    NewMemoryCollection(BlogsCollection, WithTextFields(models.PostTextFields...)),
		MyBlogs:  NewMemoryCollection(MyBlogsCollection, WithTextFields(models.PostTextFields...)),
		Comments: NewMemoryCollection(CommentsCollection),
		Wishlist: NewMemoryCollection(WishlistCollection, WithUniqueKey("userEmail", "blogId")),
	}
}

func (c *MemoryCollection) Name() string {
	return c.name
}

// Len returns the number of stored documents
func (c *MemoryCollection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.docs)
}

func (c *MemoryCollection) Find(ctx context.Context, filter bson.M, out any) error {
	if err := ctx.Err(); err != nil {
		return c.fault("find", err)
	}

	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Slice {
		return c.fault("find", fmt.Errorf("out must be a pointer to a slice, got %T", out))
	}

	want, err := canonical(filter)
	if err != nil {
		return c.fault("find", err)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	sliceType := rv.Elem().Type()
	results := reflect.MakeSlice(sliceType, 0, len(c.docs))
	for _, doc := range c.docs {
		if !c.matches(doc, want) {
			continue
		}
		elem := reflect.New(sliceType.Elem())
		if err := decode(doc, elem.Interface()); err != nil {
			return c.fault("find", err)
		}
		results = reflect.Append(results, elem.Elem())
	}
	rv.Elem().Set(results)
	return nil
}

func (c *MemoryCollection) FindOne(ctx context.Context, filter bson.M, out any) error {
	if err := ctx.Err(); err != nil {
		return c.fault("findOne", err)
	}
	want, err := canonical(filter)
	if err != nil {
		return c.fault("findOne", err)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, doc := range c.docs {
		if c.matches(doc, want) {
			if err := decode(doc, out); err != nil {
				return c.fault("findOne", err)
			}
			return nil
		}
	}
	return ErrNotFound
}

func (c *MemoryCollection) Insert(ctx context.Context, doc any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", c.fault("insertOne", err)
	}
	stored, err := canonical(doc)
	if err != nil {
		return "", c.fault("insertOne", err)
	}

	oid, ok := stored[models.FieldID].(primitive.ObjectID)
	if !ok || oid.IsZero() {
		oid = primitive.NewObjectID()
		stored[models.FieldID] = oid
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.docs {
		if existing[models.FieldID] == oid {
			return "", fmt.Errorf("%w: _id %s", ErrDuplicateKey, oid.Hex())
		}
		for _, key := range c.uniqueKeys {
			if sameValues(existing, stored, key) {
				return "", fmt.Errorf("%w: %s", ErrDuplicateKey, strings.Join(key, ","))
			}
		}
	}

	c.docs = append(c.docs, stored)
	return oid.Hex(), nil
}

func (c *MemoryCollection) UpdateFields(ctx context.Context, id string, fields models.Document) (int64, error) {
	oid, err := ParseID(id)
	if err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, c.fault("updateOne", err)
	}
	set, err := canonical(fields.Without(models.FieldID))
	if err != nil {
		return 0, c.fault("updateOne", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, doc := range c.docs {
		if doc[models.FieldID] != oid {
			continue
		}
		for k, v := range set {
			doc[k] = v
		}
		return 1, nil
	}
	return 0, nil
}

func (c *MemoryCollection) Delete(ctx context.Context, filter bson.M) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, c.fault("deleteOne", err)
	}
	want, err := canonical(filter)
	if err != nil {
		return 0, c.fault("deleteOne", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i, doc := range c.docs {
		if c.matches(doc, want) {
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (c *MemoryCollection) matches(doc, filter bson.M) bool {
	for key, want := range filter {
		if key == "$text" {
			if !c.matchText(doc, want) {
				return false
			}
			continue
		}
		if !reflect.DeepEqual(doc[key], want) {
			return false
		}
	}
	return true
}

// matchText approximates a MongoDB text search: a document matches when any
// search term occurs, case-insensitively, in any of the text fields.
func (c *MemoryCollection) matchText(doc bson.M, directive any) bool {
	searchDoc, ok := directive.(bson.M)
	if !ok {
		return false
	}
	search, _ := searchDoc["$search"].(string)
	terms := strings.Fields(strings.ToLower(search))
	if len(terms) == 0 {
		return false
	}

	for _, field := range c.textFields {
		value, ok := doc[field].(string)
		if !ok {
			continue
		}
		value = strings.ToLower(value)
		for _, term := range terms {
			if strings.Contains(value, term) {
				return true
			}
		}
	}
	return false
}

func (c *MemoryCollection) fault(op string, err error) error {
	return &StoreError{Collection: c.name, Op: op, Err: err}
}

func sameValues(a, b bson.M, fields []string) bool {
	for _, f := range fields {
		if !reflect.DeepEqual(a[f], b[f]) {
			return false
		}
	}
	return true
}

// canonical round-trips v through BSON so stored values and filter values share one
// representation (int widths, time as DateTime, nested maps as bson.M).
func canonical(v any) (bson.M, error) {
	if v == nil {
		return bson.M{}, nil
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Map && rv.IsNil() {
		return bson.M{}, nil
	}
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := bson.M{}
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func decode(doc bson.M, out any) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}
