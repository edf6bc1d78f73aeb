package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/anonto42/blogsphere/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMemoryCollection_InsertAndFindOne(t *testing.T) {
	c := NewMemoryCollection("things")
	ctx := context.Background()

	id, err := c.Insert(ctx, models.Document{"title": "hello", "views": 3})
	require.NoError(t, err)

	oid, err := primitive.ObjectIDFromHex(id)
	require.NoError(t, err)

	var got models.Document
	require.NoError(t, c.FindOne(ctx, bson.M{"_id": oid}, &got))
	assert.Equal(t, "hello", got["title"])
	assert.EqualValues(t, 3, got["views"])
	assert.Equal(t, oid, got["_id"])
}

func TestMemoryCollection_FindOne_NotFound(t *testing.T) {
	c := NewMemoryCollection("things")

	var got models.Document
	err := c.FindOne(context.Background(), bson.M{"title": "missing"}, &got)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCollection_FindEquality(t *testing.T) {
	c := NewMemoryCollection("things")
	ctx := context.Background()

	for _, cat := range []string{"tech", "food", "tech"} {
		_, err := c.Insert(ctx, models.Document{"category": cat})
		require.NoError(t, err)
	}

	var tech []models.Document
	require.NoError(t, c.Find(ctx, bson.M{"category": "tech"}, &tech))
	assert.Len(t, tech, 2)

	var all []models.Document
	require.NoError(t, c.Find(ctx, bson.M{}, &all))
	assert.Len(t, all, 3)

	var none []models.Document
	require.NoError(t, c.Find(ctx, bson.M{"category": "travel"}, &none))
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestMemoryCollection_FindRejectsNonSlice(t *testing.T) {
	c := NewMemoryCollection("things")

	var doc models.Document
	err := c.Find(context.Background(), nil, &doc)
	assert.True(t, IsStoreFault(err))
}

func TestMemoryCollection_TextSearch(t *testing.T) {
	c := NewMemoryCollection("posts", WithTextFields("title", "description"))
	ctx := context.Background()

	_, err := c.Insert(ctx, models.Document{"title": "Learning Go", "description": "channels"})
	require.NoError(t, err)
	_, err = c.Insert(ctx, models.Document{"title": "Baking", "description": "Sourdough bread"})
	require.NoError(t, err)
	_, err = c.Insert(ctx, models.Document{"body": "go go go"})
	require.NoError(t, err)

	var hits []models.Document
	require.NoError(t, c.Find(ctx, bson.M{"$text": bson.M{"$search": "go"}}, &hits))
	require.Len(t, hits, 1)
	assert.Equal(t, "Learning Go", hits[0]["title"])

	require.NoError(t, c.Find(ctx, bson.M{"$text": bson.M{"$search": "BREAD channels"}}, &hits))
	assert.Len(t, hits, 2)
}

func TestMemoryCollection_UniqueKey(t *testing.T) {
	c := NewMemoryCollection("wishlist", WithUniqueKey("userEmail", "blogId"))
	ctx := context.Background()

	_, err := c.Insert(ctx, bson.M{"userEmail": "a@x.com", "blogId": "p1"})
	require.NoError(t, err)

	_, err = c.Insert(ctx, bson.M{"userEmail": "a@x.com", "blogId": "p1"})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	_, err = c.Insert(ctx, bson.M{"userEmail": "b@x.com", "blogId": "p1"})
	assert.NoError(t, err)
	assert.Equal(t, 2, c.Len())
}

func TestMemoryCollection_UpdateFields(t *testing.T) {
	c := NewMemoryCollection("things")
	ctx := context.Background()

	id, err := c.Insert(ctx, models.Document{"title": "old", "category": "tech"})
	require.NoError(t, err)

	t.Run("partial replacement", func(t *testing.T) {
		matched, err := c.UpdateFields(ctx, id, models.Document{"title": "new"})
		require.NoError(t, err)
		assert.EqualValues(t, 1, matched)

		var got models.Document
		require.NoError(t, c.FindOne(ctx, bson.M{"title": "new"}, &got))
		assert.Equal(t, "tech", got["category"])
	})

	t.Run("identifier is immutable", func(t *testing.T) {
		other := primitive.NewObjectID()
		matched, err := c.UpdateFields(ctx, id, models.Document{"_id": other, "title": "newer"})
		require.NoError(t, err)
		assert.EqualValues(t, 1, matched)

		var got models.Document
		require.NoError(t, c.FindOne(ctx, bson.M{"title": "newer"}, &got))
		assert.Equal(t, id, got["_id"].(primitive.ObjectID).Hex())
	})

	t.Run("empty field set reports the match", func(t *testing.T) {
		matched, err := c.UpdateFields(ctx, id, nil)
		require.NoError(t, err)
		assert.EqualValues(t, 1, matched)
	})

	t.Run("unknown id", func(t *testing.T) {
		matched, err := c.UpdateFields(ctx, primitive.NewObjectID().Hex(), models.Document{"title": "x"})
		require.NoError(t, err)
		assert.EqualValues(t, 0, matched)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := c.UpdateFields(ctx, "not-an-id", models.Document{"title": "x"})
		assert.ErrorIs(t, err, ErrMalformedID)
	})
}

func TestMemoryCollection_Delete(t *testing.T) {
	c := NewMemoryCollection("things")
	ctx := context.Background()

	_, err := c.Insert(ctx, bson.M{"k": "v"})
	require.NoError(t, err)

	n, err := c.Delete(ctx, bson.M{"k": "v"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = c.Delete(ctx, bson.M{"k": "v"})
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
	assert.Equal(t, 0, c.Len())
}

func TestMemoryCollection_CanceledContext(t *testing.T) {
	c := NewMemoryCollection("things")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Insert(ctx, bson.M{"k": "v"})
	require.Error(t, err)
	assert.True(t, IsStoreFault(err))
	assert.True(t, errors.Is(err, context.Canceled))
}
