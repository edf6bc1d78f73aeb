package repositories

import (
	"context"
	"fmt"

	"github.com/anonto42/blogsphere/backend/internal/models"
)

// PostRepository defines the interface for post data operations. The same
// implementation serves both the blogs and the myblogs collections.
type PostRepository interface {
	GetPosts(ctx context.Context, category, searchText string) ([]models.Post, error)
	GetPostByID(ctx context.Context, id string) (models.Post, error)
	CreatePost(ctx context.Context, post models.Post) (string, error)
	UpdatePost(ctx context.Context, id string, fields models.Document) error
	DeletePost(ctx context.Context, id string) error
}

type postRepository struct {
	collection Collection
}

// NewPostRepository creates a PostRepository over the given collection
func NewPostRepository(collection Collection) PostRepository {
	return &postRepository{collection: collection}
}

// GetPosts lists the posts matching the optional filters
func (r *postRepository) GetPosts(ctx context.Context, category, searchText string) ([]models.Post, error) {
	posts := []models.Post{}
	if err := r.collection.Find(ctx, BuildPostFilter(category, searchText), &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPostByID retrieves a post by its hex identifier
func (r *postRepository) GetPostByID(ctx context.Context, id string) (models.Post, error) {
	filter, err := idFilter(id)
	if err != nil {
		return nil, err
	}

	var post models.Post
	if err := r.collection.FindOne(ctx, filter, &post); err != nil {
		return nil, err
	}
	return post, nil
}

// CreatePost inserts a post. A client-supplied _id is discarded; identifiers are store-generated.
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (string, error) {
	return r.collection.Insert(ctx, models.Document(post).Without(models.FieldID))
}

// UpdatePost replaces the given fields of a post, leaving the others untouched
func (r *postRepository) UpdatePost(ctx context.Context, id string, fields models.Document) error {
	matched, err := r.collection.UpdateFields(ctx, id, fields.Without(models.FieldID))
	if err != nil {
		return err
	}
	if matched == 0 {
		return fmt.Errorf("update %s %s: %w", r.collection.Name(), id, ErrNotFound)
	}
	return nil
}

// DeletePost deletes a post by ID
func (r *postRepository) DeletePost(ctx context.Context, id string) error {
	filter, err := idFilter(id)
	if err != nil {
		return err
	}

	deleted, err := r.collection.Delete(ctx, filter)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("delete %s %s: %w", r.collection.Name(), id, ErrNotFound)
	}
	return nil
}
