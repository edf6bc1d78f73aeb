package repositories

import (
	"context"

	"github.com/anonto42/blogsphere/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(ctx context.Context, comment *models.Comment) (string, error)
	GetCommentsByBlogID(ctx context.Context, blogID string) ([]models.Comment, error)
}

type commentRepository struct {
	collection Collection
}

// NewCommentRepository creates a CommentRepository over the given collection
func NewCommentRepository(collection Collection) CommentRepository {
	return &commentRepository{collection: collection}
}

// CreateComment stores a comment. The referenced blog is not checked for existence.
func (r *commentRepository) CreateComment(ctx context.Context, comment *models.Comment) (string, error) {
	id, err := r.collection.Insert(ctx, comment)
	if err != nil {
		return "", err
	}
	if oid, err := ParseID(id); err == nil {
		comment.ID = oid
	}
	return id, nil
}

// GetCommentsByBlogID retrieves all comments for a specific blog
func (r *commentRepository) GetCommentsByBlogID(ctx context.Context, blogID string) ([]models.Comment, error) {
	comments := []models.Comment{}
	if err := r.collection.Find(ctx, bson.M{"blogId": blogID}, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
