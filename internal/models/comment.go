package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment represents a comment on a blog post. BlogID is a denormalized copy of the
// post identifier and is never checked against the blogs collection.
type Comment struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	BlogID      string             `json:"blogId" bson:"blogId"`
	UserName    string             `json:"userName" bson:"userName"`
	UserProfile string             `json:"userProfile" bson:"userProfile"`
	CommentText string             `json:"commentText" bson:"commentText"`
	Timestamp   time.Time          `json:"timestamp" bson:"timestamp"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	BlogID      string `json:"blogId" validate:"required"`
	UserName    string `json:"userName" validate:"required"`
	UserProfile string `json:"userProfile" validate:"required"`
	CommentText string `json:"commentText" validate:"required"`
}

// ToComment builds the document to insert. The timestamp is assigned by the server.
func (r CreateCommentRequest) ToComment(now time.Time) *Comment {
	return &Comment{
		BlogID:      r.BlogID,
		UserName:    r.UserName,
		UserProfile: r.UserProfile,
		CommentText: r.CommentText,
		Timestamp:   now,
	}
}
