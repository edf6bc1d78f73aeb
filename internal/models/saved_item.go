package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SavedItem is a wishlist entry. The display fields are a snapshot taken when the
// item was saved and are not kept in sync with the source post.
// At most one SavedItem exists per (UserEmail, BlogID).
type SavedItem struct {
	ID               primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	BlogID           string             `json:"blogId" bson:"blogId"`
	Title            string             `json:"title,omitempty" bson:"title,omitempty"`
	Image            string             `json:"image,omitempty" bson:"image,omitempty"`
	ShortDescription string             `json:"shortDescription,omitempty" bson:"shortDescription,omitempty"`
	Category         string             `json:"category,omitempty" bson:"category,omitempty"`
	Author           string             `json:"author,omitempty" bson:"author,omitempty"`
	Rating           *float64           `json:"rating,omitempty" bson:"rating,omitempty"`
	UserEmail        string             `json:"userEmail" bson:"userEmail"`
	UserName         string             `json:"userName" bson:"userName"`
	AddedAt          time.Time          `json:"addedAt" bson:"addedAt"`
}

// CreateSavedItemRequest defines the request body for adding an item to a wishlist
type CreateSavedItemRequest struct {
	UserEmail        string   `json:"userEmail" validate:"required"`
	UserName         string   `json:"userName" validate:"required"`
	BlogID           string   `json:"blogId" validate:"required"`
	Title            string   `json:"title"`
	Image            string   `json:"image"`
	ShortDescription string   `json:"shortDescription"`
	Category         string   `json:"category"`
	Author           string   `json:"author"`
	Rating           *float64 `json:"rating"`
}

// ToSavedItem builds the snapshot document to insert.
func (r CreateSavedItemRequest) ToSavedItem(now time.Time) *SavedItem {
	return &SavedItem{
		BlogID:           r.BlogID,
		Title:            r.Title,
		Image:            r.Image,
		ShortDescription: r.ShortDescription,
		Category:         r.Category,
		Author:           r.Author,
		Rating:           r.Rating,
		UserEmail:        r.UserEmail,
		UserName:         r.UserName,
		AddedAt:          now,
	}
}

// DeleteSavedItemRequest identifies the wishlist entry to remove
type DeleteSavedItemRequest struct {
	BlogID    string `param:"blogId" validate:"required"`
	UserEmail string `json:"userEmail" validate:"required"`
}
