package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/anonto42/blogsphere/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// SavedItemRepository defines the interface for wishlist operations
type SavedItemRepository interface {
	Reserve(ctx context.Context, userEmail, blogID string) error
	SaveItem(ctx context.Context, item *models.SavedItem) (string, error)
	GetSavedItemsByUser(ctx context.Context, userEmail string) ([]models.SavedItem, error)
	RemoveItem(ctx context.Context, userEmail, blogID string) error
}

type savedItemRepository struct {
	collection Collection
}

// NewSavedItemRepository creates a SavedItemRepository over the given collection
func NewSavedItemRepository(collection Collection) SavedItemRepository {
	return &savedItemRepository{collection: collection}
}

func ownerFilter(userEmail, blogID string) bson.M {
	return bson.M{"userEmail": userEmail, "blogId": blogID}
}

// Reserve returns ErrDuplicateSavedItem when the owner already saved blogID.
// The check takes no lock; the unique index on (userEmail, blogId) settles races.
func (r *savedItemRepository) Reserve(ctx context.Context, userEmail, blogID string) error {
	var existing models.SavedItem
	err := r.collection.FindOne(ctx, ownerFilter(userEmail, blogID), &existing)
	switch {
	case err == nil:
		return ErrDuplicateSavedItem
	case errors.Is(err, ErrNotFound):
		return nil
	default:
		return err
	}
}

// SaveItem reserves the (owner, item) pair and inserts the snapshot
func (r *savedItemRepository) SaveItem(ctx context.Context, item *models.SavedItem) (string, error) {
	if err := r.Reserve(ctx, item.UserEmail, item.BlogID); err != nil {
		return "", err
	}

	id, err := r.collection.Insert(ctx, item)
	if err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			return "", ErrDuplicateSavedItem
		}
		return "", err
	}
	if oid, err := ParseID(id); err == nil {
		item.ID = oid
	}
	return id, nil
}

// GetSavedItemsByUser lists everything the owner saved
func (r *savedItemRepository) GetSavedItemsByUser(ctx context.Context, userEmail string) ([]models.SavedItem, error) {
	items := []models.SavedItem{}
	if err := r.collection.Find(ctx, bson.M{"userEmail": userEmail}, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// RemoveItem deletes the owner's entry for blogID. Scoping by owner keeps one user
// from deleting another user's entries.
func (r *savedItemRepository) RemoveItem(ctx context.Context, userEmail, blogID string) error {
	deleted, err := r.collection.Delete(ctx, ownerFilter(userEmail, blogID))
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("remove %s item %s for %s: %w", r.collection.Name(), blogID, userEmail, ErrNotFound)
	}
	return nil
}
