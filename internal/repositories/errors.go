package repositories

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNotFound indicates no document matched an id-scoped operation
	ErrNotFound = errors.New("document not found")

	// ErrMalformedID indicates an identifier that cannot be parsed into an ObjectID
	ErrMalformedID = errors.New("malformed identifier")

	// ErrDuplicateKey indicates an insert rejected by a unique index
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrDuplicateSavedItem indicates the owner already saved this item
	ErrDuplicateSavedItem = errors.New("item already saved")
)

// StoreError reports a failure of the underlying store (connectivity, query execution).
type StoreError struct {
	Collection string
	Op         string
	Err        error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store operation %s failed on %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsStoreFault reports whether err is a store-level failure rather than a domain outcome.
func IsStoreFault(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

// ParseID converts a hex identifier into an ObjectID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrMalformedID, id)
	}
	return oid, nil
}
