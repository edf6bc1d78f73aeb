package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/anonto42/blogsphere/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
)

func TestStoreError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"malformed id", fmt.Errorf("%w: %q", repositories.ErrMalformedID, "x"), http.StatusBadRequest, "invalid blog id"},
		{"not found", fmt.Errorf("delete post: %w", repositories.ErrNotFound), http.StatusNotFound, "blog not found"},
		{"duplicate", repositories.ErrDuplicateSavedItem, http.StatusBadRequest, "This blog is already in your wishlist."},
		{"store fault", &repositories.StoreError{Op: "find", Err: errors.New("boom")}, http.StatusInternalServerError, "Failed."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := storeError(tt.err, "blog", "Failed.")
			assert.Equal(t, tt.code, he.Code)
			assert.Equal(t, tt.msg, he.Message)
			assert.ErrorIs(t, he.Internal, tt.err)
		})
	}
}

func TestHTTPErrorHandler_UnknownRoute(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Not Found", env.Error)
}

func TestHTTPErrorHandler_Head(t *testing.T) {
	s := newTestServer(t)

	rec, _ := s.do(t, http.MethodHead, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, rec.Body.Len())
}
