package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anonto42/blogsphere/backend/internal/repositories"
	"github.com/anonto42/blogsphere/backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type testServer struct {
	e    *echo.Echo
	cols repositories.Collections
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cols := repositories.NewMemoryCollections()
	e := echo.New()
	e.Validator = validators.NewValidator()
	e.HTTPErrorHandler = HTTPErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)))

	NewPostHandler(repositories.NewPostRepository(cols.Blogs), "blog").RegisterPostRoutes(e.Group("/blogs"))
	NewPostHandler(repositories.NewPostRepository(cols.MyBlogs), "blog").RegisterPostRoutes(e.Group("/myblogs"))
	NewCommentHandler(repositories.NewCommentRepository(cols.Comments)).RegisterCommentRoutes(e.Group("/comments"))
	NewWishlistHandler(repositories.NewSavedItemRepository(cols.Wishlist)).RegisterWishlistRoutes(e.Group("/wishlist"))

	return &testServer{e: e, cols: cols}
}

func (s *testServer) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

// insertedID performs a create request and returns the acknowledged id
func (s *testServer) insertedID(t *testing.T, target, body string) string {
	t.Helper()

	rec, env := s.do(t, http.MethodPost, target, body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var ack InsertAck
	require.NoError(t, json.Unmarshal(env.Data, &ack))
	require.NotEmpty(t, ack.InsertedID)
	return ack.InsertedID
}

func count(t *testing.T, c repositories.Collection) int {
	t.Helper()
	mc, ok := c.(*repositories.MemoryCollection)
	require.True(t, ok)
	return mc.Len()
}
