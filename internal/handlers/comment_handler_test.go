package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/anonto42/blogsphere/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentHandler_AddAndList(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, http.MethodPost, "/comments/add",
		`{"blogId":"p1","userName":"ann","userProfile":"https://img/ann.png","commentText":"Nice post"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Comment added successfully", env.Message)
	s.insertedID(t, "/comments/add", `{"blogId":"p2","userName":"bob","userProfile":"p","commentText":"Other"}`)

	rec, env = s.do(t, http.MethodGet, "/comments/p1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var comments []models.Comment
	require.NoError(t, json.Unmarshal(env.Data, &comments))
	require.Len(t, comments, 1)
	assert.Equal(t, "Nice post", comments[0].CommentText)
	assert.Equal(t, "p1", comments[0].BlogID)
	assert.False(t, comments[0].ID.IsZero())
	assert.False(t, comments[0].Timestamp.IsZero())
}

func TestCommentHandler_ListEmpty(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, http.MethodGet, "/comments/nothing-here", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestCommentHandler_MissingFields(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, http.MethodPost, "/comments/add", `{"blogId":"p1","userName":"ann","userProfile":"p"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Missing required fields: commentText", env.Error)
	assert.Equal(t, 0, count(t, s.cols.Comments))
}
