package handlers

import (
	"github.com/anonto42/blogsphere/backend/internal/models"
	"github.com/anonto42/blogsphere/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// PostHandler handles HTTP requests for one post collection. The blogs and myblogs
// namespaces each get their own handler over their own repository.
type PostHandler struct {
	postRepository repositories.PostRepository
	resource       string
}

// NewPostHandler creates a new PostHandler. resource names the documents in messages.
func NewPostHandler(postRepo repositories.PostRepository, resource string) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		resource:       resource,
	}
}

// RegisterPostRoutes registers the post routes on g
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.GET("", h.GetPosts)
	g.GET("/:id", h.GetPost)
	g.POST("/add", h.CreatePost)
	g.PUT("/update/:id", h.UpdatePost)
	g.DELETE("/delete/:id", h.DeletePost)
}

// GetPosts lists posts, optionally filtered by category and a text search
func (h *PostHandler) GetPosts(c echo.Context) error {
	posts, err := h.postRepository.GetPosts(c.Request().Context(), c.QueryParam("category"), c.QueryParam("searchText"))
	if err != nil {
		return storeError(err, h.resource, "Failed to fetch "+h.resource+"s.")
	}
	return ok(c, "", posts)
}

// GetPost retrieves a post by ID
func (h *PostHandler) GetPost(c echo.Context) error {
	post, err := h.postRepository.GetPostByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return storeError(err, h.resource, "Failed to fetch "+h.resource+".")
	}
	return ok(c, "", post)
}

// CreatePost stores the request body as a new post
func (h *PostHandler) CreatePost(c echo.Context) error {
	var post models.Post
	if err := (&echo.DefaultBinder{}).BindBody(c, &post); err != nil {
		return err
	}

	id, err := h.postRepository.CreatePost(c.Request().Context(), post)
	if err != nil {
		return storeError(err, h.resource, "Failed to create "+h.resource+".")
	}
	return ok(c, h.resource+" created successfully", InsertAck{InsertedID: id})
}

// UpdatePost replaces the fields present in the body
func (h *PostHandler) UpdatePost(c echo.Context) error {
	var fields models.Document
	if err := (&echo.DefaultBinder{}).BindBody(c, &fields); err != nil {
		return err
	}

	if err := h.postRepository.UpdatePost(c.Request().Context(), c.Param("id"), fields); err != nil {
		return storeError(err, h.resource, "Failed to update "+h.resource+".")
	}
	return ok(c, h.resource+" updated successfully", nil)
}

// DeletePost deletes a post by ID
func (h *PostHandler) DeletePost(c echo.Context) error {
	if err := h.postRepository.DeletePost(c.Request().Context(), c.Param("id")); err != nil {
		return storeError(err, h.resource, "Failed to delete "+h.resource+".")
	}
	return ok(c, h.resource+" deleted successfully", nil)
}
