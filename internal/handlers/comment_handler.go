package handlers

import (
	"time"

	"github.com/anonto42/blogsphere/backend/internal/models"
	"github.com/anonto42/blogsphere/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles comment HTTP requests
type CommentHandler struct {
	commentRepository repositories.CommentRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository) *CommentHandler {
	return &CommentHandler{commentRepository: commentRepo}
}

// RegisterCommentRoutes registers comment routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.GET("/:blogId", h.GetComments)
	g.POST("/add", h.CreateComment)
}

// GetComments lists the comments of one blog
func (h *CommentHandler) GetComments(c echo.Context) error {
	comments, err := h.commentRepository.GetCommentsByBlogID(c.Request().Context(), c.Param("blogId"))
	if err != nil {
		return storeError(err, "comment", "Failed to fetch comments.")
	}
	return ok(c, "", comments)
}

// CreateComment adds a comment. The referenced blog is not looked up.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	var req models.CreateCommentRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.commentRepository.CreateComment(c.Request().Context(), req.ToComment(time.Now().UTC()))
	if err != nil {
		return storeError(err, "comment", "Failed to add comment.")
	}
	return ok(c, "Comment added successfully", InsertAck{InsertedID: id})
}
