package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/anonto42/blogsphere/backend/internal/models"
	"github.com/anonto42/blogsphere/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// WishlistHandler handles saved item HTTP requests
type WishlistHandler struct {
	savedItemRepository repositories.SavedItemRepository
}

// NewWishlistHandler creates a new WishlistHandler
func NewWishlistHandler(savedItemRepo repositories.SavedItemRepository) *WishlistHandler {
	return &WishlistHandler{savedItemRepository: savedItemRepo}
}

// RegisterWishlistRoutes registers wishlist routes
func (h *WishlistHandler) RegisterWishlistRoutes(g *echo.Group) {
	g.GET("", h.GetWishlist)
	g.POST("/add", h.AddToWishlist)
	g.DELETE("/:blogId", h.RemoveFromWishlist)
}

// GetWishlist lists the items saved by the userEmail query parameter
func (h *WishlistHandler) GetWishlist(c echo.Context) error {
	userEmail := c.QueryParam("userEmail")
	if userEmail == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "User email is required.")
	}

	items, err := h.savedItemRepository.GetSavedItemsByUser(c.Request().Context(), userEmail)
	if err != nil {
		return storeError(err, "wishlist item", "Failed to fetch wishlist.")
	}
	return ok(c, "", items)
}

// AddToWishlist saves a snapshot of a blog for the user, once per (user, blog)
func (h *WishlistHandler) AddToWishlist(c echo.Context) error {
	var req models.CreateSavedItemRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.savedItemRepository.SaveItem(c.Request().Context(), req.ToSavedItem(time.Now().UTC()))
	if err != nil {
		return storeError(err, "wishlist item", "Failed to add to wishlist.")
	}
	return ok(c, "Blog added to wishlist", InsertAck{InsertedID: id})
}

// RemoveFromWishlist deletes the owner's entry for the blog in the path. The owner is the
// userEmail query parameter unless the JSON body carries a non-empty userEmail.
func (h *WishlistHandler) RemoveFromWishlist(c echo.Context) error {
	req := models.DeleteSavedItemRequest{
		BlogID:    c.Param("blogId"),
		UserEmail: c.QueryParam("userEmail"),
	}
	if email, err := bodyUserEmail(c); err != nil {
		return err
	} else if email != "" {
		req.UserEmail = email
	}

	if req.UserEmail == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "User email is required.")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.savedItemRepository.RemoveItem(c.Request().Context(), req.UserEmail, req.BlogID); err != nil {
		return storeError(err, "wishlist item", "Failed to remove from wishlist.")
	}
	return ok(c, "Blog removed from wishlist", nil)
}

// bodyUserEmail reads userEmail from an optional JSON body. The body is decoded as JSON
// whatever its Content-Type, since DELETE clients often omit the header.
func bodyUserEmail(c echo.Context) (string, error) {
	if c.Request().ContentLength == 0 {
		return "", nil
	}

	var body struct {
		UserEmail string `json:"userEmail"`
	}
	if err := c.Echo().JSONSerializer.Deserialize(c, &body); err != nil {
		if errors.Is(err, io.EOF) {
			return "", nil
		}
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return "", he
		}
		return "", echo.NewHTTPError(http.StatusBadRequest, "Invalid request body").SetInternal(err)
	}
	return body.UserEmail, nil
}
