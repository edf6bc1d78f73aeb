package router

import (
	"log/slog"

	"github.com/anonto42/blogsphere/backend/internal/handlers"
	"github.com/anonto42/blogsphere/backend/internal/repositories"
	"github.com/anonto42/blogsphere/backend/pkg/config"
	"github.com/anonto42/blogsphere/backend/validators"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// New builds the Echo instance with middleware, validation and all routes
func New(cfg *config.Config, logger *slog.Logger, cols repositories.Collections, pinger handlers.Pinger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validators.NewValidator()
	e.HTTPErrorHandler = handlers.HTTPErrorHandler(logger)

	SetupMiddleware(e, cfg, logger)
	SetupRoutes(e, cols, pinger)
	return e
}

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo, cfg *config.Config, logger *slog.Logger) {
	e.Use(eMiddleware.RequestIDWithConfig(eMiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(echo.WrapMiddleware(otelhttp.NewMiddleware("blogsphere")))
	e.Use(eMiddleware.RequestLoggerWithConfig(config.RequestLoggerConfig(logger)))
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORSWithConfig(cfg.CORSConfig()))
	logger.Debug("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, cols repositories.Collections, pinger handlers.Pinger) {
	healthHandler := handlers.NewHealthHandler(pinger)
	e.GET("/", healthHandler.Liveness)
	e.GET("/health", healthHandler.Readiness)

	// --- Initialize Repositories ---
	blogRepo := repositories.NewPostRepository(cols.Blogs)
	myBlogRepo := repositories.NewPostRepository(cols.MyBlogs)
	commentRepo := repositories.NewCommentRepository(cols.Comments)
	savedItemRepo := repositories.NewSavedItemRepository(cols.Wishlist)

	// Post routes, one handler per namespace
	handlers.NewPostHandler(blogRepo, "blog").RegisterPostRoutes(e.Group("/blogs"))
	handlers.NewPostHandler(myBlogRepo, "blog").RegisterPostRoutes(e.Group("/myblogs"))

	// Comment routes
	handlers.NewCommentHandler(commentRepo).RegisterCommentRoutes(e.Group("/comments"))

	// Wishlist routes
	handlers.NewWishlistHandler(savedItemRepo).RegisterWishlistRoutes(e.Group("/wishlist"))

	slog.Debug("All routes configured.")
}
