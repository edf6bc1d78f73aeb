package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/anonto42/blogsphere/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

const duplicateSavedItemMessage = "This blog is already in your wishlist."

// storeError translates a repository error into the HTTP error for resource.
// Anything that is not a domain outcome becomes a 500 carrying failMsg.
func storeError(err error, resource, failMsg string) *echo.HTTPError {
	switch {
	case errors.Is(err, repositories.ErrMalformedID):
		return echo.NewHTTPError(http.StatusBadRequest, "invalid "+resource+" id").SetInternal(err)
	case errors.Is(err, repositories.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, resource+" not found").SetInternal(err)
	case errors.Is(err, repositories.ErrDuplicateSavedItem):
		return echo.NewHTTPError(http.StatusBadRequest, duplicateSavedItemMessage).SetInternal(err)
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, failMsg).SetInternal(err)
	}
}

// HTTPErrorHandler renders every error in the Response envelope and logs server faults.
func HTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := http.StatusText(code)
		cause := err

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if s, isString := he.Message.(string); isString {
				msg = s
			} else {
				msg = fmt.Sprint(he.Message)
			}
			if he.Internal != nil {
				cause = he.Internal
			}
		}

		req := c.Request()
		if code >= http.StatusInternalServerError {
			logger.ErrorContext(req.Context(), "request failed",
				"method", req.Method,
				"uri", req.RequestURI,
				"status", code,
				"err", cause,
			)
		} else {
			logger.DebugContext(req.Context(), "request rejected", "status", code, "err", cause)
		}

		if req.Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, Response{Success: false, Error: msg})
		}
		if err != nil {
			logger.Error("failed to write error response", "err", err)
		}
	}
}
