package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/dwikikusuma/rocketshoes/internal/cart/app"
	"github.com/dwikikusuma/rocketshoes/internal/cart/infra/catalogapi"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// httpStatusFromError maps a cart failure to an HTTP status, a stable code
// and the notification text shown to the shopper.
func httpStatusFromError(err error) (int, string, string) {
	msg := app.Message(err, "internal error")

	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code, codeForStatus(fe.Code), fe.Message
	case errors.Is(err, app.ErrInvalidInput):
		return http.StatusBadRequest, "INVALID_ARGUMENT", msg
	case errors.Is(err, app.ErrOutOfStock):
		return http.StatusConflict, "OUT_OF_STOCK", msg
	case errors.Is(err, app.ErrProductNotInCart):
		return http.StatusNotFound, "NOT_IN_CART", msg
	case errors.Is(err, app.ErrEmptyCart):
		return http.StatusNotFound, "EMPTY_CART", msg
	case errors.Is(err, catalogapi.ErrProductNotFound), errors.Is(err, catalogapi.ErrStockNotFound):
		return http.StatusNotFound, "NOT_FOUND", msg
	case errors.Is(err, catalogapi.ErrCatalogUnavailable), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "UNAVAILABLE", msg
	default:
		return http.StatusInternalServerError, "INTERNAL", msg
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "INVALID_ARGUMENT"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusServiceUnavailable:
		return "UNAVAILABLE"
	default:
		return "INTERNAL"
	}
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	status, code, msg := httpStatusFromError(err)
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", slog.String("path", c.Path()), slog.Any("err", err))
	}
	return c.Status(status).JSON(fiber.Map{"error": errorBody{Code: code, Message: msg}})
}
