package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dwikikusuma/rocketshoes/internal/cart/domain"
)

var (
	ErrOutOfStock       = errors.New("requested quantity is out of stock")
	ErrProductNotInCart = errors.New("product is not in the cart")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrInvalidInput     = errors.New("invalid input")
)

const (
	MsgOutOfStock   = "Requested quantity is out of stock"
	MsgAddFailed    = "Error adding product"
	MsgRemoveFailed = "Error removing product"
	MsgUpdateFailed = "Error changing product quantity"
	MsgLoadFailed   = "Error loading cart"
	MsgQuoteFailed  = "Error calculating cart total"
	MsgEmptyCart    = "Your cart is empty"
)

// Failure carries the notification shown to the user together with the cause.
type Failure struct {
	Notification domain.Notification
	Err          error
}

func (f *Failure) Error() string {
	return string(f.Notification.Op) + ": " + f.Err.Error()
}

func (f *Failure) Unwrap() error { return f.Err }

// Message returns the user-facing text for err, or fallback when err is not a Failure.
func Message(err error, fallback string) string {
	var f *Failure
	if errors.As(err, &f) {
		return f.Notification.Message
	}
	return fallback
}

func messageFor(op domain.Op, err error) string {
	switch {
	case errors.Is(err, ErrOutOfStock):
		return MsgOutOfStock
	case errors.Is(err, ErrEmptyCart):
		return MsgEmptyCart
	}
	switch op {
	case domain.OpAdd:
		return MsgAddFailed
	case domain.OpRemove:
		return MsgRemoveFailed
	case domain.OpUpdateAmount:
		return MsgUpdateFailed
	case domain.OpQuote:
		return MsgQuoteFailed
	default:
		return MsgLoadFailed
	}
}

func (s *Service) fail(ctx context.Context, cartID string, op domain.Op, err error) error {
	n := domain.Notification{
		CartID:  cartID,
		Op:      op,
		Level:   domain.LevelError,
		Message: messageFor(op, err),
	}
	s.log.WarnContext(ctx, "cart operation failed",
		slog.String("cart_id", cartID),
		slog.String("op", string(op)),
		slog.Any("err", err),
	)
	s.notifier.Notify(ctx, n)
	return &Failure{Notification: n, Err: err}
}

// LogNotifier writes notifications to a slog logger. Used where no UI is attached.
type LogNotifier struct {
	Log *slog.Logger
}

func (n LogNotifier) Notify(ctx context.Context, note domain.Notification) {
	log := n.Log
	if log == nil {
		log = slog.Default()
	}
	log.InfoContext(ctx, "notification",
		slog.String("cart_id", note.CartID),
		slog.String("op", string(note.Op)),
		slog.String("level", string(note.Level)),
		slog.String("message", note.Message),
	)
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, domain.Event) error { return nil }
