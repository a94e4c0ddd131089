package httpapi

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/dwikikusuma/rocketshoes/internal/catalog/app"
)

type Server struct {
	svc *app.Service
	log *slog.Logger
}

func NewServer(svc *app.Service, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{svc: svc, log: log}
}

func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "catalogd",
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})
	app.Use(recover.New())

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/products", s.listProducts)
	app.Get("/products/:id", s.getProduct)
	app.Get("/stock/:id", s.getStock)
	return app
}

func (s *Server) listProducts(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("_limit", "0"))
	if err != nil {
		return app.ErrInvalidInput
	}
	products, err := s.svc.ListProducts(c.UserContext(), c.Query("q"), limit)
	if err != nil {
		return err
	}
	return c.JSON(products)
}

func (s *Server) getProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return app.ErrInvalidInput
	}
	p, err := s.svc.GetProduct(c.UserContext(), int64(id))
	if err != nil {
		return err
	}
	return c.JSON(p)
}

func (s *Server) getStock(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return app.ErrInvalidInput
	}
	st, err := s.svc.GetStock(c.UserContext(), int64(id))
	if err != nil {
		return err
	}
	return c.JSON(st)
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, app.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &fe):
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	default:
		s.log.Error("catalog request failed", slog.String("path", c.Path()), slog.Any("err", err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}
