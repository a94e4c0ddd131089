package httpapi

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/dwikikusuma/rocketshoes/internal/cart/app"
	"github.com/dwikikusuma/rocketshoes/internal/cart/domain"
)

const (
	HeaderCartID = "X-Cart-ID"
	CookieCartID = "cart_id"

	localsCartID = "cart_id"
	cookieMaxAge = 30 * 24 * time.Hour
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

// App builds the fiber application with every cart route registered.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "cartd",
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          15 * time.Second,
		IdleTimeout:           60 * time.Second,
		ErrorHandler:          s.handleError,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(s.requestLog)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/readyz", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	api := app.Group("/api/cart", s.session)
	api.Get("/", s.getCart)
	api.Get("/quote", s.quote)
	api.Post("/items", s.addItem)
	api.Delete("/items/:productID", s.removeItem)
	api.Patch("/items/:productID", s.updateAmount)

	return app
}

func (s *Server) requestLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	if err != nil {
		// the error handler has not run yet; let it set the final status
		if herr := s.handleError(c, err); herr != nil {
			return herr
		}
	}
	s.log.Info("http request",
		slog.String("method", c.Method()),
		slog.String("path", c.Path()),
		slog.Int("status", c.Response().StatusCode()),
		slog.Duration("took", time.Since(start)),
		slog.Any("request_id", c.Locals(requestid.ConfigDefault.ContextKey)),
	)
	return nil
}

// session resolves the cart for this request from the header, then the
// cookie, and issues a fresh ID when neither holds a valid one.
func (s *Server) session(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Get(HeaderCartID))
	if id == "" {
		id = c.Cookies(CookieCartID)
	}
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     CookieCartID,
			Value:    id,
			Path:     "/",
			Expires:  time.Now().Add(cookieMaxAge),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	c.Locals(localsCartID, id)
	c.Set(HeaderCartID, id)
	return c.Next()
}

func cartID(c *fiber.Ctx) string {
	id, _ := c.Locals(localsCartID).(string)
	return id
}

type addItemRequest struct {
	ProductID int64 `json:"product_id"`
}

type updateAmountRequest struct {
	Amount *int `json:"amount"`
}

func (s *Server) getCart(c *fiber.Ctx) error {
	cart, err := s.svc.Cart(c.UserContext(), cartID(c))
	if err != nil {
		return err
	}
	return c.JSON(toCartResponse(cart))
}

func (s *Server) addItem(c *fiber.Ctx) error {
	var req addItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	cart, err := s.svc.AddProduct(c.UserContext(), cartID(c), req.ProductID)
	if err != nil {
		return err
	}
	return c.JSON(toCartResponse(cart))
}

func (s *Server) removeItem(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productID")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product id")
	}
	cart, err := s.svc.RemoveProduct(c.UserContext(), cartID(c), int64(productID))
	if err != nil {
		return err
	}
	return c.JSON(toCartResponse(cart))
}

func (s *Server) updateAmount(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productID")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product id")
	}
	var req updateAmountRequest
	if err := c.BodyParser(&req); err != nil || req.Amount == nil {
		return fiber.NewError(fiber.StatusBadRequest, "amount is required")
	}
	cart, err := s.svc.UpdateProductAmount(c.UserContext(), cartID(c), int64(productID), *req.Amount)
	if err != nil {
		return err
	}
	return c.JSON(toCartResponse(cart))
}

func (s *Server) quote(c *fiber.Ctx) error {
	q, err := s.svc.Quote(c.UserContext(), cartID(c))
	if err != nil {
		return err
	}
	return c.JSON(toQuoteResponse(q))
}

type itemResponse struct {
	ProductID int64  `json:"product_id"`
	Title     string `json:"title"`
	Image     string `json:"image"`
	Price     string `json:"price"`
	Amount    int    `json:"amount"`
	LineTotal string `json:"line_total"`
}

type cartResponse struct {
	ID        string         `json:"id"`
	Items     []itemResponse `json:"items"`
	ItemCount int            `json:"item_count"`
	Subtotal  string         `json:"subtotal"`
}

func toCartResponse(cart domain.Cart) cartResponse {
	items := make([]itemResponse, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, itemResponse{
			ProductID: it.ID,
			Title:     it.Title,
			Image:     it.Image,
			Price:     it.Price.StringFixed(2),
			Amount:    it.Amount,
			LineTotal: it.LineTotal().StringFixed(2),
		})
	}
	return cartResponse{
		ID:        cart.ID,
		Items:     items,
		ItemCount: cart.ItemCount(),
		Subtotal:  cart.Subtotal().StringFixed(2),
	}
}

type quoteLineResponse struct {
	ProductID int64  `json:"product_id"`
	Title     string `json:"title"`
	Amount    int    `json:"amount"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
	Available int    `json:"available"`
	InStock   bool   `json:"in_stock"`
}

type quoteResponse struct {
	CartID     string              `json:"cart_id"`
	Lines      []quoteLineResponse `json:"lines"`
	Total      string              `json:"total"`
	Shortfalls int                 `json:"shortfalls"`
}

func toQuoteResponse(q domain.Quote) quoteResponse {
	lines := make([]quoteLineResponse, 0, len(q.Lines))
	for _, ln := range q.Lines {
		lines = append(lines, quoteLineResponse{
			ProductID: ln.ProductID,
			Title:     ln.Title,
			Amount:    ln.Amount,
			UnitPrice: ln.UnitPrice.StringFixed(2),
			LineTotal: ln.LineTotal.StringFixed(2),
			Available: ln.Available,
			InStock:   ln.InStock,
		})
	}
	return quoteResponse{
		CartID:     q.CartID,
		Lines:      lines,
		Total:      q.Total.StringFixed(2),
		Shortfalls: q.Shortfalls,
	}
}
