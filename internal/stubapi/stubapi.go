// Package stubapi is an in-memory stand-in for the Zenith storefront API,
// used by client and page tests. It mirrors the real backend's observable
// behavior, including the two cart wire shapes and the server-side buyer
// restriction on checkout.
package stubapi

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zenithlab/storefront-client/internal/domain"
	"github.com/zenithlab/storefront-client/internal/models"
)

const Token = "stub-access-token"

type Server struct {
	mu sync.Mutex

	User    models.User
	Profile models.Profile

	Products   []models.Product
	Categories []models.Category
	Jobs       []models.Job

	// CartMapShape switches the cart document between the array shape and
	// the productId-keyed object shape.
	CartMapShape bool

	cart map[int]int // productID -> quantity

	Orders       []models.Order
	Applications []models.JobApplication
	Inquiries    []models.SalesInquiry

	nextOrderID int
}

func New() *Server {
	return &Server{
		User: models.User{
			ID:          1,
			Username:    "testuser",
			Role:        "USER",
			AccountType: domain.AccountPersonal,
		},
		Profile: models.Profile{
			UserID:      1,
			FirstName:   "Test",
			LastName:    "User",
			Email:       "test@example.com",
			Address:     "1 Main St",
			City:        "Springfield",
			State:       "IL",
			Zip:         "62701",
			AccountType: domain.AccountPersonal,
		},
		Products: []models.Product{
			{ProductID: 1, Name: "Atlas Helper", Price: 1200, CategoryID: 1, Color: "WHITE", Stock: 10, BuyerRequirement: domain.RequirementNone},
			{ProductID: 2, Name: "Forge Titan", Price: 8500, CategoryID: 2, Color: "ORANGE", Stock: 4, BuyerRequirement: domain.RequirementBusiness},
			{ProductID: 3, Name: "Medic Sentinel", Price: 15600, CategoryID: 3, Color: "WHITE", Stock: 2, BuyerRequirement: domain.RequirementMedical},
			{ProductID: 4, Name: "Guardian X", Price: 74000, CategoryID: 4, Color: "BLACK", Stock: 1, BuyerRequirement: domain.RequirementGovernment},
		},
		Categories: []models.Category{
			{CategoryID: 1, Name: "Household"},
			{CategoryID: 2, Name: "Industrial"},
			{CategoryID: 3, Name: "Medical"},
			{CategoryID: 4, Name: "Military"},
		},
		Jobs: []models.Job{
			{JobID: 1, Title: "Robotics Engineer", Department: "Engineering", Location: "Remote"},
		},
		cart:        map[int]int{},
		nextOrderID: 1,
	}
}

// SetCart replaces the cart contents directly, for test setup.
func (s *Server) SetCart(items map[int]int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = map[int]int{}
	for id, qty := range items {
		s.cart[id] = qty
	}
}

func (s *Server) Handler() http.Handler {
	e := echo.New()
	e.HideBanner = true

	e.POST("/login", s.login)
	e.POST("/register", s.register)
	e.GET("/products", s.listProducts)
	e.GET("/products/compare", s.compareProducts)
	e.GET("/products/:id", s.getProduct)
	e.GET("/categories", s.listCategories)
	e.GET("/categories/:id", s.getCategory)
	e.GET("/jobs", s.listJobs)
	e.GET("/jobs/:id", s.getJob)
	e.POST("/job-applications", s.submitApplication)
	e.POST("/sales-inquiries", s.submitInquiry)

	authed := e.Group("", s.requireAuth)
	authed.GET("/cart", s.getCart)
	authed.DELETE("/cart", s.clearCart)
	authed.POST("/cart/products/:id", s.addToCart)
	authed.PUT("/cart/products/:id", s.updateCartItem)
	authed.GET("/profile", s.getProfile)
	authed.PUT("/profile", s.updateProfile)
	authed.POST("/orders", s.createOrder)
	authed.GET("/orders", s.listOrders)
	authed.GET("/orders/:id", s.getOrder)
	authed.GET("/admin/orders", s.adminOrders)
	authed.GET("/admin/job-applications", s.adminApplications)
	authed.GET("/admin/sales-inquiries", s.adminInquiries)

	return e
}

func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get("Authorization") != "Bearer "+Token {
			return c.String(http.StatusUnauthorized, "unauthorized")
		}
		return next(c)
	}
}

func (s *Server) login(c echo.Context) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "invalid body")
	}
	if req.Username != s.User.Username || req.Password == "" {
		return c.String(http.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(http.StatusOK, models.LoginResponse{Token: Token, User: s.User})
}

func (s *Server) register(c echo.Context) error {
	var req struct {
		Username string `json:"username"`
	}
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "invalid body")
	}
	if req.Username == s.User.Username {
		return c.String(http.StatusBadRequest, "username already exists")
	}
	return c.JSON(http.StatusCreated, models.User{ID: 2, Username: req.Username, AccountType: domain.AccountPersonal})
}

func (s *Server) listProducts(c echo.Context) error {
	out := []models.Product{}
	for _, p := range s.Products {
		if v := c.QueryParam("cat"); v != "" {
			if cat, _ := strconv.Atoi(v); p.CategoryID != cat {
				continue
			}
		}
		if v := c.QueryParam("minPrice"); v != "" {
			if min, _ := strconv.ParseFloat(v, 64); p.Price < min {
				continue
			}
		}
		if v := c.QueryParam("maxPrice"); v != "" {
			if max, _ := strconv.ParseFloat(v, 64); p.Price > max {
				continue
			}
		}
		if v := c.QueryParam("color"); v != "" && !strings.EqualFold(v, p.Color) {
			continue
		}
		out = append(out, p)
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) findProduct(id int) (models.Product, bool) {
	for _, p := range s.Products {
		if p.ProductID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (s *Server) getProduct(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	p, ok := s.findProduct(id)
	if !ok {
		return c.String(http.StatusNotFound, "product not found")
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Server) compareProducts(c echo.Context) error {
	out := []models.Product{}
	for _, part := range strings.Split(c.QueryParam("ids"), ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		if p, ok := s.findProduct(id); ok {
			out = append(out, p)
		}
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) listCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, s.Categories)
}

func (s *Server) getCategory(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	for _, cat := range s.Categories {
		if cat.CategoryID == id {
			return c.JSON(http.StatusOK, cat)
		}
	}
	return c.String(http.StatusNotFound, "category not found")
}

// cartDocument renders the cart in whichever wire shape the server is
// configured to produce.
func (s *Server) cartDocument() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	type item struct {
		Product  models.Product `json:"product"`
		Quantity int            `json:"quantity"`
	}

	ids := make([]int, 0, len(s.cart))
	for id := range s.cart {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	if s.CartMapShape {
		items := map[string]item{}
		for _, id := range ids {
			p, _ := s.findProduct(id)
			items[strconv.Itoa(id)] = item{Product: p, Quantity: s.cart[id]}
		}
		return map[string]any{"items": items}
	}

	items := []item{}
	for _, id := range ids {
		p, _ := s.findProduct(id)
		items = append(items, item{Product: p, Quantity: s.cart[id]})
	}
	return map[string]any{"items": items}
}

func (s *Server) getCart(c echo.Context) error {
	return c.JSON(http.StatusOK, s.cartDocument())
}

func (s *Server) addToCart(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if _, ok := s.findProduct(id); !ok {
		return c.String(http.StatusNotFound, "product not found")
	}
	s.mu.Lock()
	s.cart[id]++
	s.mu.Unlock()
	return c.JSON(http.StatusOK, s.cartDocument())
}

func (s *Server) updateCartItem(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "invalid body")
	}
	s.mu.Lock()
	if _, ok := s.cart[id]; ok {
		if req.Quantity < 1 {
			delete(s.cart, id)
		} else {
			s.cart[id] = req.Quantity
		}
	}
	s.mu.Unlock()
	return c.JSON(http.StatusOK, s.cartDocument())
}

func (s *Server) clearCart(c echo.Context) error {
	s.mu.Lock()
	s.cart = map[int]int{}
	s.mu.Unlock()
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) getProfile(c echo.Context) error {
	return c.JSON(http.StatusOK, s.Profile)
}

func (s *Server) updateProfile(c echo.Context) error {
	var p models.Profile
	if err := c.Bind(&p); err != nil {
		return c.String(http.StatusBadRequest, "invalid body")
	}
	s.mu.Lock()
	p.UserID = s.Profile.UserID
	s.Profile = p
	s.mu.Unlock()
	return c.JSON(http.StatusOK, p)
}

func (s *Server) createOrder(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cart) == 0 {
		return c.String(http.StatusBadRequest, "Shopping cart is empty")
	}

	var total float64
	for id, qty := range s.cart {
		p, _ := s.findProduct(id)
		if !domain.CanPurchase(s.Profile.AccountType, p.BuyerRequirement) {
			return c.String(http.StatusForbidden,
				fmt.Sprintf("Product '%s' requires a %s account", p.Name, p.BuyerRequirement))
		}
		total += p.Price * float64(qty)
	}

	order := models.Order{
		OrderID:    s.nextOrderID,
		UserID:     s.Profile.UserID,
		Date:       time.Now().Format("2006-01-02"),
		Address:    s.Profile.Address,
		City:       s.Profile.City,
		State:      s.Profile.State,
		Zip:        s.Profile.Zip,
		OrderTotal: total,
	}
	for id, qty := range s.cart {
		p, _ := s.findProduct(id)
		order.LineItems = append(order.LineItems, models.OrderLineItem{
			OrderID:    order.OrderID,
			ProductID:  id,
			SalesPrice: p.Price,
			Quantity:   qty,
		})
	}
	s.nextOrderID++
	s.Orders = append(s.Orders, order)
	s.cart = map[int]int{}

	return c.JSON(http.StatusCreated, order)
}

func (s *Server) listOrders(c echo.Context) error {
	return c.JSON(http.StatusOK, s.Orders)
}

func (s *Server) getOrder(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	for _, o := range s.Orders {
		if o.OrderID == id {
			return c.JSON(http.StatusOK, o)
		}
	}
	return c.String(http.StatusNotFound, "order not found")
}

func (s *Server) listJobs(c echo.Context) error {
	return c.JSON(http.StatusOK, s.Jobs)
}

func (s *Server) getJob(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	for _, j := range s.Jobs {
		if j.JobID == id {
			return c.JSON(http.StatusOK, j)
		}
	}
	return c.String(http.StatusNotFound, "job not found")
}

func (s *Server) submitApplication(c echo.Context) error {
	var app models.JobApplication
	if err := c.Bind(&app); err != nil {
		return c.String(http.StatusBadRequest, "invalid body")
	}
	s.mu.Lock()
	app.ApplicationID = len(s.Applications) + 1
	app.Status = "RECEIVED"
	s.Applications = append(s.Applications, app)
	s.mu.Unlock()
	return c.JSON(http.StatusCreated, app)
}

func (s *Server) submitInquiry(c echo.Context) error {
	var inq models.SalesInquiry
	if err := c.Bind(&inq); err != nil {
		return c.String(http.StatusBadRequest, "invalid body")
	}
	s.mu.Lock()
	inq.InquiryID = len(s.Inquiries) + 1
	inq.Status = "NEW"
	s.Inquiries = append(s.Inquiries, inq)
	s.mu.Unlock()
	return c.JSON(http.StatusCreated, inq)
}

func (s *Server) adminOrders(c echo.Context) error {
	return c.JSON(http.StatusOK, s.Orders)
}

func (s *Server) adminApplications(c echo.Context) error {
	return c.JSON(http.StatusOK, s.Applications)
}

func (s *Server) adminInquiries(c echo.Context) error {
	return c.JSON(http.StatusOK, s.Inquiries)
}
