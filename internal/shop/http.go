package shop

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"GlowDerma/pkg/kit"
)

const (
	maxBodyBytes = 1 << 20

	welcomeText = "Welcome to GlowDerma - Your Skincare Journey Starts Here"
	aboutHTML   = "<h3>We are a premium skincare brand committed to bringing you dermatologist-approved, clean beauty products</h3>"

	msgUnexpectedError = "An unexpected error occurred. Please try again later."
	msgOrderNotFound   = "Order Not Found"
	msgRouteNotFound   = "Route Not Found"
)

var contactDetails = map[string]string{
	"email":        "care@glowderma.com",
	"instagram":    "http://instagram.com/glowderma",
	"consultation": "http://glowderma.com/book-appointment",
}

type Server struct {
	Store Store
	Log   *zap.Logger
}

// Register wires the JSON routes onto r, including the catch-all 404. Any
// method on an unmapped path gets the same Route Not Found body the original
// served.
func (s *Server) Register(r chi.Router) {
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Get("/", s.home)
	r.Get("/about", s.about)
	r.Get("/contact", s.contact)

	r.Get("/products", s.listProducts)
	r.Post("/products", s.createItem)

	r.Get("/cart", s.readCart)
	r.Post("/cart", s.addToCart)
	r.Post("/add_to_cart", s.addItem)

	r.Get("/orders/{orderID}", s.getOrder)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		kit.WriteError(w, http.StatusNotFound, msgRouteNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		kit.WriteError(w, http.StatusNotFound, msgRouteNotFound)
	})
}

func (s *Server) home(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(welcomeText))
}

func (s *Server) about(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(aboutHTML))
}

func (s *Server) contact(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, contactDetails)
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	q := ProductQuery{
		Name:     r.URL.Query().Get("name"),
		MaxPrice: r.URL.Query().Get("maxPrice"),
	}
	kit.WriteJSON(w, http.StatusOK, FilterProducts(s.Store.Products(), q))
}

func (s *Server) createItem(w http.ResponseWriter, r *http.Request) {
	it, ok := s.decodeItem(w, r)
	if !ok {
		return
	}

	created := s.Store.AppendItem(it)
	if s.Log != nil {
		s.Log.Info("item added", zap.Int("id", created.ID))
	}
	kit.WriteJSON(w, http.StatusCreated, created)
}

// readCart mirrors the original's defect: it serves the item store, not the
// cart store, so items added via POST /cart are never visible here.
func (s *Server) readCart(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Store.Items())
}

func (s *Server) addToCart(w http.ResponseWriter, r *http.Request) {
	it, ok := s.decodeItem(w, r)
	if !ok {
		return
	}

	created := s.Store.AppendCartItem(CartItem{ID: it.ID, Product: it.Product, Price: it.Price})
	if s.Log != nil {
		s.Log.Info("cart item added", zap.Int("id", created.ID))
	}
	kit.WriteJSON(w, http.StatusCreated, created)
}

func (s *Server) addItem(w http.ResponseWriter, r *http.Request) {
	it, ok := s.decodeItem(w, r)
	if !ok {
		return
	}

	created := s.Store.AppendItem(it)
	if s.Log != nil {
		s.Log.Info("item added", zap.Int("id", created.ID))
	}
	kit.WriteJSON(w, http.StatusCreated, created)
}

// getOrder treats a non-numeric orderID as no match, not a client error.
func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "orderID"))
	if err != nil {
		kit.WriteError(w, http.StatusNotFound, msgOrderNotFound)
		return
	}

	o, found := s.Store.FindOrder(id)
	if !found {
		kit.WriteError(w, http.StatusNotFound, msgOrderNotFound)
		return
	}
	kit.WriteJSON(w, http.StatusOK, o)
}

func (s *Server) decodeItem(w http.ResponseWriter, r *http.Request) (Item, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer func() { _ = r.Body.Close() }()

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("read body failed", zap.Error(err))
		}
		kit.WriteError(w, http.StatusInternalServerError, msgUnexpectedError)
		return Item{}, false
	}

	it, err := ValidateItem(raw)
	if err != nil {
		s.writeValidationError(w, err)
		return Item{}, false
	}
	return it, true
}

func (s *Server) writeValidationError(w http.ResponseWriter, err error) {
	var missing *MissingFieldError
	var unexpected *UnexpectedFieldError

	switch {
	case errors.As(err, &missing):
		kit.WriteError(w, http.StatusBadRequest, missing.Error())
	case errors.As(err, &unexpected):
		kit.WriteError(w, http.StatusBadRequest, unexpected.Error())
	default:
		if s.Log != nil {
			s.Log.Error("create request failed", zap.Error(err))
		}
		kit.WriteError(w, http.StatusInternalServerError, msgUnexpectedError)
	}
}
