// Package api is the HTTP surface of the storefront: stateless JSON
// handlers over the in-memory state store.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"storefront/internal/store"
	"storefront/pkg/kit"
)

const maxBodyBytes = 1 << 20

const (
	defaultCheckoutLimit  = 10
	defaultCheckoutWindow = time.Minute
)

type Server struct {
	Store *store.Store
	Log   *zap.Logger

	// Per-IP checkout throttle; zero values fall back to defaults.
	CheckoutLimit       int
	CheckoutLimitWindow time.Duration
}

func (s *Server) Routes() http.Handler {
	limit := s.CheckoutLimit
	if limit <= 0 {
		limit = defaultCheckoutLimit
	}
	window := s.CheckoutLimitWindow
	if window <= 0 {
		window = defaultCheckoutWindow
	}
	checkoutLimiter := kit.NewIPRateLimiter(limit, window)

	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Route("/api", func(ar chi.Router) {
		ar.Get("/products", s.listProducts)
		ar.Get("/products/category/{category}", s.productsByCategory)
		ar.Get("/products/{id}", s.getProduct)
		ar.Get("/categories", s.listCategories)

		ar.Get("/cart/{userId}", s.getCart)
		ar.Post("/cart/{userId}/add", s.addToCart)
		ar.Put("/cart/update/{id}", s.updateCartItem)
		ar.Delete("/cart/remove/{id}", s.removeCartItem)

		ar.With(checkoutLimiter.Middleware).Post("/checkout/{userId}", s.checkout)
		ar.Get("/orders/{userId}", s.listOrders)
	})

	return r
}

// intParam reads a numeric URL segment; false means the segment was not
// a well-formed integer.
func intParam(r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, false
	}
	return v, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("extra data after json object")
	}
	return nil
}
