package api

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"go.uber.org/zap"

	"storefront/internal/store"
	"storefront/pkg/kit"
)

const (
	// Orders below this subtotal pay the flat shipping fee; at or above
	// it shipping is free.
	freeShippingMin = 1000.0
	shippingFee     = 99.99
	taxRate         = 0.21

	orderStatusCompleted = "completed"
)

var (
	emailRe      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	zipRe        = regexp.MustCompile(`^\d{5}$`)
	cardNumberRe = regexp.MustCompile(`^\d{16}$`)
	expirationRe = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvRe        = regexp.MustCompile(`^\d{3,4}$`)
)

type checkoutReq struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Zip        string `json:"zip"`
	CardNumber string `json:"cardNumber"`
	Expiration string `json:"expiration"`
	CVV        string `json:"cvv"`
}

func (f checkoutReq) validate() string {
	switch {
	case f.Name == "":
		return "Name is required"
	case !emailRe.MatchString(f.Email):
		return "Invalid email format"
	case f.Address == "":
		return "Address is required"
	case f.City == "":
		return "City is required"
	case !zipRe.MatchString(f.Zip):
		return "Zip code must be 5 digits"
	case !cardNumberRe.MatchString(f.CardNumber):
		return "Card number must be 16 digits"
	case !expirationRe.MatchString(f.Expiration):
		return "Expiration date format: MM/YY"
	case !cvvRe.MatchString(f.CVV):
		return "CVV must be 3 or 4 digits"
	}
	return ""
}

// checkout converts the user's cart into an immutable order and empties
// the cart. Order creation and cart clearing are two separate store
// calls; a crash in between leaves both the order and the stale cart
// rows behind.
func (s *Server) checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := intParam(r, "userId")
	if !ok {
		kit.WriteError(w, r, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	var req checkoutReq
	if err := decodeBody(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "Invalid request body", map[string]any{"cause": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		kit.WriteError(w, r, http.StatusBadRequest, msg, nil)
		return
	}

	items := s.Store.CartItems(userID)
	if len(items) == 0 {
		kit.WriteError(w, r, http.StatusBadRequest, "Cart is empty", nil)
		return
	}

	total := s.cartSubtotal(items)
	if total < freeShippingMin {
		total += shippingFee
	}
	total += total * taxRate

	order := s.Store.CreateOrder(store.OrderInput{
		UserID:          userID,
		OrderDate:       time.Now().UTC().Format(time.RFC3339),
		TotalAmount:     formatAmount(total),
		ShippingAddress: fmt.Sprintf("%s, %s, %s", req.Address, req.City, req.Zip),
		PaymentDetails: store.PaymentDetails{
			Name:       req.Name,
			Email:      req.Email,
			CardNumber: req.CardNumber,
			Expiration: req.Expiration,
			CVV:        req.CVV,
		},
		Status: orderStatusCompleted,
	})

	s.Store.ClearCart(userID)

	kit.WriteJSON(w, http.StatusCreated, order)
}

// cartSubtotal sums unit price times quantity over the cart. Rows whose
// product is missing or whose price does not parse contribute nothing.
func (s *Server) cartSubtotal(items []store.CartItem) float64 {
	var subtotal float64
	for _, it := range items {
		p, found := s.Store.ProductByID(it.ProductID)
		if !found {
			continue
		}
		price, err := strconv.ParseFloat(p.Price, 64)
		if err != nil {
			if s.Log != nil {
				s.Log.Warn("unparseable product price",
					zap.Int("product_id", p.ID), zap.String("price", p.Price))
			}
			continue
		}
		subtotal += price * float64(it.Quantity)
	}
	return subtotal
}

// formatAmount renders a money amount as its shortest decimal text.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := intParam(r, "userId")
	if !ok {
		kit.WriteError(w, r, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, s.Store.OrdersByUserID(userID))
}
