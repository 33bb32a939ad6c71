package api

import (
	"net/http"

	"storefront/internal/store"
	"storefront/pkg/kit"
)

// cartLine is a cart row joined with its product record. A row whose
// product no longer exists surfaces without the product field.
type cartLine struct {
	ID       int            `json:"id"`
	Product  *store.Product `json:"product,omitempty"`
	Quantity int            `json:"quantity"`
}

func (s *Server) getCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := intParam(r, "userId")
	if !ok {
		kit.WriteError(w, r, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	items := s.Store.CartItems(userID)
	lines := make([]cartLine, 0, len(items))
	for _, it := range items {
		line := cartLine{ID: it.ID, Quantity: it.Quantity}
		if p, found := s.Store.ProductByID(it.ProductID); found {
			line.Product = &p
		}
		lines = append(lines, line)
	}

	kit.WriteJSON(w, http.StatusOK, lines)
}

type addToCartReq struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

func (s *Server) addToCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := intParam(r, "userId")
	if !ok {
		kit.WriteError(w, r, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	var req addToCartReq
	if err := decodeBody(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "Invalid request body", map[string]any{"cause": err.Error()})
		return
	}
	if req.Quantity <= 0 {
		kit.WriteError(w, r, http.StatusBadRequest, "Quantity must be a positive number", nil)
		return
	}

	if _, found := s.Store.ProductByID(req.ProductID); !found {
		kit.WriteError(w, r, http.StatusNotFound, "Product not found", map[string]any{"id": req.ProductID})
		return
	}

	item := s.Store.AddToCart(req.ProductID, userID, req.Quantity)
	kit.WriteJSON(w, http.StatusCreated, item)
}

type updateCartReq struct {
	Quantity int `json:"quantity"`
}

func (s *Server) updateCartItem(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		kit.WriteError(w, r, http.StatusBadRequest, "Invalid cart item ID", nil)
		return
	}

	var req updateCartReq
	if err := decodeBody(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "Invalid request body", map[string]any{"cause": err.Error()})
		return
	}
	if req.Quantity <= 0 {
		kit.WriteError(w, r, http.StatusBadRequest, "Quantity must be a positive number", nil)
		return
	}

	item, found := s.Store.UpdateCartItem(id, req.Quantity)
	if !found {
		kit.WriteError(w, r, http.StatusNotFound, "Cart item not found or removed", map[string]any{"id": id})
		return
	}

	kit.WriteJSON(w, http.StatusOK, item)
}

func (s *Server) removeCartItem(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		kit.WriteError(w, r, http.StatusBadRequest, "Invalid cart item ID", nil)
		return
	}

	if !s.Store.RemoveCartItem(id) {
		kit.WriteError(w, r, http.StatusNotFound, "Cart item not found", map[string]any{"id": id})
		return
	}

	kit.WriteMessage(w, http.StatusOK, "Item removed from cart")
}
