package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"storefront/pkg/kit"
)

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Store.Products())
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		kit.WriteError(w, r, http.StatusBadRequest, "Invalid product ID", nil)
		return
	}

	p, found := s.Store.ProductByID(id)
	if !found {
		kit.WriteError(w, r, http.StatusNotFound, "Product not found", map[string]any{"id": id})
		return
	}

	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) productsByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	kit.WriteJSON(w, http.StatusOK, s.Store.ProductsByCategory(category))
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Store.Categories())
}
