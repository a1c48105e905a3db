package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mamazhanov/online-store/internal/cart"
	"github.com/mamazhanov/online-store/internal/catalog"
)

type cartDTO struct {
	Lines []cart.Line `json:"lines"`
	Total float64     `json:"total"`
	Count int         `json:"count"`
}

func cartView(c *cart.Cart) cartDTO {
	lines := c.Lines()
	if lines == nil {
		lines = []cart.Line{}
	}
	return cartDTO{Lines: lines, Total: c.Total(), Count: c.Count()}
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	sid := h.cartSession(w, r)
	respondJSON(w, http.StatusOK, cartView(h.Carts.Get(sid)))
}

// addCartItem adds one unit of a product, capturing the catalog price at
// add time.
func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	sid := h.cartSession(w, r)
	var payload struct {
		ProductID int64 `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	p, err := h.Catalog.Get(r.Context(), payload.ProductID)
	if errors.Is(err, catalog.ErrNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	if err != nil {
		h.Log.Error("add cart item", "product", payload.ProductID, "err", err)
		respondError(w, http.StatusInternalServerError, "db_error", "could not load product")
		return
	}
	c := h.Carts.Get(sid)
	c.AddItem(p.ID, p.Title, p.Price, p.ImageURL)
	respondJSON(w, http.StatusOK, cartView(c))
}

// changeCartQuantity adjusts a line by a signed delta; quantities at or
// below zero drop the line. Unknown products are a quiet no-op, matching
// the accumulator contract.
func (h *Handler) changeCartQuantity(w http.ResponseWriter, r *http.Request) {
	sid := h.cartSession(w, r)
	var payload struct {
		ProductID int64 `json:"product_id"`
		Delta     int   `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	c := h.Carts.Get(sid)
	c.ChangeQuantity(payload.ProductID, payload.Delta)
	respondJSON(w, http.StatusOK, cartView(c))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	sid := h.cartSession(w, r)
	h.Carts.Get(sid).Clear()
	respondJSON(w, http.StatusOK, cartView(h.Carts.Get(sid)))
}
