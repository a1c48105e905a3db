package httpapi

import "net/http"

const cartCookie = "cart_session"

// cartSession returns the shopper's cart session id, minting a new one and
// setting the cookie when absent.
func (h *Handler) cartSession(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(cartCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := h.Carts.NewSession()
	http.SetCookie(w, &http.Cookie{
		Name:     cartCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
	})
	return id
}
