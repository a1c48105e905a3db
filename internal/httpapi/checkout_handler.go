package httpapi

import (
	"errors"
	"net/http"

	"github.com/gorilla/schema"

	"github.com/mamazhanov/online-store/internal/checkout"
)

var formDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

// submitCheckout takes the checkout form (name, email, phone, address) and
// hands the session's cart to the payment collaborator. On success the
// response carries the URL the storefront must navigate to.
func (h *Handler) submitCheckout(w http.ResponseWriter, r *http.Request) {
	sid := h.cartSession(w, r)
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_form", "parse form: "+err.Error())
		return
	}
	var customer checkout.Customer
	if err := formDecoder.Decode(&customer, r.PostForm); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_form", "decode form: "+err.Error())
		return
	}

	url, err := h.Checkout.Submit(r.Context(), sid, customer)
	if err != nil {
		var vErr *checkout.ValidationError
		var cErr *checkout.CollaboratorError
		switch {
		case errors.As(err, &vErr):
			respondError(w, http.StatusUnprocessableEntity, "validation", vErr.Reason)
		case errors.Is(err, checkout.ErrSubmitInFlight):
			respondError(w, http.StatusConflict, "in_flight", "checkout already in progress")
		case errors.As(err, &cErr):
			respondError(w, http.StatusBadGateway, "payment_unavailable", "payment service failed, please try again")
		default:
			h.Log.Error("checkout submit", "err", err)
			respondError(w, http.StatusInternalServerError, "internal", "checkout failed")
		}
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"redirect_url": url})
}

// checkoutConfirmation decodes the redirect status parameter. The outcome
// is a display hint only; success additionally clears the cart.
func (h *Handler) checkoutConfirmation(w http.ResponseWriter, r *http.Request) {
	sid := h.cartSession(w, r)
	outcome := h.Checkout.Finish(sid, r.URL.Query().Get("status"))
	respondJSON(w, http.StatusOK, map[string]string{"outcome": string(outcome)})
}
