package checkout

import (
	"strings"

	"github.com/mamazhanov/online-store/internal/cart"
)

// Flow distinguishes the two checkout shapes: a hosted provider page the
// shopper is redirected to, and a prefilled message link that never makes
// a network call.
type Flow string

const (
	FlowHosted      Flow = "hosted"
	FlowMessageLink Flow = "message-link"
)

// Customer carries the shopper-supplied contact fields from the checkout
// form. Required fields depend on the flow: hosted checkout needs name and
// email so the provider can identify the buyer; the message link needs
// name and phone.
type Customer struct {
	Name    string `schema:"name" json:"name"`
	Email   string `schema:"email" json:"email"`
	Phone   string `schema:"phone" json:"phone"`
	Address string `schema:"address" json:"address"`
}

// Line is one priced row of the intent.
type Line struct {
	ProductID int64
	Title     string
	UnitPrice float64
	Quantity  int
}

// Intent is the finalized, priced summary handed to the payment
// collaborator. It lives only for the duration of one submission.
type Intent struct {
	Lines    []Line
	Customer Customer
	Currency string
	Total    float64
}

// BuildIntent validates the cart and customer for the given flow and
// produces an Intent. It is pure: no collaborator is touched.
func BuildIntent(lines []cart.Line, customer Customer, currency string, flow Flow) (Intent, error) {
	if len(lines) == 0 {
		return Intent{}, &ValidationError{Field: "cart", Reason: "cart is empty"}
	}
	customer.Name = strings.TrimSpace(customer.Name)
	customer.Email = strings.TrimSpace(customer.Email)
	customer.Phone = strings.TrimSpace(customer.Phone)
	customer.Address = strings.TrimSpace(customer.Address)

	if customer.Name == "" {
		return Intent{}, &ValidationError{Field: "name", Reason: "name is required"}
	}
	switch flow {
	case FlowHosted:
		if customer.Email == "" {
			return Intent{}, &ValidationError{Field: "email", Reason: "email is required"}
		}
	case FlowMessageLink:
		if customer.Phone == "" {
			return Intent{}, &ValidationError{Field: "phone", Reason: "phone is required"}
		}
	}

	intent := Intent{
		Customer: customer,
		Currency: currency,
	}
	for _, l := range lines {
		intent.Lines = append(intent.Lines, Line{
			ProductID: l.ProductID,
			Title:     l.Title,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		})
		intent.Total += l.UnitPrice * float64(l.Quantity)
	}
	return intent, nil
}
