package payment

import (
	"context"
	"errors"
	"math"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"

	"github.com/mamazhanov/online-store/internal/checkout"
)

// Stripe creates hosted Checkout Sessions. The shopper completes payment
// on a Stripe-controlled page and is sent back to the base URL with a
// status query parameter.
type Stripe struct {
	successURL string
	cancelURL  string
}

func NewStripe(apiKey, baseURL string) (*Stripe, error) {
	if apiKey == "" {
		return nil, errors.New("stripe: secret key is not set")
	}
	stripe.Key = apiKey
	return &Stripe{
		successURL: baseURL + "/?status=success",
		cancelURL:  baseURL + "/?status=cancel",
	}, nil
}

func (p *Stripe) Flow() checkout.Flow { return checkout.FlowHosted }

func (p *Stripe) CreateSession(ctx context.Context, intent checkout.Intent) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Params:     stripe.Params{Context: ctx},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(p.successURL),
		CancelURL:  stripe.String(p.cancelURL),
	}
	if intent.Customer.Email != "" {
		params.CustomerEmail = stripe.String(intent.Customer.Email)
	}
	for _, l := range intent.Lines {
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(int64(l.Quantity)),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(intent.Currency),
				UnitAmount: stripe.Int64(minorUnits(l.UnitPrice)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(l.Title),
				},
			},
		})
	}

	s, err := session.New(params)
	if err != nil {
		return "", err
	}
	return s.URL, nil
}

// minorUnits converts a decimal price to the smallest currency unit.
func minorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}
