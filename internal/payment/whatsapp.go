package payment

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/mamazhanov/online-store/internal/checkout"
	"github.com/mamazhanov/online-store/internal/profile"
)

// WhatsApp builds a wa.me link with the order summary prefilled. There is
// no network call and no redirect back: the "session" is just a URI the
// storefront opens. The destination number comes from the store profile so
// the admin can change it without a restart.
type WhatsApp struct {
	profiles profile.Store
}

func NewWhatsApp(profiles profile.Store) *WhatsApp {
	return &WhatsApp{profiles: profiles}
}

func (p *WhatsApp) Flow() checkout.Flow { return checkout.FlowMessageLink }

func (p *WhatsApp) CreateSession(ctx context.Context, intent checkout.Intent) (string, error) {
	prof, err := p.profiles.Fetch(ctx)
	if err != nil {
		return "", fmt.Errorf("fetch store profile: %w", err)
	}
	number := digitsOnly(prof.WhatsAppNumber)
	if number == "" {
		return "", errors.New("store profile has no WhatsApp number")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "New order from %s\n", intent.Customer.Name)
	if intent.Customer.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", intent.Customer.Phone)
	}
	if intent.Customer.Address != "" {
		fmt.Fprintf(&b, "Address: %s\n", intent.Customer.Address)
	}
	for _, l := range intent.Lines {
		fmt.Fprintf(&b, "%dx %s = %.2f\n", l.Quantity, l.Title, l.UnitPrice*float64(l.Quantity))
	}
	fmt.Fprintf(&b, "Total: %.2f %s", intent.Total, strings.ToUpper(intent.Currency))

	return "https://wa.me/" + number + "?text=" + url.QueryEscape(b.String()), nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
