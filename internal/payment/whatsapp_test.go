package payment

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamazhanov/online-store/internal/checkout"
	"github.com/mamazhanov/online-store/internal/profile"
)

type fakeProfiles struct {
	p   profile.Profile
	err error
}

func (f *fakeProfiles) Fetch(context.Context) (profile.Profile, error) { return f.p, f.err }
func (f *fakeProfiles) Save(context.Context, profile.Profile) error    { return nil }

func testIntent() checkout.Intent {
	return checkout.Intent{
		Lines: []checkout.Line{
			{ProductID: 1, Title: "Bracelet", UnitPrice: 10, Quantity: 2},
			{ProductID: 2, Title: "Scarf", UnitPrice: 5, Quantity: 1},
		},
		Customer: checkout.Customer{Name: "Aibek", Phone: "+996 700 123 456"},
		Currency: "usd",
		Total:    25,
	}
}

func TestWhatsAppLink(t *testing.T) {
	w := NewWhatsApp(&fakeProfiles{p: profile.Profile{WhatsAppNumber: "+996 (700) 123-456"}})

	link, err := w.CreateSession(context.Background(), testIntent())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/996700123456?text="), link)

	u, err := url.Parse(link)
	require.NoError(t, err)
	text := u.Query().Get("text")
	assert.Contains(t, text, "New order from Aibek")
	assert.Contains(t, text, "2x Bracelet = 20.00")
	assert.Contains(t, text, "1x Scarf = 5.00")
	assert.Contains(t, text, "Total: 25.00 USD")
}

func TestWhatsAppLinkIsDeterministic(t *testing.T) {
	w := NewWhatsApp(&fakeProfiles{p: profile.Profile{WhatsAppNumber: "996700123456"}})
	a, err := w.CreateSession(context.Background(), testIntent())
	require.NoError(t, err)
	b, err := w.CreateSession(context.Background(), testIntent())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestWhatsAppMissingNumber(t *testing.T) {
	w := NewWhatsApp(&fakeProfiles{p: profile.Profile{}})
	_, err := w.CreateSession(context.Background(), testIntent())
	assert.Error(t, err)
}

func TestWhatsAppFlow(t *testing.T) {
	w := NewWhatsApp(&fakeProfiles{})
	assert.Equal(t, checkout.FlowMessageLink, w.Flow())
}
