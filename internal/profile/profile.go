package profile

import "context"

// Profile is the single-row storefront identity. WhatsAppNumber feeds the
// message-link checkout flow.
type Profile struct {
	DisplayName    string `json:"display_name"`
	Username       string `json:"username"`
	Bio            string `json:"bio"`
	Highlight      string `json:"highlight"`
	AvatarURL      string `json:"avatar_url"`
	WhatsAppNumber string `json:"whatsapp_number"`
}

type Store interface {
	Fetch(ctx context.Context) (Profile, error)
	Save(ctx context.Context, p Profile) error
}
