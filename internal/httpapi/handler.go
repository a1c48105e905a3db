package httpapi

import (
	"log/slog"

	"github.com/mamazhanov/online-store/internal/cart"
	"github.com/mamazhanov/online-store/internal/catalog"
	"github.com/mamazhanov/online-store/internal/checkout"
	"github.com/mamazhanov/online-store/internal/media"
	"github.com/mamazhanov/online-store/internal/profile"
)

// Handler bundles the storefront's dependencies for the HTTP surface.
type Handler struct {
	Catalog  catalog.Store
	Profiles profile.Store
	Carts    *cart.SessionStore
	Checkout *checkout.Service
	Uploader media.Uploader

	AdminToken string
	StaticDir  string
	Log        *slog.Logger
}

func NewHandler(cat catalog.Store, profiles profile.Store, carts *cart.SessionStore, co *checkout.Service, up media.Uploader, adminToken, staticDir string, log *slog.Logger) *Handler {
	return &Handler{
		Catalog:    cat,
		Profiles:   profiles,
		Carts:      carts,
		Checkout:   co,
		Uploader:   up,
		AdminToken: adminToken,
		StaticDir:  staticDir,
		Log:        log,
	}
}
