package httpapi

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Post("/api/login", h.login)
	r.Post("/api/logout", h.logout)

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.listProducts)
		r.Get("/{id}", h.getProduct)
		r.Post("/", h.requireAdmin(h.createProduct))
		r.Put("/{id}", h.requireAdmin(h.updateProduct))
		r.Delete("/{id}", h.requireAdmin(h.deleteProduct))
	})

	r.Route("/api/categories", func(r chi.Router) {
		r.Get("/", h.listCategories)
		r.Post("/", h.requireAdmin(h.createCategory))
		r.Put("/{id}", h.requireAdmin(h.renameCategory))
		r.Delete("/{id}", h.requireAdmin(h.deleteCategory))
	})

	r.Get("/api/profile", h.getProfile)
	r.Put("/api/profile", h.requireAdmin(h.updateProfile))

	r.Route("/api/cart", func(r chi.Router) {
		r.Get("/", h.getCart)
		r.Post("/items", h.addCartItem)
		r.Post("/items/quantity", h.changeCartQuantity)
		r.Delete("/", h.clearCart)
	})

	r.Post("/api/checkout", h.submitCheckout)
	r.Get("/api/checkout/confirmation", h.checkoutConfirmation)

	if h.StaticDir != "" {
		fs := http.FileServer(http.Dir(h.StaticDir))
		r.Handle("/static/*", http.StripPrefix("/static/", fs))
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			http.ServeFile(w, req, filepath.Join(h.StaticDir, "index.html"))
		})
		r.Get("/admin", h.adminPage)
	}

	return r
}

// adminPage serves the admin panel to an authenticated admin, or sets the
// admin cookie when the secret token link is used.
func (h *Handler) adminPage(w http.ResponseWriter, r *http.Request) {
	if h.isAdmin(r) {
		if r.URL.Query().Get("token") != "" {
			http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "admin", Path: "/", HttpOnly: true})
		}
		http.ServeFile(w, r, filepath.Join(h.StaticDir, "admin.html"))
		return
	}
	http.Error(w, "forbidden", http.StatusForbidden)
}
