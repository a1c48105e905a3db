package httpapi

import (
	"encoding/json"
	"net/http"
)

const sessionCookie = "session"

// isAdmin checks the session cookie, the X-Admin-Token header, and the
// token query parameter against the configured admin token.
func (h *Handler) isAdmin(r *http.Request) bool {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value == "admin" {
		return true
	}
	if h.AdminToken == "" {
		return false
	}
	if t := r.Header.Get("X-Admin-Token"); t != "" && t == h.AdminToken {
		return true
	}
	if t := r.URL.Query().Get("token"); t != "" && t == h.AdminToken {
		return true
	}
	return false
}

// login expects JSON {"token"} and sets the admin session cookie.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var cred struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&cred); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if h.AdminToken == "" || cred.Token != h.AdminToken {
		respondError(w, http.StatusUnauthorized, "unauthorized", "bad token")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "admin",
		Path:     "/",
		HttpOnly: true,
	})
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "", Path: "/", MaxAge: -1})
	w.WriteHeader(http.StatusOK)
}

// requireAdmin wraps admin-only handlers.
func (h *Handler) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.isAdmin(r) {
			respondError(w, http.StatusUnauthorized, "unauthorized", "admin access required")
			return
		}
		next(w, r)
	}
}
