package httpapi

import (
	"net/http"
	"strings"

	"github.com/mamazhanov/online-store/internal/profile"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.Profiles.Fetch(r.Context())
	if err != nil {
		h.Log.Error("fetch profile", "err", err)
		respondError(w, http.StatusInternalServerError, "db_error", "profile not ready")
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// updateProfile takes a multipart form with the profile fields and an
// optional avatar file.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_form", "parse multipart: "+err.Error())
		return
	}
	displayName := strings.TrimSpace(r.FormValue("display_name"))
	if displayName == "" {
		respondError(w, http.StatusBadRequest, "invalid_form", "display_name is required")
		return
	}

	current, err := h.Profiles.Fetch(r.Context())
	if err != nil {
		h.Log.Error("fetch profile", "err", err)
		respondError(w, http.StatusInternalServerError, "db_error", "profile not ready")
		return
	}

	avatarURL := current.AvatarURL
	if file, _, ferr := r.FormFile("avatar"); ferr == nil {
		defer file.Close()
		img, err := h.Uploader.Upload(r.Context(), file)
		if err != nil {
			h.Log.Error("avatar upload", "err", err)
			respondError(w, http.StatusInternalServerError, "upload_failed", "upload failed")
			return
		}
		avatarURL = img.URL
	}

	toSave := profile.Profile{
		DisplayName:    displayName,
		Username:       strings.TrimSpace(r.FormValue("username")),
		Bio:            strings.TrimSpace(r.FormValue("bio")),
		Highlight:      strings.TrimSpace(r.FormValue("highlight")),
		AvatarURL:      avatarURL,
		WhatsAppNumber: strings.TrimSpace(r.FormValue("whatsapp_number")),
	}
	if err := h.Profiles.Save(r.Context(), toSave); err != nil {
		h.Log.Error("save profile", "err", err)
		respondError(w, http.StatusInternalServerError, "db_error", "failed to save profile")
		return
	}
	respondJSON(w, http.StatusOK, toSave)
}
