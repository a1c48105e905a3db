package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mamazhanov/online-store/internal/catalog"
)

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.Catalog.Categories(r.Context())
	if err != nil {
		h.Log.Error("list categories", "err", err)
		respondError(w, http.StatusInternalServerError, "db_error", "could not load categories")
		return
	}
	if cats == nil {
		cats = []catalog.Category{}
	}
	respondJSON(w, http.StatusOK, cats)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		respondError(w, http.StatusBadRequest, "invalid_form", "name required")
		return
	}
	c, err := h.Catalog.CreateCategory(r.Context(), payload.Name)
	if err != nil {
		h.Log.Error("create category", "err", err)
		respondError(w, http.StatusInternalServerError, "db_error", "could not save category")
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (h *Handler) renameCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_id", "invalid category id")
		return
	}
	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		respondError(w, http.StatusBadRequest, "invalid_form", "name required")
		return
	}
	err = h.Catalog.RenameCategory(r.Context(), id, payload.Name)
	if errors.Is(err, catalog.ErrNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "category not found")
		return
	}
	if err != nil {
		h.Log.Error("rename category", "id", id, "err", err)
		respondError(w, http.StatusInternalServerError, "db_error", "could not update category")
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_id", "invalid category id")
		return
	}
	err = h.Catalog.DeleteCategory(r.Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "category not found")
		return
	}
	if err != nil {
		h.Log.Error("delete category", "id", id, "err", err)
		respondError(w, http.StatusInternalServerError, "db_error", "could not delete category")
		return
	}
	w.WriteHeader(http.StatusOK)
}
