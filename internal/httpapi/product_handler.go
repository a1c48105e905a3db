package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mamazhanov/online-store/internal/catalog"
)

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Catalog.List(r.Context())
	if err != nil {
		h.Log.Error("list products", "err", err)
		respondError(w, http.StatusInternalServerError, "db_error", "could not load products")
		return
	}
	if products == nil {
		products = []catalog.Product{}
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_id", "invalid product id")
		return
	}
	p, err := h.Catalog.Get(r.Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	if err != nil {
		h.Log.Error("get product", "id", id, "err", err)
		respondError(w, http.StatusInternalServerError, "db_error", "could not load product")
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// createProduct accepts a multipart form with fields title, description,
// price, category_id and an optional image file.
func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(20 << 20); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_form", "parse multipart: "+err.Error())
		return
	}
	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		respondError(w, http.StatusBadRequest, "invalid_form", "title required")
		return
	}
	price, _ := strconv.ParseFloat(r.FormValue("price"), 64)
	if price < 0 {
		respondError(w, http.StatusBadRequest, "invalid_form", "price must not be negative")
		return
	}
	categoryID, _ := strconv.ParseInt(r.FormValue("category_id"), 10, 64)

	p := catalog.Product{
		Title:       title,
		Description: r.FormValue("description"),
		Price:       price,
		CategoryID:  categoryID,
	}

	if file, _, err := r.FormFile("file"); err == nil {
		defer file.Close()
		img, err := h.Uploader.Upload(r.Context(), file)
		if err != nil {
			h.Log.Error("image upload", "err", err)
			respondError(w, http.StatusInternalServerError, "upload_failed", "upload failed")
			return
		}
		p.ImageURL = img.URL
		p.ImagePublicID = img.PublicID
	}

	id, err := h.Catalog.Create(r.Context(), p)
	if errors.Is(err, catalog.ErrNotFound) {
		respondError(w, http.StatusBadRequest, "invalid_form", "category not found")
		return
	}
	if err != nil {
		h.Log.Error("create product", "err", err)
		respondError(w, http.StatusInternalServerError, "db_error", "could not save product")
		return
	}
	h.Log.Info("product created", "id", id, "title", title)
	respondJSON(w, http.StatusOK, map[string]any{"id": id, "image_url": p.ImageURL})
}

// updateProduct applies a partial update: only fields present in the
// multipart form are touched.
func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_id", "invalid product id")
		return
	}
	if err := r.ParseMultipartForm(20 << 20); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_form", "parse multipart: "+err.Error())
		return
	}

	var upd catalog.ProductUpdate
	mf := r.MultipartForm
	if vals, ok := mf.Value["title"]; ok && len(vals) > 0 {
		upd.Title = &vals[0]
	}
	if vals, ok := mf.Value["description"]; ok && len(vals) > 0 {
		upd.Description = &vals[0]
	}
	if vals, ok := mf.Value["price"]; ok && len(vals) > 0 {
		if v, err := strconv.ParseFloat(vals[0], 64); err == nil && v >= 0 {
			upd.Price = &v
		}
	}
	if vals, ok := mf.Value["category_id"]; ok && len(vals) > 0 {
		if v, err := strconv.ParseInt(vals[0], 10, 64); err == nil {
			upd.CategoryID = &v
		}
	}
	if file, _, ferr := r.FormFile("file"); ferr == nil {
		defer file.Close()
		img, err := h.Uploader.Upload(r.Context(), file)
		if err != nil {
			h.Log.Error("image upload", "err", err)
			respondError(w, http.StatusInternalServerError, "upload_failed", "upload failed")
			return
		}
		upd.ImageURL = &img.URL
		upd.ImagePublicID = &img.PublicID
	}

	err = h.Catalog.Update(r.Context(), id, upd)
	if errors.Is(err, catalog.ErrNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	if err != nil {
		h.Log.Error("update product", "id", id, "err", err)
		respondError(w, http.StatusInternalServerError, "db_error", "could not update product")
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_id", "invalid product id")
		return
	}
	p, err := h.Catalog.Delete(r.Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	if err != nil {
		h.Log.Error("delete product", "id", id, "err", err)
		respondError(w, http.StatusInternalServerError, "db_error", "could not delete product")
		return
	}
	if p.ImagePublicID != "" {
		// Image cleanup is best effort; the product row is already gone.
		if err := h.Uploader.Destroy(r.Context(), p.ImagePublicID); err != nil {
			h.Log.Warn("destroy image", "public_id", p.ImagePublicID, "err", err)
		}
	}
	h.Log.Info("product deleted", "id", id)
	w.WriteHeader(http.StatusOK)
}
