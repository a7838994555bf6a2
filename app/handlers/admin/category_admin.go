package admin

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/gosimple/slug"
	"github.com/red-fox-ru/techshop/app/models"
)

type categoryForm struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (h *AdminHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("ListCategories: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch categories"})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}

func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var form categoryForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if form.Name == "" {
		_ = h.render.JSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "name is required"})
		return
	}
	if form.Slug == "" {
		form.Slug = slug.Make(form.Name)
	}

	category := &models.Category{Name: form.Name, Slug: form.Slug}
	if err := h.categoryRepo.Create(r.Context(), category); err != nil {
		log.Printf("CreateCategory: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create category"})
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, category)
}

func (h *AdminHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid category id"})
		return
	}

	category, err := h.categoryRepo.GetByID(r.Context(), uint(id))
	if err != nil {
		log.Printf("UpdateCategory: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch category"})
		return
	}
	if category == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "category not found"})
		return
	}

	var form categoryForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	// Slug stays immutable once products reference the category; only the
	// display name is editable.
	if form.Name != "" {
		category.Name = form.Name
	}

	if err := h.categoryRepo.Update(r.Context(), category); err != nil {
		log.Printf("UpdateCategory: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update category"})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, category)
}

// DeleteCategory removes the category and cascades to all its products.
func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid category id"})
		return
	}

	if err := h.categoryRepo.Delete(r.Context(), uint(id)); err != nil {
		log.Printf("DeleteCategory: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to delete category"})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
