package admin

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/gosimple/slug"
	"github.com/red-fox-ru/techshop/app/models"
	"github.com/red-fox-ru/techshop/app/validators"
)

func (h *AdminHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	productType := mux.Vars(r)["ct_model"]
	if !h.variantRepo.KnownType(productType) {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "unknown product type"})
		return
	}

	products, err := h.variantRepo.GetAll(r.Context(), productType)
	if err != nil {
		log.Printf("ListProducts: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch products"})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"products": products})
}

func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	productType := mux.Vars(r)["ct_model"]
	variant := models.NewVariant(productType)
	if variant == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "unknown product type"})
		return
	}

	if err := json.NewDecoder(r.Body).Decode(variant); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if variant.Base().Slug == "" {
		variant.Base().Slug = slug.Make(variant.Base().Title)
	}

	if !h.validateProduct(w, variant) {
		return
	}

	if err := h.variantRepo.Create(r.Context(), variant); err != nil {
		log.Printf("CreateProduct: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create product"})
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, variant)
}

func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productType, id, ok := h.productRef(w, r)
	if !ok {
		return
	}

	variant, err := h.variantRepo.GetByID(r.Context(), productType, id)
	if err != nil {
		log.Printf("UpdateProduct: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch product"})
		return
	}
	if variant == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
		return
	}

	if err := json.NewDecoder(r.Body).Decode(variant); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	variant.Base().ID = id

	if !h.validateProduct(w, variant) {
		return
	}

	if err := h.variantRepo.Update(r.Context(), variant); err != nil {
		log.Printf("UpdateProduct: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update product"})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, variant)
}

func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productType, id, ok := h.productRef(w, r)
	if !ok {
		return
	}

	if err := h.variantRepo.Delete(r.Context(), productType, id); err != nil {
		log.Printf("DeleteProduct: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to delete product"})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// validateProduct runs domain validation and, on failure, responds with
// every collected violation. Returns false when the request was answered.
func (h *AdminHandler) validateProduct(w http.ResponseWriter, variant models.ProductVariant) bool {
	if err := h.validator.ValidateVariant(variant); err != nil {
		var validationErr *validators.ValidationError
		if errors.As(err, &validationErr) {
			_ = h.render.JSON(w, http.StatusUnprocessableEntity, validationErr)
			return false
		}
		log.Printf("validateProduct: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "validation failed"})
		return false
	}
	return true
}

func (h *AdminHandler) productRef(w http.ResponseWriter, r *http.Request) (string, uint, bool) {
	vars := mux.Vars(r)
	productType := vars["ct_model"]
	if !h.variantRepo.KnownType(productType) {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "unknown product type"})
		return "", 0, false
	}

	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid product id"})
		return "", 0, false
	}
	return productType, uint(id), true
}
