package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/red-fox-ru/techshop/app/services"
	"github.com/red-fox-ru/techshop/app/utils/format"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	catalogSvc *services.CatalogService
	render     *render.Render
}

func NewProductHandler(catalogSvc *services.CatalogService, render *render.Render) *ProductHandler {
	return &ProductHandler{catalogSvc: catalogSvc, render: render}
}

// Detail serves GET /products/{ct_model}/{slug}.
func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productType := vars["ct_model"]
	slug := vars["slug"]

	product, err := h.catalogSvc.GetProduct(r.Context(), productType, slug)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
			return
		}
		log.Printf("ProductHandler.Detail: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch product"})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"product_type":    product.ProductType(),
		"product":         product,
		"price_formatted": format.Price(product.Base().Price),
	})
}
