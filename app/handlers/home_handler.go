package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/red-fox-ru/techshop/app/models"
	"github.com/red-fox-ru/techshop/app/services"
	"github.com/red-fox-ru/techshop/app/utils/format"
	"github.com/unrolled/render"
)

type HomeHandler struct {
	catalogSvc *services.CatalogService
	render     *render.Render
}

func NewHomeHandler(catalogSvc *services.CatalogService, render *render.Render) *HomeHandler {
	return &HomeHandler{catalogSvc: catalogSvc, render: render}
}

type latestProductItem struct {
	ProductType    string                `json:"product_type"`
	Product        models.ProductVariant `json:"product"`
	PriceFormatted string                `json:"price_formatted"`
}

// LatestProducts serves the home listing. Requested types come from
// ?types=a,b (default: every known type); ?with_respect_to=x moves that
// type's items to the front.
func (h *HomeHandler) LatestProducts(w http.ResponseWriter, r *http.Request) {
	productTypes := models.AllProductTypes()
	if raw := r.URL.Query().Get("types"); raw != "" {
		productTypes = strings.Split(raw, ",")
	}
	withRespectTo := r.URL.Query().Get("with_respect_to")

	products, err := h.catalogSvc.LatestProducts(r.Context(), productTypes, withRespectTo)
	if err != nil {
		log.Printf("HomeHandler.LatestProducts: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch latest products"})
		return
	}

	items := make([]latestProductItem, len(products))
	for i, p := range products {
		items[i] = latestProductItem{
			ProductType:    p.ProductType(),
			Product:        p,
			PriceFormatted: format.Price(p.Base().Price),
		}
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"products": items,
	})
}
