package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/red-fox-ru/techshop/app/helpers"
	"github.com/red-fox-ru/techshop/app/models"
	"github.com/red-fox-ru/techshop/app/services"
	"github.com/unrolled/render"
)

type CartHandler struct {
	cartSvc *services.CartService
	render  *render.Render
}

func NewCartHandler(cartSvc *services.CartService, render *render.Render) *CartHandler {
	return &CartHandler{cartSvc: cartSvc, render: render}
}

type addItemRequest struct {
	ProductType string `json:"product_type"`
	ProductID   uint   `json:"product_id"`
	Qty         int    `json:"qty"`
}

type setQtyRequest struct {
	Qty int `json:"qty"`
}

// GetCart returns the user's cart plus advisory stale-price warnings for
// lines whose product was repriced since they were last touched.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID := h.userID(r)

	cart, err := h.cartSvc.GetUserCart(r.Context(), userID)
	if err != nil {
		log.Printf("CartHandler.GetCart: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch cart"})
		return
	}

	warnings, err := h.cartSvc.StaleLines(r.Context(), cart)
	if err != nil {
		log.Printf("CartHandler.GetCart: stale check failed: %v", err)
		warnings = nil
	}

	h.renderCart(w, cart, warnings)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID := h.userID(r)

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	cart, err := h.cartSvc.AddItem(r.Context(), userID, req.ProductType, req.ProductID, req.Qty)
	if err != nil {
		h.renderCartError(w, "AddItem", err)
		return
	}

	h.renderCart(w, cart, nil)
}

func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	userID := h.userID(r)
	lineID := mux.Vars(r)["id"]

	var req setQtyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	cart, err := h.cartSvc.SetQuantity(r.Context(), userID, lineID, req.Qty)
	if err != nil {
		h.renderCartError(w, "SetQuantity", err)
		return
	}

	h.renderCart(w, cart, nil)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID := h.userID(r)
	lineID := mux.Vars(r)["id"]

	cart, err := h.cartSvc.RemoveItem(r.Context(), userID, lineID)
	if err != nil {
		h.renderCartError(w, "RemoveItem", err)
		return
	}

	h.renderCart(w, cart, nil)
}

// Recalculate reprices every line from the current product prices. Meant
// to be called before checkout to close the stale-price window.
func (h *CartHandler) Recalculate(w http.ResponseWriter, r *http.Request) {
	userID := h.userID(r)

	cart, err := h.cartSvc.RecalculateCart(r.Context(), userID)
	if err != nil {
		h.renderCartError(w, "Recalculate", err)
		return
	}

	h.renderCart(w, cart, nil)
}

func (h *CartHandler) userID(r *http.Request) string {
	userID, _ := r.Context().Value(helpers.ContextKeyUserID).(string)
	return userID
}

func (h *CartHandler) renderCart(w http.ResponseWriter, cart *models.Cart, warnings []services.StalePriceWarning) {
	payload := map[string]interface{}{"cart": cart}
	if len(warnings) > 0 {
		payload["stale_price_warnings"] = warnings
	}
	_ = h.render.JSON(w, http.StatusOK, payload)
}

func (h *CartHandler) renderCartError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidQuantity):
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrLineNotFound),
		errors.Is(err, services.ErrCartNotFound):
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	default:
		log.Printf("CartHandler.%s: %v", op, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "cart operation failed"})
	}
}
