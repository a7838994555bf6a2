package admin

import (
	"fmt"
	"io"
	"log"
	"net/http"
)

const maxProductImageBytes = 10 << 20

// UploadProductImage attaches an image to a variant through the image
// service. Oversized images are saved scaled down; the response result
// carries the resize flag and warning rather than an error.
func (h *AdminHandler) UploadProductImage(w http.ResponseWriter, r *http.Request) {
	productType, id, ok := h.productRef(w, r)
	if !ok {
		return
	}

	variant, err := h.variantRepo.GetByID(r.Context(), productType, id)
	if err != nil {
		log.Printf("UploadProductImage: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch product"})
		return
	}
	if variant == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
		return
	}

	if err := r.ParseMultipartForm(maxProductImageBytes); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart form"})
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "image file is required"})
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, maxProductImageBytes))
	if err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "failed to read image file"})
		return
	}

	result, err := h.imageSvc.ProcessAndSave(raw, fmt.Sprintf("%s-%d", productType, id))
	if err != nil {
		_ = h.render.JSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}

	variant.Base().ImagePath = result.Path
	if err := h.variantRepo.Update(r.Context(), variant); err != nil {
		log.Printf("UploadProductImage: failed to store image path: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to store image path"})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, result)
}
