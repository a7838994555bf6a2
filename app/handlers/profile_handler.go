package handlers

import (
	"io"
	"log"
	"net/http"

	"github.com/red-fox-ru/techshop/app/helpers"
	"github.com/red-fox-ru/techshop/app/repositories"
	"github.com/red-fox-ru/techshop/app/services"
	"github.com/unrolled/render"
)

const maxAvatarBytes = 10 << 20

type ProfileHandler struct {
	userRepo repositories.UserRepositoryImpl
	imageSvc *services.ImageService
	render   *render.Render
}

func NewProfileHandler(userRepo repositories.UserRepositoryImpl, imageSvc *services.ImageService, render *render.Render) *ProfileHandler {
	return &ProfileHandler{userRepo: userRepo, imageSvc: imageSvc, render: render}
}

// UploadAvatar accepts a multipart "avatar" file, runs it through the
// image service and stores the resulting path on the user. An oversized
// image is saved scaled down, reported through the result warning.
func (h *ProfileHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(helpers.ContextKeyUserID).(string)

	if err := r.ParseMultipartForm(maxAvatarBytes); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart form"})
		return
	}

	file, _, err := r.FormFile("avatar")
	if err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "avatar file is required"})
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, maxAvatarBytes))
	if err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "failed to read avatar file"})
		return
	}

	result, err := h.imageSvc.ProcessAndSave(raw, "avatar-"+userID)
	if err != nil {
		_ = h.render.JSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}

	if err := h.userRepo.UpdateAvatar(r.Context(), userID, result.Path); err != nil {
		log.Printf("ProfileHandler.UploadAvatar: failed to update avatar for user %s: %v", userID, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update avatar"})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, result)
}
