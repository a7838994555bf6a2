package admin

import (
	"github.com/red-fox-ru/techshop/app/repositories"
	"github.com/red-fox-ru/techshop/app/services"
	"github.com/red-fox-ru/techshop/app/validators"
	"github.com/unrolled/render"
)

// AdminHandler serves the content-management API: category CRUD and
// per-type product variant CRUD.
type AdminHandler struct {
	categoryRepo repositories.CategoryRepositoryImpl
	variantRepo  repositories.VariantRepositoryImpl
	validator    *validators.ProductValidator
	imageSvc     *services.ImageService
	render       *render.Render
}

func NewAdminHandler(
	categoryRepo repositories.CategoryRepositoryImpl,
	variantRepo repositories.VariantRepositoryImpl,
	validator *validators.ProductValidator,
	imageSvc *services.ImageService,
	render *render.Render,
) *AdminHandler {
	return &AdminHandler{
		categoryRepo: categoryRepo,
		variantRepo:  variantRepo,
		validator:    validator,
		imageSvc:     imageSvc,
		render:       render,
	}
}
