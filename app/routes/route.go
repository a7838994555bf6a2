package routes

import (
	"github.com/gorilla/mux"
	"github.com/red-fox-ru/techshop/app/configs"
	"github.com/red-fox-ru/techshop/app/handlers"
	adminhandlers "github.com/red-fox-ru/techshop/app/handlers/admin"
	"github.com/red-fox-ru/techshop/app/middlewares"
	"github.com/red-fox-ru/techshop/app/repositories"
	"github.com/red-fox-ru/techshop/app/services"
	"github.com/red-fox-ru/techshop/app/utils/renderer"
	"github.com/red-fox-ru/techshop/app/utils/sessions"
	"github.com/red-fox-ru/techshop/app/validators"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, sessionStore sessions.SessionStore) *mux.Router {
	render := renderer.New()

	categoryRepo := repositories.NewCategoryRepository(db)
	variantRepo := repositories.NewVariantRepository(db)
	cartRepo := repositories.NewCartRepository(db)
	cartProductRepo := repositories.NewCartProductRepository(db)
	userRepo := repositories.NewUserRepository(db)

	catalogSvc := services.NewCatalogService(variantRepo)
	cartSvc := services.NewCartService(db, cartRepo, cartProductRepo, variantRepo)
	imageSvc := services.NewImageService(configs.LoadENV.UploadDir)

	homeHandler := handlers.NewHomeHandler(catalogSvc, render)
	productHandler := handlers.NewProductHandler(catalogSvc, render)
	cartHandler := handlers.NewCartHandler(cartSvc, render)
	profileHandler := handlers.NewProfileHandler(userRepo, imageSvc, render)
	adminHandler := adminhandlers.NewAdminHandler(categoryRepo, variantRepo, validators.NewProductValidator(), imageSvc, render)

	router := mux.NewRouter()
	router.Use(middlewares.UserSessionMiddleware(sessionStore))

	router.HandleFunc("/", homeHandler.LatestProducts).Methods("GET")
	router.HandleFunc("/products/{ct_model}/{slug}", productHandler.Detail).Methods("GET")

	cart := router.PathPrefix("/cart").Subrouter()
	cart.Use(middlewares.RequireUser)
	cart.HandleFunc("", cartHandler.GetCart).Methods("GET")
	cart.HandleFunc("/items", cartHandler.AddItem).Methods("POST")
	cart.HandleFunc("/items/{id}", cartHandler.SetQuantity).Methods("PATCH")
	cart.HandleFunc("/items/{id}", cartHandler.RemoveItem).Methods("DELETE")
	cart.HandleFunc("/recalculate", cartHandler.Recalculate).Methods("POST")

	profile := router.PathPrefix("/profile").Subrouter()
	profile.Use(middlewares.RequireUser)
	profile.HandleFunc("/avatar", profileHandler.UploadAvatar).Methods("POST")

	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(middlewares.AdminAuthMiddleware(userRepo))
	admin.HandleFunc("/categories", adminHandler.ListCategories).Methods("GET")
	admin.HandleFunc("/categories", adminHandler.CreateCategory).Methods("POST")
	admin.HandleFunc("/categories/{id}", adminHandler.UpdateCategory).Methods("PUT")
	admin.HandleFunc("/categories/{id}", adminHandler.DeleteCategory).Methods("DELETE")
	admin.HandleFunc("/products/{ct_model}", adminHandler.ListProducts).Methods("GET")
	admin.HandleFunc("/products/{ct_model}", adminHandler.CreateProduct).Methods("POST")
	admin.HandleFunc("/products/{ct_model}/{id}", adminHandler.UpdateProduct).Methods("PUT")
	admin.HandleFunc("/products/{ct_model}/{id}", adminHandler.DeleteProduct).Methods("DELETE")
	admin.HandleFunc("/products/{ct_model}/{id}/image", adminHandler.UploadProductImage).Methods("POST")

	return router
}
