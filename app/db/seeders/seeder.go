package seeders

import (
	"context"
	"log"

	"github.com/red-fox-ru/techshop/app/db/fakers"
	"github.com/red-fox-ru/techshop/app/models"
	"github.com/red-fox-ru/techshop/app/repositories"
	"gorm.io/gorm"
)

const productsPerCategory = 8

// DBSeed fills the catalog with one category per product type, a batch of
// products in each, an admin and a handful of customers.
func DBSeed(db *gorm.DB) error {
	ctx := context.Background()
	userRepo := repositories.NewUserRepository(db)

	if err := userRepo.Create(ctx, fakers.AdminFaker()); err != nil {
		return err
	}
	for i := 0; i < 5; i++ {
		if err := userRepo.Create(ctx, fakers.UserFaker()); err != nil {
			return err
		}
	}

	categories := map[string]*models.Category{
		models.ProductTypeRam:        fakers.CategoryFaker("Memory"),
		models.ProductTypeNotebook:   fakers.CategoryFaker("Notebooks"),
		models.ProductTypeSmartphone: fakers.CategoryFaker("Smartphones"),
		models.ProductTypeProcessor:  fakers.CategoryFaker("Processors"),
	}
	for _, category := range categories {
		if err := db.Create(category).Error; err != nil {
			return err
		}
	}

	var rams []*models.RamProduct
	for i := 0; i < productsPerCategory; i++ {
		ram := fakers.RamFaker(categories[models.ProductTypeRam])
		if err := db.Create(ram).Error; err != nil {
			return err
		}
		rams = append(rams, ram)
	}

	for i := 0; i < productsPerCategory; i++ {
		notebook := fakers.NotebookFaker(categories[models.ProductTypeNotebook], rams[i%len(rams)])
		if err := db.Create(notebook).Error; err != nil {
			return err
		}
		if err := db.Create(fakers.SmartphoneFaker(categories[models.ProductTypeSmartphone])).Error; err != nil {
			return err
		}
		if err := db.Create(fakers.ProcessorFaker(categories[models.ProductTypeProcessor])).Error; err != nil {
			return err
		}
	}

	log.Printf("Seeded %d categories and %d products", len(categories), 4*productsPerCategory)
	return nil
}
