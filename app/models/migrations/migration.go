package migrations

import (
	"github.com/red-fox-ru/techshop/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.RamProduct{},
		&models.NotebookProduct{},
		&models.SmartphoneProduct{},
		&models.ProcessorProduct{},
		&models.Cart{},
		&models.CartProduct{},
	)
}
