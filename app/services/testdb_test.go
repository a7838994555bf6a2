package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/red-fox-ru/techshop/app/models"
	"github.com/red-fox-ru/techshop/app/models/migrations"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one shared in-memory database per test
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

func newTestCategory(t *testing.T, db *gorm.DB, name, slug string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name, Slug: slug}
	require.NoError(t, db.Create(category).Error)
	return category
}

func newTestNotebook(t *testing.T, db *gorm.DB, category *models.Category, id uint, slug string, price int64) *models.NotebookProduct {
	t.Helper()
	notebook := &models.NotebookProduct{
		ProductBase: models.ProductBase{
			ID:         id,
			CategoryID: category.ID,
			Title:      "Notebook " + slug,
			Slug:       slug,
			Price:      decimal.NewFromInt(price),
			Year:       2022,
		},
		Diagonal:       "15.6",
		DisplayType:    "IPS",
		NumberRamSlots: 2,
		MaxMemory:      64,
		FreeSlots:      1,
	}
	require.NoError(t, db.Create(notebook).Error)
	return notebook
}

func newTestSmartphone(t *testing.T, db *gorm.DB, category *models.Category, id uint, slug string, price int64) *models.SmartphoneProduct {
	t.Helper()
	phone := &models.SmartphoneProduct{
		ProductBase: models.ProductBase{
			ID:         id,
			CategoryID: category.ID,
			Title:      "Smartphone " + slug,
			Slug:       slug,
			Price:      decimal.NewFromInt(price),
			Year:       2023,
		},
		Diagonal:    "6.5",
		DisplayType: "AMOLED",
		Resolution:  "2340x1080",
		AccumVolume: 4500,
		SdVolumeMax: 256,
		MainCam:     48,
		FrontCam:    12,
	}
	require.NoError(t, db.Create(phone).Error)
	return phone
}
