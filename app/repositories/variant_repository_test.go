package repositories

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/red-fox-ru/techshop/app/models"
	"github.com/red-fox-ru/techshop/app/models/migrations"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newRepoTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

func seedCategory(t *testing.T, db *gorm.DB, slug string) *models.Category {
	t.Helper()
	category := &models.Category{Name: slug, Slug: slug}
	require.NoError(t, db.Create(category).Error)
	return category
}

func seedRam(t *testing.T, db *gorm.DB, category *models.Category, id uint) *models.RamProduct {
	t.Helper()
	ram := &models.RamProduct{
		ProductBase: models.ProductBase{
			ID:         id,
			CategoryID: category.ID,
			Title:      fmt.Sprintf("RAM %d", id),
			Slug:       fmt.Sprintf("ram-%d", id),
			Price:      decimal.NewFromInt(3000),
			Year:       2023,
		},
		RamType:     "DDR4",
		CountMemory: 16,
		Frequency:   3200,
	}
	require.NoError(t, db.Create(ram).Error)
	return ram
}

func seedNotebook(t *testing.T, db *gorm.DB, category *models.Category, id uint, ramID *uint) *models.NotebookProduct {
	t.Helper()
	nb := &models.NotebookProduct{
		ProductBase: models.ProductBase{
			ID:         id,
			CategoryID: category.ID,
			Title:      fmt.Sprintf("Notebook %d", id),
			Slug:       fmt.Sprintf("nb-%d", id),
			Price:      decimal.NewFromInt(50000),
			Year:       2023,
		},
		Diagonal:       "15.6",
		DisplayType:    "IPS",
		RamID:          ramID,
		NumberRamSlots: 2,
		MaxMemory:      64,
		FreeSlots:      1,
	}
	require.NoError(t, db.Create(nb).Error)
	return nb
}

func TestVariantRepository_KnownType(t *testing.T) {
	repo := NewVariantRepository(newRepoTestDB(t))

	for _, productType := range models.AllProductTypes() {
		assert.True(t, repo.KnownType(productType), productType)
	}
	assert.False(t, repo.KnownType("toaster"))
	assert.False(t, repo.KnownType(""))
}

func TestVariantRepository_LatestOrderAndLimit(t *testing.T) {
	db := newRepoTestDB(t)
	repo := NewVariantRepository(db)
	category := seedCategory(t, db, "ram")

	for id := uint(1); id <= 8; id++ {
		seedRam(t, db, category, id)
	}

	variants, err := repo.Latest(context.Background(), models.ProductTypeRam, 6)
	require.NoError(t, err)
	require.Len(t, variants, 6)
	for i, variant := range variants {
		assert.Equal(t, uint(8-i), variant.ProductID())
		assert.Equal(t, models.ProductTypeRam, variant.ProductType())
	}
}

func TestVariantRepository_UnknownTypeReadsReturnNothing(t *testing.T) {
	repo := NewVariantRepository(newRepoTestDB(t))
	ctx := context.Background()

	variants, err := repo.Latest(ctx, "toaster", 6)
	require.NoError(t, err)
	assert.Nil(t, variants)

	variant, err := repo.GetByID(ctx, "toaster", 1)
	require.NoError(t, err)
	assert.Nil(t, variant)

	variant, err = repo.GetBySlug(ctx, "toaster", "some-slug")
	require.NoError(t, err)
	assert.Nil(t, variant)
}

func TestVariantRepository_GetBySlug(t *testing.T) {
	db := newRepoTestDB(t)
	repo := NewVariantRepository(db)
	category := seedCategory(t, db, "ram")
	seedRam(t, db, category, 1)

	variant, err := repo.GetBySlug(context.Background(), models.ProductTypeRam, "ram-1")
	require.NoError(t, err)
	require.NotNil(t, variant)
	assert.Equal(t, uint(1), variant.ProductID())
	require.NotNil(t, variant.Base().Category)
	assert.Equal(t, "ram", variant.Base().Category.Slug)

	variant, err = repo.GetBySlug(context.Background(), models.ProductTypeRam, "no-such")
	require.NoError(t, err)
	assert.Nil(t, variant)
}

func TestVariantRepository_UpdatePersists(t *testing.T) {
	db := newRepoTestDB(t)
	repo := NewVariantRepository(db)
	category := seedCategory(t, db, "ram")
	ram := seedRam(t, db, category, 1)

	ram.Price = decimal.NewFromInt(3500)
	require.NoError(t, repo.Update(context.Background(), ram))

	variant, err := repo.GetByID(context.Background(), models.ProductTypeRam, 1)
	require.NoError(t, err)
	require.NotNil(t, variant)
	assert.True(t, variant.Base().Price.Equal(decimal.NewFromInt(3500)))
}

// The test pool holds a single connection, so a lookup that went through
// the pooled handle instead of the open transaction would block forever.
func TestVariantRepository_GetByIDTxRunsInsideTransaction(t *testing.T) {
	db := newRepoTestDB(t)
	repo := NewVariantRepository(db)
	category := seedCategory(t, db, "ram")
	seedRam(t, db, category, 1)

	err := db.Transaction(func(tx *gorm.DB) error {
		variant, err := repo.GetByIDTx(context.Background(), tx, models.ProductTypeRam, 1)
		require.NoError(t, err)
		require.NotNil(t, variant)
		assert.Equal(t, uint(1), variant.ProductID())

		missing, err := repo.GetByIDTx(context.Background(), tx, models.ProductTypeRam, 99)
		require.NoError(t, err)
		assert.Nil(t, missing)
		return nil
	})
	require.NoError(t, err)
}

func TestVariantRepository_DeleteRamDetachesNotebooks(t *testing.T) {
	db := newRepoTestDB(t)
	repo := NewVariantRepository(db)
	ramCategory := seedCategory(t, db, "ram")
	nbCategory := seedCategory(t, db, "notebooks")

	ram := seedRam(t, db, ramCategory, 1)
	seedNotebook(t, db, nbCategory, 1, &ram.ID)
	seedNotebook(t, db, nbCategory, 2, nil)

	require.NoError(t, repo.Delete(context.Background(), models.ProductTypeRam, ram.ID))

	variant, err := repo.GetByID(context.Background(), models.ProductTypeRam, ram.ID)
	require.NoError(t, err)
	assert.Nil(t, variant)

	// the notebook survives with its ram reference cleared
	var nb models.NotebookProduct
	require.NoError(t, db.First(&nb, "id = ?", 1).Error)
	assert.Nil(t, nb.RamID)
}
