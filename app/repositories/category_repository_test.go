package repositories

import (
	"context"
	"testing"

	"github.com/red-fox-ru/techshop/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepository_DeleteCascadesProducts(t *testing.T) {
	db := newRepoTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	ramCategory := seedCategory(t, db, "ram")
	otherCategory := seedCategory(t, db, "ram-archive")
	seedRam(t, db, ramCategory, 1)
	seedRam(t, db, ramCategory, 2)

	survivor := seedRam(t, db, otherCategory, 3)

	require.NoError(t, repo.Delete(ctx, ramCategory.ID))

	category, err := repo.GetByID(ctx, ramCategory.ID)
	require.NoError(t, err)
	assert.Nil(t, category)

	var count int64
	require.NoError(t, db.Model(&models.RamProduct{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var kept models.RamProduct
	require.NoError(t, db.First(&kept, "id = ?", survivor.ID).Error)
}

func TestCategoryRepository_DeleteDetachesNotebooksFromRemovedRam(t *testing.T) {
	db := newRepoTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	ramCategory := seedCategory(t, db, "ram")
	nbCategory := seedCategory(t, db, "notebooks")
	ram := seedRam(t, db, ramCategory, 1)
	seedNotebook(t, db, nbCategory, 1, &ram.ID)
	seedNotebook(t, db, nbCategory, 2, nil)

	require.NoError(t, repo.Delete(ctx, ramCategory.ID))

	// the notebook category is untouched, its reference to the removed
	// RAM module is cleared
	var nb models.NotebookProduct
	require.NoError(t, db.First(&nb, "id = ?", 1).Error)
	assert.Nil(t, nb.RamID)

	var count int64
	require.NoError(t, db.Model(&models.NotebookProduct{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
