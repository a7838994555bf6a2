package repositories

import (
	"context"

	"github.com/red-fox-ru/techshop/app/models"
	"gorm.io/gorm"
)

// VariantRepositoryImpl is the type registry: every operation takes a type
// tag and resolves it to the concrete product table. Unknown tags are not
// errors — reads return nothing and KnownType reports false.
type VariantRepositoryImpl interface {
	KnownType(productType string) bool
	Latest(ctx context.Context, productType string, limit int) ([]models.ProductVariant, error)
	GetByID(ctx context.Context, productType string, id uint) (models.ProductVariant, error)
	GetByIDTx(ctx context.Context, tx *gorm.DB, productType string, id uint) (models.ProductVariant, error)
	GetBySlug(ctx context.Context, productType string, slug string) (models.ProductVariant, error)
	GetAll(ctx context.Context, productType string) ([]models.ProductVariant, error)
	Create(ctx context.Context, variant models.ProductVariant) error
	Update(ctx context.Context, variant models.ProductVariant) error
	Delete(ctx context.Context, productType string, id uint) error
}

type variantRepository struct {
	db *gorm.DB
}

func NewVariantRepository(db *gorm.DB) VariantRepositoryImpl {
	return &variantRepository{db: db}
}

func (r *variantRepository) KnownType(productType string) bool {
	switch productType {
	case models.ProductTypeRam, models.ProductTypeNotebook, models.ProductTypeSmartphone, models.ProductTypeProcessor:
		return true
	}
	return false
}

func (r *variantRepository) Latest(ctx context.Context, productType string, limit int) ([]models.ProductVariant, error) {
	q := r.db.WithContext(ctx).Order("id DESC").Limit(limit)
	return r.find(q, productType)
}

func (r *variantRepository) GetAll(ctx context.Context, productType string) ([]models.ProductVariant, error) {
	q := r.db.WithContext(ctx).Order("id DESC")
	return r.find(q, productType)
}

func (r *variantRepository) find(q *gorm.DB, productType string) ([]models.ProductVariant, error) {
	switch productType {
	case models.ProductTypeRam:
		var rows []models.RamProduct
		if err := q.Find(&rows).Error; err != nil {
			return nil, err
		}
		out := make([]models.ProductVariant, len(rows))
		for i := range rows {
			out[i] = &rows[i]
		}
		return out, nil
	case models.ProductTypeNotebook:
		var rows []models.NotebookProduct
		if err := q.Find(&rows).Error; err != nil {
			return nil, err
		}
		out := make([]models.ProductVariant, len(rows))
		for i := range rows {
			out[i] = &rows[i]
		}
		return out, nil
	case models.ProductTypeSmartphone:
		var rows []models.SmartphoneProduct
		if err := q.Find(&rows).Error; err != nil {
			return nil, err
		}
		out := make([]models.ProductVariant, len(rows))
		for i := range rows {
			out[i] = &rows[i]
		}
		return out, nil
	case models.ProductTypeProcessor:
		var rows []models.ProcessorProduct
		if err := q.Find(&rows).Error; err != nil {
			return nil, err
		}
		out := make([]models.ProductVariant, len(rows))
		for i := range rows {
			out[i] = &rows[i]
		}
		return out, nil
	default:
		return nil, nil
	}
}

func (r *variantRepository) GetByID(ctx context.Context, productType string, id uint) (models.ProductVariant, error) {
	return getVariantByID(r.db.WithContext(ctx), productType, id)
}

// GetByIDTx resolves a variant through an already-open transaction.
// Lookups inside a write transaction must not go through the pooled r.db
// handle: with a single-connection pool the transaction holds the only
// connection and the lookup blocks forever.
func (r *variantRepository) GetByIDTx(ctx context.Context, tx *gorm.DB, productType string, id uint) (models.ProductVariant, error) {
	return getVariantByID(tx.WithContext(ctx), productType, id)
}

func getVariantByID(db *gorm.DB, productType string, id uint) (models.ProductVariant, error) {
	variant := models.NewVariant(productType)
	if variant == nil {
		return nil, nil
	}
	err := db.Preload("Category").First(variant, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return variant, nil
}

func (r *variantRepository) GetBySlug(ctx context.Context, productType string, slug string) (models.ProductVariant, error) {
	variant := models.NewVariant(productType)
	if variant == nil {
		return nil, nil
	}
	err := r.db.WithContext(ctx).Preload("Category").First(variant, "slug = ?", slug).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return variant, nil
}

func (r *variantRepository) Create(ctx context.Context, variant models.ProductVariant) error {
	return r.db.WithContext(ctx).Create(variant).Error
}

func (r *variantRepository) Update(ctx context.Context, variant models.ProductVariant) error {
	return r.db.WithContext(ctx).Save(variant).Error
}

// Delete removes a variant row. Removing a RAM module additionally nulls
// every notebook reference to it, the same contract as the SET NULL
// constraint on notebook_products.ram_id.
func (r *variantRepository) Delete(ctx context.Context, productType string, id uint) error {
	variant := models.NewVariant(productType)
	if variant == nil {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if productType == models.ProductTypeRam {
			if err := tx.Model(&models.NotebookProduct{}).
				Where("ram_id = ?", id).
				Update("ram_id", nil).Error; err != nil {
				return err
			}
		}
		return tx.Delete(variant, "id = ?", id).Error
	})
}

