package repositories

import (
	"context"
	"errors"

	"github.com/red-fox-ru/techshop/app/models"
	"gorm.io/gorm"
)

type CartProductRepositoryImpl interface {
	Add(ctx context.Context, tx *gorm.DB, line *models.CartProduct) error
	Update(ctx context.Context, tx *gorm.DB, line *models.CartProduct) error
	Delete(ctx context.Context, tx *gorm.DB, lineID string) error
	GetByID(ctx context.Context, id string) (*models.CartProduct, error)
	GetByCartID(ctx context.Context, cartID string) ([]models.CartProduct, error)
	GetByCartAndProduct(ctx context.Context, cartID, productType string, productID uint) (*models.CartProduct, error)
}

type cartProductRepository struct {
	db *gorm.DB
}

func NewCartProductRepository(db *gorm.DB) CartProductRepositoryImpl {
	return &cartProductRepository{db: db}
}

func (r *cartProductRepository) Add(ctx context.Context, tx *gorm.DB, line *models.CartProduct) error {
	return tx.WithContext(ctx).Create(line).Error
}

func (r *cartProductRepository) Update(ctx context.Context, tx *gorm.DB, line *models.CartProduct) error {
	return tx.WithContext(ctx).Save(line).Error
}

func (r *cartProductRepository) Delete(ctx context.Context, tx *gorm.DB, lineID string) error {
	return tx.WithContext(ctx).Delete(&models.CartProduct{}, "id = ?", lineID).Error
}

func (r *cartProductRepository) GetByID(ctx context.Context, id string) (*models.CartProduct, error) {
	var line models.CartProduct
	if err := r.db.WithContext(ctx).First(&line, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &line, nil
}

func (r *cartProductRepository) GetByCartID(ctx context.Context, cartID string) ([]models.CartProduct, error) {
	var lines []models.CartProduct
	if err := r.db.WithContext(ctx).Where("cart_id = ?", cartID).Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *cartProductRepository) GetByCartAndProduct(ctx context.Context, cartID, productType string, productID uint) (*models.CartProduct, error) {
	var line models.CartProduct
	err := r.db.WithContext(ctx).
		Where("cart_id = ? AND product_type = ? AND product_id = ?", cartID, productType, productID).
		First(&line).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &line, nil
}
