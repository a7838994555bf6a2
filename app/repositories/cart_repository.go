package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/red-fox-ru/techshop/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartRepositoryImpl interface {
	GetByID(ctx context.Context, id string) (*models.Cart, error)
	GetByUserID(ctx context.Context, userID string) (*models.Cart, error)
	GetOrCreateByUserID(ctx context.Context, userID string) (*models.Cart, error)
	GetCartWithProducts(ctx context.Context, cartID string) (*models.Cart, error)
	UpdateCartSummary(ctx context.Context, tx *gorm.DB, cartID string) error
	DeleteCart(ctx context.Context, cartID string) error
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepositoryImpl {
	return &cartRepository{db: db}
}

func (r *cartRepository) GetByID(ctx context.Context, id string) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.WithContext(ctx).First(&cart, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) GetByUserID(ctx context.Context, userID string) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.WithContext(ctx).First(&cart, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// GetOrCreateByUserID creates the cart lazily on first use. The unique
// index on carts.user_id keeps it at one active cart per user.
func (r *cartRepository) GetOrCreateByUserID(ctx context.Context, userID string) (*models.Cart, error) {
	cart, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart != nil {
		return cart, nil
	}

	cart = &models.Cart{
		ID:         uuid.New().String(),
		UserID:     userID,
		TotalPrice: decimal.Zero,
	}
	if err := r.db.WithContext(ctx).Create(cart).Error; err != nil {
		return nil, err
	}
	return cart, nil
}

func (r *cartRepository) GetCartWithProducts(ctx context.Context, cartID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).
		Preload("CartProducts").
		First(&cart, "id = ?", cartID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// UpdateCartSummary re-sums the denormalized aggregates over the cart's
// full line set. It always runs inside the caller's transaction so the
// aggregates and the line mutation land together.
func (r *cartRepository) UpdateCartSummary(ctx context.Context, tx *gorm.DB, cartID string) error {
	var lines []models.CartProduct
	if err := tx.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Find(&lines).Error; err != nil {
		return err
	}

	totalProducts := 0
	totalPrice := decimal.Zero
	for _, line := range lines {
		totalProducts += line.Qty
		totalPrice = totalPrice.Add(line.TotalPrice)
	}

	return tx.WithContext(ctx).
		Model(&models.Cart{}).
		Where("id = ?", cartID).
		Updates(map[string]interface{}{
			"total_products": totalProducts,
			"total_price":    totalPrice,
		}).Error
}

func (r *cartRepository) DeleteCart(ctx context.Context, cartID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cartID).Delete(&models.CartProduct{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Cart{}, "id = ?", cartID).Error
	})
}
