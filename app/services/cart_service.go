package services

import (
	"context"
	"fmt"
	"log"

	"github.com/red-fox-ru/techshop/app/models"
	"github.com/red-fox-ru/techshop/app/repositories"
	"github.com/red-fox-ru/techshop/app/utils/locker"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StalePriceWarning reports a cart line whose cached total no longer
// matches qty x the product's current price. Advisory only: reads never
// rewrite lines, reconciliation happens in RecalculateCart.
type StalePriceWarning struct {
	LineID         string          `json:"line_id"`
	ProductType    string          `json:"product_type"`
	ProductID      uint            `json:"product_id"`
	CachedTotal    decimal.Decimal `json:"cached_total"`
	CurrentTotal   decimal.Decimal `json:"current_total"`
	ProductMissing bool            `json:"product_missing"`
}

type CartService struct {
	db          *gorm.DB
	cartRepo    repositories.CartRepositoryImpl
	lineRepo    repositories.CartProductRepositoryImpl
	variantRepo repositories.VariantRepositoryImpl
	locks       *locker.KeyedMutex
}

func NewCartService(
	db *gorm.DB,
	cartRepo repositories.CartRepositoryImpl,
	lineRepo repositories.CartProductRepositoryImpl,
	variantRepo repositories.VariantRepositoryImpl,
) *CartService {
	return &CartService{
		db:          db,
		cartRepo:    cartRepo,
		lineRepo:    lineRepo,
		variantRepo: variantRepo,
		locks:       locker.New(),
	}
}

// AddItem puts qty units of the referenced product into the user's cart,
// creating the cart lazily. A line already holding the same
// (type, id) pair is merged: its qty grows and its total is recomputed
// from the product's current price.
func (s *CartService) AddItem(ctx context.Context, userID, productType string, productID uint, qty int) (*models.Cart, error) {
	if qty < 1 {
		return nil, ErrInvalidQuantity
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	variant, err := s.variantRepo.GetByID(ctx, productType, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve product %s/%d: %w", productType, productID, err)
	}
	if variant == nil {
		return nil, ErrProductNotFound
	}

	cart, err := s.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create cart: %w", err)
	}

	line, err := s.lineRepo.GetByCartAndProduct(ctx, cart.ID, productType, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing cart line: %w", err)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if line != nil {
			line.Qty += qty
			line.BasePrice = variant.Base().Price
			line.TotalPrice = line.BasePrice.Mul(decimal.NewFromInt(int64(line.Qty)))
			if err := s.lineRepo.Update(ctx, tx, line); err != nil {
				return fmt.Errorf("failed to update cart line: %w", err)
			}
		} else {
			line = &models.CartProduct{
				CartID:      cart.ID,
				ProductType: productType,
				ProductID:   productID,
				Qty:         qty,
				BasePrice:   variant.Base().Price,
				TotalPrice:  variant.Base().Price.Mul(decimal.NewFromInt(int64(qty))),
			}
			if err := s.lineRepo.Add(ctx, tx, line); err != nil {
				return fmt.Errorf("failed to add cart line: %w", err)
			}
		}
		return s.cartRepo.UpdateCartSummary(ctx, tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}

	return s.cartRepo.GetCartWithProducts(ctx, cart.ID)
}

// SetQuantity updates a line's qty and total. qty <= 0 removes the line.
func (s *CartService) SetQuantity(ctx context.Context, userID, lineID string, qty int) (*models.Cart, error) {
	if qty <= 0 {
		return s.RemoveItem(ctx, userID, lineID)
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	cart, line, err := s.ownedLine(ctx, userID, lineID)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		line.Qty = qty
		line.TotalPrice = line.BasePrice.Mul(decimal.NewFromInt(int64(qty)))
		if err := s.lineRepo.Update(ctx, tx, line); err != nil {
			return fmt.Errorf("failed to update cart line: %w", err)
		}
		return s.cartRepo.UpdateCartSummary(ctx, tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}

	return s.cartRepo.GetCartWithProducts(ctx, cart.ID)
}

// RemoveItem deletes a line and re-sums the cart aggregates. The cart row
// itself survives with zeroed totals when the last line goes.
func (s *CartService) RemoveItem(ctx context.Context, userID, lineID string) (*models.Cart, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	cart, line, err := s.ownedLine(ctx, userID, lineID)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.lineRepo.Delete(ctx, tx, line.ID); err != nil {
			return fmt.Errorf("failed to remove cart line: %w", err)
		}
		return s.cartRepo.UpdateCartSummary(ctx, tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}

	return s.cartRepo.GetCartWithProducts(ctx, cart.ID)
}

// GetUserCart returns the user's cart with lines, creating it lazily.
func (s *CartService) GetUserCart(ctx context.Context, userID string) (*models.Cart, error) {
	cart, err := s.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create cart: %w", err)
	}
	return s.cartRepo.GetCartWithProducts(ctx, cart.ID)
}

// StaleLines compares each line's cached total against qty x the current
// product price. Repriced products leave the cached total stale until the
// line is next mutated or the cart recalculated; this surfaces the window
// without closing it.
func (s *CartService) StaleLines(ctx context.Context, cart *models.Cart) ([]StalePriceWarning, error) {
	var warnings []StalePriceWarning
	for _, line := range cart.CartProducts {
		variant, err := s.variantRepo.GetByID(ctx, line.ProductType, line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve product %s/%d: %w", line.ProductType, line.ProductID, err)
		}
		if variant == nil {
			warnings = append(warnings, StalePriceWarning{
				LineID:         line.ID,
				ProductType:    line.ProductType,
				ProductID:      line.ProductID,
				CachedTotal:    line.TotalPrice,
				ProductMissing: true,
			})
			continue
		}
		currentTotal := variant.Base().Price.Mul(decimal.NewFromInt(int64(line.Qty)))
		if !currentTotal.Equal(line.TotalPrice) {
			warnings = append(warnings, StalePriceWarning{
				LineID:       line.ID,
				ProductType:  line.ProductType,
				ProductID:    line.ProductID,
				CachedTotal:  line.TotalPrice,
				CurrentTotal: currentTotal,
			})
		}
	}
	return warnings, nil
}

// RecalculateCart reprices every line from the current product prices and
// re-sums the aggregates. Lines whose product no longer exists are
// dropped. Intended to run before checkout.
func (s *CartService) RecalculateCart(ctx context.Context, userID string) (*models.Cart, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	cart, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}

	lines, err := s.lineRepo.GetByCartID(ctx, cart.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart lines: %w", err)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range lines {
			line := &lines[i]
			variant, err := s.variantRepo.GetByIDTx(ctx, tx, line.ProductType, line.ProductID)
			if err != nil {
				return fmt.Errorf("failed to resolve product %s/%d: %w", line.ProductType, line.ProductID, err)
			}
			if variant == nil {
				log.Printf("RecalculateCart: dropping line %s, product %s/%d no longer exists", line.ID, line.ProductType, line.ProductID)
				if err := s.lineRepo.Delete(ctx, tx, line.ID); err != nil {
					return fmt.Errorf("failed to drop orphaned cart line: %w", err)
				}
				continue
			}
			line.BasePrice = variant.Base().Price
			line.TotalPrice = line.BasePrice.Mul(decimal.NewFromInt(int64(line.Qty)))
			if err := s.lineRepo.Update(ctx, tx, line); err != nil {
				return fmt.Errorf("failed to reprice cart line: %w", err)
			}
		}
		return s.cartRepo.UpdateCartSummary(ctx, tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}

	return s.cartRepo.GetCartWithProducts(ctx, cart.ID)
}

// ownedLine fetches a line and checks it belongs to the user's cart.
func (s *CartService) ownedLine(ctx context.Context, userID, lineID string) (*models.Cart, *models.CartProduct, error) {
	cart, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get cart: %w", err)
	}
	if cart == nil {
		return nil, nil, ErrCartNotFound
	}

	line, err := s.lineRepo.GetByID(ctx, lineID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get cart line: %w", err)
	}
	if line == nil || line.CartID != cart.ID {
		return nil, nil, ErrLineNotFound
	}
	return cart, line, nil
}
