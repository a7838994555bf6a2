package services

import (
	"context"
	"fmt"

	"github.com/red-fox-ru/techshop/app/models"
	"github.com/red-fox-ru/techshop/app/repositories"
)

// LatestPerType bounds each type's contribution to the home listing.
const LatestPerType = 6

type CatalogService struct {
	variantRepo repositories.VariantRepositoryImpl
}

func NewCatalogService(variantRepo repositories.VariantRepositoryImpl) *CatalogService {
	return &CatalogService{variantRepo: variantRepo}
}

// LatestProducts returns a freshness-ordered view across the requested
// product types: at most LatestPerType items per type, each type's items
// ordered by descending id, types concatenated in the order they were
// requested. When withRespectTo names a known type that is also part of
// the request, its items are stably partitioned to the front; otherwise
// the concatenation order is returned unchanged. Unknown tags contribute
// zero items, repeated tags count once. Read-only.
func (s *CatalogService) LatestProducts(ctx context.Context, productTypes []string, withRespectTo string) ([]models.ProductVariant, error) {
	var products []models.ProductVariant
	requested := make(map[string]bool, len(productTypes))

	for _, productType := range productTypes {
		if requested[productType] {
			continue
		}
		requested[productType] = true
		items, err := s.variantRepo.Latest(ctx, productType, LatestPerType)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch latest %s products: %w", productType, err)
		}
		products = append(products, items...)
	}

	if withRespectTo == "" || !s.variantRepo.KnownType(withRespectTo) || !requested[withRespectTo] {
		return products, nil
	}

	// Stable partition: prioritized items first, both groups keep their
	// pre-partition relative order.
	prioritized := make([]models.ProductVariant, 0, len(products))
	rest := make([]models.ProductVariant, 0, len(products))
	for _, p := range products {
		if p.ProductType() == withRespectTo {
			prioritized = append(prioritized, p)
		} else {
			rest = append(rest, p)
		}
	}
	return append(prioritized, rest...), nil
}

// GetProduct resolves a product detail lookup through the type registry.
func (s *CatalogService) GetProduct(ctx context.Context, productType, slug string) (models.ProductVariant, error) {
	variant, err := s.variantRepo.GetBySlug(ctx, productType, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s product %q: %w", productType, slug, err)
	}
	if variant == nil {
		return nil, ErrProductNotFound
	}
	return variant, nil
}
