package services

import (
	"context"
	"log"

	"rentora/internal/models"
	"rentora/internal/repositories"
)

type ProductService struct {
	ProductRepo *repositories.ProductRepository
	ViewCounter *repositories.ViewCounter
}

func (s *ProductService) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	if product.Slug == "" {
		product.Slug = Slugify(product.Name)
	}
	if product.AvailableQuantity == 0 {
		product.AvailableQuantity = product.Quantity
	}
	product.IsActive = true
	product.IsAvailable = product.AvailableQuantity > 0
	return s.ProductRepo.CreateProduct(ctx, product)
}

func (s *ProductService) GetProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	return s.ProductRepo.GetProducts(ctx, filter)
}

// GetProductBySlug returns the product and registers one detail view. The
// view counter is best effort: a Redis hiccup must not break the page.
func (s *ProductService) GetProductBySlug(ctx context.Context, slug string) (models.Product, error) {
	product, err := s.ProductRepo.GetProductBySlug(ctx, slug)
	if err != nil {
		return models.Product{}, err
	}
	if s.ViewCounter != nil {
		if err := s.ViewCounter.Increment(ctx, product.ID); err != nil {
			log.Printf("view counter increment failed for product %d: %v", product.ID, err)
		} else {
			product.ViewCount++
		}
	}
	return product, nil
}

func (s *ProductService) GetProductsByCategorySlug(ctx context.Context, categorySlug string) ([]models.Product, error) {
	return s.ProductRepo.GetProductsByCategorySlug(ctx, categorySlug)
}

func (s *ProductService) UpdateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	return s.ProductRepo.UpdateProduct(ctx, product)
}

func (s *ProductService) DeleteProduct(ctx context.Context, slug string) error {
	return s.ProductRepo.DeleteProduct(ctx, slug)
}
