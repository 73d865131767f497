package services

import (
	"context"

	"rentora/internal/models"
	"rentora/internal/repositories"
)

type CategoryService struct {
	CategoryRepo *repositories.CategoryRepository
}

func (s *CategoryService) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	if category.Slug == "" {
		category.Slug = Slugify(category.Name)
	}
	category.IsActive = true
	return s.CategoryRepo.CreateCategory(ctx, category)
}

func (s *CategoryService) GetCategories(ctx context.Context) ([]models.Category, error) {
	return s.CategoryRepo.GetActiveCategories(ctx)
}

func (s *CategoryService) GetCategoryBySlug(ctx context.Context, slug string) (models.Category, error) {
	return s.CategoryRepo.GetCategoryBySlug(ctx, slug)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	return s.CategoryRepo.UpdateCategory(ctx, category)
}

func (s *CategoryService) DeleteCategory(ctx context.Context, slug string) error {
	return s.CategoryRepo.DeleteCategory(ctx, slug)
}
