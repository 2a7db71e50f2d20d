package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

type categoryService struct {
	categoryRepository store.CategoryRepository
	activityService    ActivityService
	validator          validators.Validator
	logger             *logger.Logger
}

func NewCategoryService(categoryRepository store.CategoryRepository, activityService ActivityService, logger *logger.Logger) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		activityService:    activityService,
		validator:          validators.NewVaultValidator(),
		logger:             logger,
	}
}

func (s *categoryService) List(ctx context.Context, userID int64) ([]models.Category, error) {
	categories, err := s.categoryRepository.ListCategories(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing categories: %w", err)
	}
	return categories, nil
}

func (s *categoryService) Create(ctx context.Context, userID int64, req models.CategoryRequest) (models.Category, error) {
	category := models.Category{
		UserID: userID,
		Name:   validators.SanitizeText(req.Name),
		Color:  req.Color,
	}
	if err := s.validator.Validate(ctx, category); err != nil {
		return models.Category{}, newValidationError(err)
	}

	created, err := s.categoryRepository.CreateCategory(ctx, category)
	if err != nil {
		return models.Category{}, fmt.Errorf("error creating category: %w", err)
	}

	s.activityService.Log(ctx, userID, models.ActionCreateCategory, "Created category "+created.Name)
	return created, nil
}

// Delete removes the category. Its items stay in the vault without a
// category.
func (s *categoryService) Delete(ctx context.Context, userID, categoryID int64) error {
	category, err := s.categoryRepository.GetCategory(ctx, userID, categoryID)
	if err != nil {
		return fmt.Errorf("error getting category: %w", err)
	}

	if err = s.categoryRepository.DeleteCategory(ctx, userID, categoryID); err != nil {
		return fmt.Errorf("error deleting category: %w", err)
	}

	s.activityService.Log(ctx, userID, models.ActionDeleteCategory, "Deleted category "+category.Name)
	return nil
}
