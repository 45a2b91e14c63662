package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Dan9191/finance-service/internal/category"
	"github.com/Dan9191/finance-service/internal/models"
)

// Categories returns the user's catalog with per-category stats over all sources.
func (s *Service) Categories(ctx context.Context, userID int64) ([]models.CategoryCatalogEntry, error) {
	txs, err := s.fetchTransactions(ctx, userID, models.Sources())
	if err != nil {
		return nil, err
	}
	categories, err := s.repo.ListCategories(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", storeError(err))
	}

	resolved, _ := category.Resolve(txs, categories)
	return category.Catalog(resolved, categories), nil
}

// CreateCategory adds a category with its conditions.
func (s *Service) CreateCategory(ctx context.Context, userID int64, def models.CategoryDefinition) (*models.CategoryDefinition, error) {
	def.CategoryName = strings.TrimSpace(def.CategoryName)
	if def.CategoryName == "" {
		return nil, fmt.Errorf("%w: categoryName is required", ErrInvalidInput)
	}
	def.ID = 0
	def.UserID = userID
	if def.Conditions == nil {
		def.Conditions = []models.ConditionRule{}
	}

	if err := s.repo.CreateCategory(ctx, &def); err != nil {
		return nil, storeError(err)
	}

	s.log.Infof("Category %q created for user %d with %d conditions", def.CategoryName, userID, len(def.Conditions))
	return &def, nil
}

// UpdateCategory renames a category and/or rewrites its conditions.
func (s *Service) UpdateCategory(ctx context.Context, userID, categoryID int64, upd models.CategoryUpdate) error {
	if upd.CategoryName != nil {
		name := strings.TrimSpace(*upd.CategoryName)
		if name == "" {
			return fmt.Errorf("%w: categoryName cannot be empty", ErrInvalidInput)
		}
		upd.CategoryName = &name
	}
	if err := s.repo.UpdateCategory(ctx, userID, categoryID, upd); err != nil {
		return storeError(err)
	}

	s.log.Infof("Category %d updated for user %d", categoryID, userID)
	return nil
}

// DeleteCategory removes a category and its conditions.
func (s *Service) DeleteCategory(ctx context.Context, userID, categoryID int64) error {
	if err := s.repo.DeleteCategory(ctx, userID, categoryID); err != nil {
		return storeError(err)
	}

	s.log.Infof("Category %d deleted for user %d", categoryID, userID)
	return nil
}
