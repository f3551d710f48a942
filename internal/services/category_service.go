package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"targetrack/internal/consistency"
	apperrors "targetrack/internal/errors"
	"targetrack/internal/models"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

func (s *categoryService) ensureUniqueName(name, exceptID string) error {
	var count int64
	q := s.db.Model(&models.Category{}).Where("LOWER(name) = LOWER(?)", name)
	if exceptID != "" {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return apperrors.ErrDuplicateCategory
	}
	return nil
}

// CreateCategory creates a new category
func (s *categoryService) CreateCategory(name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}
	if err := s.ensureUniqueName(name, ""); err != nil {
		return nil, err
	}

	category := &models.Category{Name: name, Products: []models.Product{}}
	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return category, nil
}

// GetCategories returns every category with its products, ordered by name.
func (s *categoryService) GetCategories() ([]*models.Category, error) {
	var categories []*models.Category
	if err := s.db.
		Preload("Products", func(db *gorm.DB) *gorm.DB { return db.Order("name") }).
		Order("name").
		Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// GetCategoryByID retrieves a category with its products.
func (s *categoryService) GetCategoryByID(id string) (*models.Category, error) {
	var category models.Category
	if err := s.db.
		Preload("Products", func(db *gorm.DB) *gorm.DB { return db.Order("name") }).
		Where("id = ?", id).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// UpdateCategory renames a category.
func (s *categoryService) UpdateCategory(id, name string) (*models.Category, error) {
	category, err := s.GetCategoryByID(id)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}
	if err := s.ensureUniqueName(name, id); err != nil {
		return nil, err
	}

	if err := s.db.Model(category).Update("name", name).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	category.Name = name
	return category, nil
}

// DeleteCategory deletes a category that owns no products.
func (s *categoryService) DeleteCategory(id string) error {
	category, err := s.GetCategoryByID(id)
	if err != nil {
		return err
	}

	if !consistency.CanDeleteCategory(category) {
		return apperrors.ErrCategoryHasProducts
	}

	if err := s.db.Delete(category).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
