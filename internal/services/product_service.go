package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"targetrack/internal/consistency"
	apperrors "targetrack/internal/errors"
	"targetrack/internal/models"
)

// productService handles product-related business logic.
type productService struct {
	db *gorm.DB
}

// NewProductService creates a new ProductServicer.
func NewProductService(db *gorm.DB) ProductServicer {
	return &productService{db: db}
}

func (s *productService) ensureCategory(categoryID string) error {
	var count int64
	if err := s.db.Model(&models.Category{}).Where("id = ?", categoryID).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return apperrors.ErrCategoryNotFound
	}
	return nil
}

// CreateProduct creates a product inside an existing category.
func (s *productService) CreateProduct(name, categoryID string) (*models.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "product name is required")
	}
	if err := s.ensureCategory(categoryID); err != nil {
		return nil, err
	}

	product := &models.Product{Name: name, CategoryID: categoryID}
	if err := s.db.Create(product).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.GetProductByID(product.ID)
}

// GetProducts returns every product with its category, ordered by name.
func (s *productService) GetProducts() ([]*models.Product, error) {
	var products []*models.Product
	if err := s.db.Preload("Category").Order("name").Find(&products).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return products, nil
}

// GetProductByID retrieves a product with its category.
func (s *productService) GetProductByID(id string) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Category").Where("id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &product, nil
}

// UpdateProduct applies a partial update. Nil fields stay as they are.
func (s *productService) UpdateProduct(id string, name, categoryID *string) (*models.Product, error) {
	product, err := s.GetProductByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "product name is required")
		}
		updates["name"] = trimmed
	}
	if categoryID != nil && *categoryID != product.CategoryID {
		if err := s.ensureCategory(*categoryID); err != nil {
			return nil, err
		}
		updates["category_id"] = *categoryID
	}

	if len(updates) > 0 {
		if err := s.db.Model(&models.Product{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return s.GetProductByID(id)
}

// DeleteProduct deletes a product no target refers to.
func (s *productService) DeleteProduct(id string) error {
	product, err := s.GetProductByID(id)
	if err != nil {
		return err
	}

	var refs []*models.Target
	if err := s.db.Select("id", "product_id").Where("product_id = ?", id).Limit(1).Find(&refs).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !consistency.CanDeleteProduct(product, refs) {
		return apperrors.ErrProductHasTargets
	}

	if err := s.db.Delete(product).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
