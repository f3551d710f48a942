package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "targetrack/internal/errors"
	"targetrack/internal/models"
)

// targetService handles target-related business logic.
type targetService struct {
	db *gorm.DB
}

// NewTargetService creates a new TargetServicer.
func NewTargetService(db *gorm.DB) TargetServicer {
	return &targetService{db: db}
}

// withTargetRelations preloads everything reporting needs. Employees are
// loaded unscoped so soft-deleted employees still resolve by name.
func withTargetRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Employee", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Preload("Product.Category").
		Preload("Achievement")
}

func validatePeriod(month, year int) error {
	if !models.ValidMonth(month) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}
	if year < 1900 || year > 9999 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "year must be a four-digit year")
	}
	return nil
}

func validateNominal(nominal int64) error {
	if nominal < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "nominal must not be negative")
	}
	return nil
}

func (s *targetService) ensureProduct(productID string) error {
	var count int64
	if err := s.db.Model(&models.Product{}).Where("id = ?", productID).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return apperrors.ErrProductNotFound
	}
	return nil
}

// CreateTarget assigns a monthly target to an active employee.
func (s *targetService) CreateTarget(input TargetInput) (*models.Target, error) {
	if err := validateNominal(input.Nominal); err != nil {
		return nil, err
	}
	if err := validatePeriod(input.Month, input.Year); err != nil {
		return nil, err
	}

	var employees int64
	if err := s.db.Model(&models.Employee{}).Where("id = ?", input.EmployeeID).Count(&employees).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if employees == 0 {
		return nil, apperrors.ErrEmployeeNotFound
	}
	if err := s.ensureProduct(input.ProductID); err != nil {
		return nil, err
	}

	target := &models.Target{
		EmployeeID: input.EmployeeID,
		ProductID:  input.ProductID,
		Nominal:    input.Nominal,
		Month:      input.Month,
		Year:       input.Year,
	}
	if err := s.db.Create(target).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.GetTargetByID(target.ID)
}

// GetTargets returns every target with its relations, oldest period first.
func (s *targetService) GetTargets() ([]*models.Target, error) {
	var targets []*models.Target
	if err := s.db.Scopes(withTargetRelations).
		Order("year, month, created_at").
		Find(&targets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return targets, nil
}

// GetTargetByID retrieves a target with its relations.
func (s *targetService) GetTargetByID(id string) (*models.Target, error) {
	var target models.Target
	if err := s.db.Scopes(withTargetRelations).Where("id = ?", id).First(&target).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTargetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &target, nil
}

// GetTargetsByEmployee returns one employee's targets. An employee without
// targets yields ErrNoTargetsForEmployee rather than an empty list.
func (s *targetService) GetTargetsByEmployee(employeeID string) ([]*models.Target, error) {
	var targets []*models.Target
	if err := s.db.Scopes(withTargetRelations).
		Where("employee_id = ?", employeeID).
		Order("year, month, created_at").
		Find(&targets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(targets) == 0 {
		return nil, apperrors.ErrNoTargetsForEmployee
	}
	return targets, nil
}

// UpdateTarget applies the non-nil fields of update.
func (s *targetService) UpdateTarget(id string, update TargetUpdate) (*models.Target, error) {
	target, err := s.GetTargetByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if update.ProductID != nil && *update.ProductID != target.ProductID {
		if err := s.ensureProduct(*update.ProductID); err != nil {
			return nil, err
		}
		updates["product_id"] = *update.ProductID
	}
	if update.Nominal != nil {
		if err := validateNominal(*update.Nominal); err != nil {
			return nil, err
		}
		updates["nominal"] = *update.Nominal
	}
	month, year := target.Month, target.Year
	if update.Month != nil {
		month = *update.Month
	}
	if update.Year != nil {
		year = *update.Year
	}
	if update.Month != nil || update.Year != nil {
		if err := validatePeriod(month, year); err != nil {
			return nil, err
		}
		updates["month"] = month
		updates["year"] = year
	}

	if len(updates) > 0 {
		if err := s.db.Model(&models.Target{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return s.GetTargetByID(id)
}

// DeleteTarget removes a target and its achievement in one transaction.
func (s *targetService) DeleteTarget(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var target models.Target
		if err := tx.Where("id = ?", id).First(&target).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTargetNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Where("target_id = ?", id).Delete(&models.Achievement{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(&target).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// SaveWithAchievement updates the target's product and nominal and, when
// achievementNominal is given, upserts its achievement, all in one
// transaction. A nil achievementNominal leaves any existing achievement as is.
func (s *targetService) SaveWithAchievement(id, productID string, nominal int64, achievementNominal *int64) (*models.Target, error) {
	if achievementNominal != nil {
		if err := validateNominal(*achievementNominal); err != nil {
			return nil, err
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		scoped := &targetService{db: tx}
		if _, err := scoped.UpdateTarget(id, TargetUpdate{ProductID: &productID, Nominal: &nominal}); err != nil {
			return err
		}
		if achievementNominal == nil {
			return nil
		}

		achievements := &achievementService{db: tx}
		_, err := achievements.UpdateAchievement(id, *achievementNominal)
		if errors.Is(err, apperrors.ErrAchievementNotFound) {
			_, err = achievements.CreateAchievement(id, *achievementNominal)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.GetTargetByID(id)
}
