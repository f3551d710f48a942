package services

import (
	"gorm.io/gorm"

	"targetrack/internal/analytics"
	apperrors "targetrack/internal/errors"
	"targetrack/internal/models"
)

// analyticsService loads targets and hands them to the analytics package,
// so the server and the reporting CLI share one implementation of every
// rollup.
type analyticsService struct {
	db *gorm.DB
}

// NewAnalyticsService creates a new AnalyticsServicer.
func NewAnalyticsService(db *gorm.DB) AnalyticsServicer {
	return &analyticsService{db: db}
}

func (s *analyticsService) loadTargets(scope func(*gorm.DB) *gorm.DB) ([]*models.Target, error) {
	var targets []*models.Target
	q := s.db.Scopes(withTargetRelations)
	if scope != nil {
		q = q.Scopes(scope)
	}
	if err := q.Find(&targets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return targets, nil
}

func inYear(year int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB { return db.Where("year = ?", year) }
}

// AvailableYears returns the distinct target years, ascending. Only the
// year column is loaded.
func (s *analyticsService) AvailableYears() ([]int, error) {
	var targets []*models.Target
	if err := s.db.Model(&models.Target{}).Select("year").Find(&targets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return analytics.AvailableYears(targets), nil
}

func (s *analyticsService) MonthlySummary(year int) ([]analytics.MonthlyPoint, error) {
	targets, err := s.loadTargets(inYear(year))
	if err != nil {
		return nil, err
	}
	return analytics.MonthlySummary(targets, year), nil
}

func (s *analyticsService) MonthlySummaryByCategory(year int) ([]analytics.CategorySeries, error) {
	targets, err := s.loadTargets(inYear(year))
	if err != nil {
		return nil, err
	}
	return analytics.MonthlySummaryByCategory(targets, year), nil
}

func (s *analyticsService) ProductTargetSummary(year int, months *analytics.MonthRange) ([]analytics.ProductTotal, error) {
	targets, err := s.loadTargets(inYear(year))
	if err != nil {
		return nil, err
	}
	return analytics.ProductTargetSummary(targets, year, months), nil
}

// EmployeePerformance returns one employee's monthly series. Soft-deleted
// employees still have a history, so the lookup is unscoped.
func (s *analyticsService) EmployeePerformance(employeeID string, year int, productID string) ([]analytics.MonthlyPoint, error) {
	var employees int64
	if err := s.db.Unscoped().Model(&models.Employee{}).Where("id = ?", employeeID).Count(&employees).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if employees == 0 {
		return nil, apperrors.ErrEmployeeNotFound
	}

	targets, err := s.loadTargets(func(db *gorm.DB) *gorm.DB {
		return db.Where("employee_id = ? AND year = ?", employeeID, year)
	})
	if err != nil {
		return nil, err
	}
	return analytics.EmployeePerformance(targets, employeeID, year, productID), nil
}

// TopEmployees ranks active employees over all their targets.
func (s *analyticsService) TopEmployees(limit int) ([]analytics.TopEmployee, error) {
	targets, err := s.loadTargets(nil)
	if err != nil {
		return nil, err
	}

	return analytics.TopEmployees(analytics.ActiveTargets(targets), limit), nil
}
