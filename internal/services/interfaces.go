package services

import (
	"time"

	"targetrack/internal/analytics"
	"targetrack/internal/models"
)

// EmployeeInput carries the writable employee fields.
type EmployeeInput struct {
	Name           string
	Position       models.Position
	OfficeLocation string
	EntryDate      time.Time
}

// EmployeeUpdate carries optional employee changes; nil fields stay as they are.
type EmployeeUpdate struct {
	Name           *string
	Position       *models.Position
	OfficeLocation *string
	EntryDate      *time.Time
}

// EmployeeServicer defines the contract for employee-related business logic.
type EmployeeServicer interface {
	CreateEmployee(input EmployeeInput) (*models.Employee, error)
	GetEmployees() ([]*models.Employee, error)
	GetEmployeeByID(id string) (*models.Employee, error)
	UpdateEmployee(id string, update EmployeeUpdate) (*models.Employee, error)
	DeleteEmployee(id string) error
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(name string) (*models.Category, error)
	GetCategories() ([]*models.Category, error)
	GetCategoryByID(id string) (*models.Category, error)
	UpdateCategory(id, name string) (*models.Category, error)
	DeleteCategory(id string) error
}

// ProductServicer defines the contract for product-related business logic.
type ProductServicer interface {
	CreateProduct(name, categoryID string) (*models.Product, error)
	GetProducts() ([]*models.Product, error)
	GetProductByID(id string) (*models.Product, error)
	UpdateProduct(id string, name, categoryID *string) (*models.Product, error)
	DeleteProduct(id string) error
}

// TargetInput carries the fields needed to create a target.
type TargetInput struct {
	EmployeeID string
	ProductID  string
	Nominal    int64
	Month      int
	Year       int
}

// TargetUpdate carries optional target changes; nil fields stay as they are.
type TargetUpdate struct {
	ProductID *string
	Nominal   *int64
	Month     *int
	Year      *int
}

// TargetServicer defines the contract for target-related business logic.
type TargetServicer interface {
	CreateTarget(input TargetInput) (*models.Target, error)
	GetTargets() ([]*models.Target, error)
	GetTargetByID(id string) (*models.Target, error)
	GetTargetsByEmployee(employeeID string) ([]*models.Target, error)
	UpdateTarget(id string, update TargetUpdate) (*models.Target, error)
	DeleteTarget(id string) error
	SaveWithAchievement(id, productID string, nominal int64, achievementNominal *int64) (*models.Target, error)
}

// AchievementServicer defines the contract for achievement-related business logic.
// Achievements are addressed by their target's id.
type AchievementServicer interface {
	CreateAchievement(targetID string, nominal int64) (*models.Achievement, error)
	GetAchievements() ([]*models.Achievement, error)
	UpdateAchievement(targetID string, nominal int64) (*models.Achievement, error)
	DeleteAchievement(targetID string) error
}

// AnalyticsServicer serves the aggregation and ranking engines over the
// targets stored in the database.
type AnalyticsServicer interface {
	AvailableYears() ([]int, error)
	MonthlySummary(year int) ([]analytics.MonthlyPoint, error)
	MonthlySummaryByCategory(year int) ([]analytics.CategorySeries, error)
	ProductTargetSummary(year int, months *analytics.MonthRange) ([]analytics.ProductTotal, error)
	EmployeePerformance(employeeID string, year int, productID string) ([]analytics.MonthlyPoint, error)
	TopEmployees(limit int) ([]analytics.TopEmployee, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
