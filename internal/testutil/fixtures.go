package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"targetrack/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestEmployee creates an Account Officer with a unique name.
func CreateTestEmployee(t *testing.T, db *gorm.DB) *models.Employee {
	t.Helper()
	return CreateTestEmployeeWith(t, db, fmt.Sprintf("Employee %d", nextID()), models.PositionAO, "Jakarta")
}

// CreateTestEmployeeWith creates an employee with the given name, position and office.
func CreateTestEmployeeWith(t *testing.T, db *gorm.DB, name string, position models.Position, office string) *models.Employee {
	t.Helper()

	employee := &models.Employee{
		Name:           name,
		Position:       position,
		OfficeLocation: office,
		EntryDate:      time.Date(2020, time.January, 6, 0, 0, 0, 0, time.UTC),
	}
	if err := db.Create(employee).Error; err != nil {
		t.Fatalf("failed to create test employee: %v", err)
	}
	return employee
}

// CreateTestCategory creates a category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()
	return CreateTestCategoryNamed(t, db, fmt.Sprintf("Category %d", nextID()))
}

// CreateTestCategoryNamed creates a category with the given name.
func CreateTestCategoryNamed(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestProduct creates a product in the given category.
func CreateTestProduct(t *testing.T, db *gorm.DB, categoryID string) *models.Product {
	t.Helper()
	return CreateTestProductNamed(t, db, categoryID, fmt.Sprintf("Product %d", nextID()))
}

// CreateTestProductNamed creates a named product in the given category.
func CreateTestProductNamed(t *testing.T, db *gorm.DB, categoryID, name string) *models.Product {
	t.Helper()

	product := &models.Product{Name: name, CategoryID: categoryID}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to create test product: %v", err)
	}
	return product
}

// CreateTestTarget creates a target for the employee and product in the given period.
func CreateTestTarget(t *testing.T, db *gorm.DB, employeeID, productID string, month, year int, nominal int64) *models.Target {
	t.Helper()

	target := &models.Target{
		EmployeeID: employeeID,
		ProductID:  productID,
		Nominal:    nominal,
		Month:      month,
		Year:       year,
	}
	if err := db.Create(target).Error; err != nil {
		t.Fatalf("failed to create test target: %v", err)
	}
	return target
}

// CreateTestAchievement records an achievement against the target.
func CreateTestAchievement(t *testing.T, db *gorm.DB, targetID string, nominal int64) *models.Achievement {
	t.Helper()

	achievement := &models.Achievement{TargetID: targetID, Nominal: nominal}
	if err := db.Create(achievement).Error; err != nil {
		t.Fatalf("failed to create test achievement: %v", err)
	}
	return achievement
}
