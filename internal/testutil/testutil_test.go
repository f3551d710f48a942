package testutil_test

import (
	"testing"

	"targetrack/internal/errors"
	"targetrack/internal/models"
	"targetrack/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	var count int64
	for _, table := range []string{"employees", "categories", "products", "targets", "achievements", "audit_logs"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDBIsolated(t *testing.T) {
	first := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, first)
	testutil.CreateTestCategory(t, first)

	second := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, second)

	var count int64
	second.Model(&models.Category{}).Count(&count)
	if count != 0 {
		t.Errorf("expected a fresh database, found %d categories", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	employee := testutil.CreateTestEmployee(t, db)
	if employee.ID == "" {
		t.Fatal("employee should have an ID")
	}
	if employee.Position != models.PositionAO {
		t.Errorf("expected AO, got %s", employee.Position)
	}

	category := testutil.CreateTestCategory(t, db)
	product := testutil.CreateTestProduct(t, db, category.ID)
	if product.CategoryID != category.ID {
		t.Errorf("expected category %s, got %s", category.ID, product.CategoryID)
	}

	target := testutil.CreateTestTarget(t, db, employee.ID, product.ID, 3, 2025, 1000000)
	if target.Nominal != 1000000 || target.Month != 3 {
		t.Errorf("unexpected target: %+v", target)
	}

	achievement := testutil.CreateTestAchievement(t, db, target.ID, 1200000)
	if achievement.TargetID != target.ID {
		t.Errorf("expected target %s, got %s", target.ID, achievement.TargetID)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrTargetNotFound, "custom message")
	testutil.AssertAppError(t, err, "TARGET_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
