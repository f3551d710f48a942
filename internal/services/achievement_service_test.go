package services

import (
	"testing"

	"targetrack/internal/testutil"
)

func TestCreateAchievement(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAchievementService(db)
		fx := newTargetFixture(t, db)
		target := testutil.CreateTestTarget(t, db, fx.employee.ID, fx.product.ID, 1, 2025, 100)

		ach, err := svc.CreateAchievement(target.ID, 0)
		testutil.AssertNoError(t, err)
		if ach.TargetID != target.ID || ach.Nominal != 0 {
			t.Errorf("unexpected achievement: %+v", ach)
		}
	})

	t.Run("requires_target", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAchievementService(db)

		_, err := svc.CreateAchievement("missing", 10)
		testutil.AssertAppError(t, err, "TARGET_NOT_FOUND")
	})

	t.Run("one_per_target", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAchievementService(db)
		fx := newTargetFixture(t, db)
		target := testutil.CreateTestTarget(t, db, fx.employee.ID, fx.product.ID, 1, 2025, 100)

		_, err := svc.CreateAchievement(target.ID, 10)
		testutil.AssertNoError(t, err)

		_, err = svc.CreateAchievement(target.ID, 20)
		testutil.AssertAppError(t, err, "ACHIEVEMENT_EXISTS")
	})

	t.Run("negative_nominal", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAchievementService(db)

		_, err := svc.CreateAchievement("any", -5)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestUpdateAchievementByTarget(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAchievementService(db)
	fx := newTargetFixture(t, db)
	target := testutil.CreateTestTarget(t, db, fx.employee.ID, fx.product.ID, 1, 2025, 100)

	_, err := svc.UpdateAchievement(target.ID, 50)
	testutil.AssertAppError(t, err, "ACHIEVEMENT_NOT_FOUND")

	testutil.CreateTestAchievement(t, db, target.ID, 10)
	ach, err := svc.UpdateAchievement(target.ID, 50)
	testutil.AssertNoError(t, err)
	if ach.Nominal != 50 {
		t.Errorf("expected 50, got %d", ach.Nominal)
	}
}

func TestGetAchievementsNested(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAchievementService(db)
	fx := newTargetFixture(t, db)
	target := testutil.CreateTestTarget(t, db, fx.employee.ID, fx.product.ID, 1, 2025, 100)
	testutil.CreateTestAchievement(t, db, target.ID, 10)

	list, err := svc.GetAchievements()
	testutil.AssertNoError(t, err)
	if len(list) != 1 {
		t.Fatalf("expected 1 achievement, got %d", len(list))
	}
	if list[0].Target == nil || list[0].Target.EmployeeName() != fx.employee.Name || list[0].Target.ProductName() != "Deposito" {
		t.Errorf("expected nested target with employee and product, got %+v", list[0].Target)
	}
}

func TestDeleteAchievement(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAchievementService(db)
	fx := newTargetFixture(t, db)
	target := testutil.CreateTestTarget(t, db, fx.employee.ID, fx.product.ID, 1, 2025, 100)
	testutil.CreateTestAchievement(t, db, target.ID, 10)

	testutil.AssertNoError(t, svc.DeleteAchievement(target.ID))
	testutil.AssertAppError(t, svc.DeleteAchievement(target.ID), "ACHIEVEMENT_NOT_FOUND")
}
