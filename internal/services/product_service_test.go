package services

import (
	"testing"

	"targetrack/internal/testutil"
)

func TestCreateProduct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewProductService(db)
		cat := testutil.CreateTestCategoryNamed(t, db, "Funding")

		prod, err := svc.CreateProduct("Deposito", cat.ID)
		testutil.AssertNoError(t, err)
		if prod.CategoryName() != "Funding" {
			t.Errorf("expected category to be loaded, got %q", prod.CategoryName())
		}
	})

	t.Run("unknown_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewProductService(db)

		_, err := svc.CreateProduct("Deposito", "missing")
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewProductService(db)
		cat := testutil.CreateTestCategory(t, db)

		_, err := svc.CreateProduct("", cat.ID)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestUpdateProduct(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewProductService(db)

	funding := testutil.CreateTestCategoryNamed(t, db, "Funding")
	lending := testutil.CreateTestCategoryNamed(t, db, "Lending")
	prod := testutil.CreateTestProductNamed(t, db, funding.ID, "Tabungan")

	got, err := svc.UpdateProduct(prod.ID, nil, &lending.ID)
	testutil.AssertNoError(t, err)
	if got.Name != "Tabungan" || got.CategoryName() != "Lending" {
		t.Errorf("unexpected product after move: %s / %s", got.Name, got.CategoryName())
	}

	got, err = svc.UpdateProduct(prod.ID, strPtr("Giro"), nil)
	testutil.AssertNoError(t, err)
	if got.Name != "Giro" {
		t.Errorf("expected Giro, got %s", got.Name)
	}

	_, err = svc.UpdateProduct(prod.ID, nil, strPtr("missing"))
	testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
}

func TestDeleteProduct(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewProductService(db)
	targets := NewTargetService(db)

	emp := testutil.CreateTestEmployee(t, db)
	cat := testutil.CreateTestCategory(t, db)
	prod := testutil.CreateTestProduct(t, db, cat.ID)
	target := testutil.CreateTestTarget(t, db, emp.ID, prod.ID, 1, 2025, 500)

	testutil.AssertAppError(t, svc.DeleteProduct(prod.ID), "PRODUCT_HAS_TARGETS")

	testutil.AssertNoError(t, targets.DeleteTarget(target.ID))
	testutil.AssertNoError(t, svc.DeleteProduct(prod.ID))

	_, err := svc.GetProductByID(prod.ID)
	testutil.AssertAppError(t, err, "PRODUCT_NOT_FOUND")
}
