package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "targetrack/internal/errors"
	"targetrack/internal/models"
	"targetrack/internal/services"
)

// --- mock category service ---

type mockCategoryService struct {
	createCategoryFn  func(name string) (*models.Category, error)
	getCategoriesFn   func() ([]*models.Category, error)
	getCategoryByIDFn func(id string) (*models.Category, error)
	updateCategoryFn  func(id, name string) (*models.Category, error)
	deleteCategoryFn  func(id string) error
}

func (m *mockCategoryService) CreateCategory(name string) (*models.Category, error) {
	if m.createCategoryFn != nil {
		return m.createCategoryFn(name)
	}
	return &models.Category{Name: name}, nil
}

func (m *mockCategoryService) GetCategories() ([]*models.Category, error) {
	if m.getCategoriesFn != nil {
		return m.getCategoriesFn()
	}
	return []*models.Category{}, nil
}

func (m *mockCategoryService) GetCategoryByID(id string) (*models.Category, error) {
	if m.getCategoryByIDFn != nil {
		return m.getCategoryByIDFn(id)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) UpdateCategory(id, name string) (*models.Category, error) {
	if m.updateCategoryFn != nil {
		return m.updateCategoryFn(id, name)
	}
	return &models.Category{Base: models.Base{ID: id}, Name: name}, nil
}

func (m *mockCategoryService) DeleteCategory(id string) error {
	if m.deleteCategoryFn != nil {
		return m.deleteCategoryFn(id)
	}
	return nil
}

// --- mock product service ---

type mockProductService struct {
	createProductFn  func(name, categoryID string) (*models.Product, error)
	getProductsFn    func() ([]*models.Product, error)
	getProductByIDFn func(id string) (*models.Product, error)
	updateProductFn  func(id string, name, categoryID *string) (*models.Product, error)
	deleteProductFn  func(id string) error
}

func (m *mockProductService) CreateProduct(name, categoryID string) (*models.Product, error) {
	if m.createProductFn != nil {
		return m.createProductFn(name, categoryID)
	}
	return &models.Product{Name: name, CategoryID: categoryID}, nil
}

func (m *mockProductService) GetProducts() ([]*models.Product, error) {
	if m.getProductsFn != nil {
		return m.getProductsFn()
	}
	return []*models.Product{}, nil
}

func (m *mockProductService) GetProductByID(id string) (*models.Product, error) {
	if m.getProductByIDFn != nil {
		return m.getProductByIDFn(id)
	}
	return &models.Product{}, nil
}

func (m *mockProductService) UpdateProduct(id string, name, categoryID *string) (*models.Product, error) {
	if m.updateProductFn != nil {
		return m.updateProductFn(id, name, categoryID)
	}
	return &models.Product{Base: models.Base{ID: id}}, nil
}

func (m *mockProductService) DeleteProduct(id string) error {
	if m.deleteProductFn != nil {
		return m.deleteProductFn(id)
	}
	return nil
}

var (
	_ services.CategoryServicer = (*mockCategoryService)(nil)
	_ services.ProductServicer  = (*mockProductService)(nil)
)

func setupCatalogRouter(categories *CategoryHandler, products *ProductHandler) *gin.Engine {
	r := gin.New()
	r.POST("/categories", categories.CreateCategory)
	r.GET("/categories", categories.GetCategories)
	r.GET("/categories/:id", categories.GetCategoryByID)
	r.PATCH("/categories/:id", categories.UpdateCategory)
	r.DELETE("/categories/:id", categories.DeleteCategory)
	r.POST("/products", products.CreateProduct)
	r.GET("/products", products.GetProducts)
	r.GET("/products/:id", products.GetProductByID)
	r.PATCH("/products/:id", products.UpdateProduct)
	r.DELETE("/products/:id", products.DeleteProduct)
	return r
}

func TestCategoryHandler(t *testing.T) {
	t.Run("create returns 201", func(t *testing.T) {
		audit := &mockAuditService{}
		r := setupCatalogRouter(NewCategoryHandler(&mockCategoryService{}, audit), NewProductHandler(&mockProductService{}, audit))

		rec := doRequest(r, "POST", "/categories", `{"name":"Funding"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if parseJSON(t, rec)["name"] != "Funding" {
			t.Errorf("unexpected body: %s", rec.Body.String())
		}
		if len(audit.entries) != 1 || audit.entries[0].action != "CREATE_CATEGORY" {
			t.Errorf("expected CREATE_CATEGORY audit entry, got %+v", audit.entries)
		}
	})

	t.Run("create duplicate returns 409", func(t *testing.T) {
		svc := &mockCategoryService{
			createCategoryFn: func(string) (*models.Category, error) { return nil, apperrors.ErrDuplicateCategory },
		}
		r := setupCatalogRouter(NewCategoryHandler(svc, &mockAuditService{}), NewProductHandler(&mockProductService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/categories", `{"name":"funding"}`)
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DUPLICATE_CATEGORY")
	})

	t.Run("list returns raw array", func(t *testing.T) {
		svc := &mockCategoryService{
			getCategoriesFn: func() ([]*models.Category, error) {
				return []*models.Category{{Name: "Funding"}, {Name: "Lending"}}, nil
			},
		}
		r := setupCatalogRouter(NewCategoryHandler(svc, &mockAuditService{}), NewProductHandler(&mockProductService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/categories", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got := parseJSONArray(t, rec); len(got) != 2 {
			t.Errorf("expected 2 categories, got %d", len(got))
		}
	})

	t.Run("patch renames", func(t *testing.T) {
		var gotName string
		svc := &mockCategoryService{
			updateCategoryFn: func(id, name string) (*models.Category, error) {
				gotName = name
				return &models.Category{Base: models.Base{ID: id}, Name: name}, nil
			},
		}
		r := setupCatalogRouter(NewCategoryHandler(svc, &mockAuditService{}), NewProductHandler(&mockProductService{}, &mockAuditService{}))

		rec := doRequest(r, "PATCH", "/categories/"+testID, `{"name":"Savings"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotName != "Savings" {
			t.Errorf("expected rename to Savings, got %q", gotName)
		}
	})

	t.Run("delete with products returns 409", func(t *testing.T) {
		svc := &mockCategoryService{
			deleteCategoryFn: func(string) error { return apperrors.ErrCategoryHasProducts },
		}
		audit := &mockAuditService{}
		r := setupCatalogRouter(NewCategoryHandler(svc, audit), NewProductHandler(&mockProductService{}, audit))

		rec := doRequest(r, "DELETE", "/categories/"+testID, "")
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CATEGORY_HAS_PRODUCTS")
		if len(audit.entries) != 0 {
			t.Errorf("failed delete must not be audited, got %+v", audit.entries)
		}
	})
}

func TestProductHandler(t *testing.T) {
	t.Run("create requires category_id", func(t *testing.T) {
		r := setupCatalogRouter(NewCategoryHandler(&mockCategoryService{}, &mockAuditService{}), NewProductHandler(&mockProductService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/products", `{"name":"Tabungan"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("create with unknown category returns 404", func(t *testing.T) {
		svc := &mockProductService{
			createProductFn: func(string, string) (*models.Product, error) { return nil, apperrors.ErrCategoryNotFound },
		}
		r := setupCatalogRouter(NewCategoryHandler(&mockCategoryService{}, &mockAuditService{}), NewProductHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/products", `{"name":"Tabungan","category_id":"`+testID+`"}`)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CATEGORY_NOT_FOUND")
	})

	t.Run("patch passes only provided fields", func(t *testing.T) {
		var gotName, gotCategory *string
		svc := &mockProductService{
			updateProductFn: func(id string, name, categoryID *string) (*models.Product, error) {
				gotName, gotCategory = name, categoryID
				return &models.Product{Base: models.Base{ID: id}}, nil
			},
		}
		r := setupCatalogRouter(NewCategoryHandler(&mockCategoryService{}, &mockAuditService{}), NewProductHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "PATCH", "/products/"+testID, `{"category_id":"`+testOtherID+`"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotName != nil {
			t.Errorf("name should be nil, got %q", *gotName)
		}
		if gotCategory == nil || *gotCategory != testOtherID {
			t.Errorf("expected category %s, got %v", testOtherID, gotCategory)
		}
	})

	t.Run("delete referenced product returns 409", func(t *testing.T) {
		svc := &mockProductService{
			deleteProductFn: func(string) error { return apperrors.ErrProductHasTargets },
		}
		r := setupCatalogRouter(NewCategoryHandler(&mockCategoryService{}, &mockAuditService{}), NewProductHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "DELETE", "/products/"+testID, "")
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "PRODUCT_HAS_TARGETS")
	})
}
