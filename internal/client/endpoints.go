package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"targetrack/internal/analytics"
	"targetrack/internal/consistency"
	"targetrack/internal/filter"
	"targetrack/internal/models"
	"targetrack/internal/pagination"
)

// Page is one page of a server-side filtered list view.
type Page[T any] struct {
	pagination.PageResponse[T]
	Filters filter.State `json:"filters"`
}

// EmployeeInput is the body for creating or replacing an employee.
type EmployeeInput struct {
	Name           string
	Position       models.Position
	OfficeLocation string
	EntryDate      time.Time
}

func (in EmployeeInput) body() map[string]interface{} {
	return map[string]interface{}{
		"name":            in.Name,
		"position":        in.Position,
		"office_location": in.OfficeLocation,
		"entry_date":      in.EntryDate.Format(time.DateOnly),
	}
}

// TargetInput is the body for creating a target.
type TargetInput struct {
	EmployeeID string `json:"employee_id"`
	ProductID  string `json:"product_id"`
	Nominal    int64  `json:"nominal"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

type achievementBody struct {
	TargetID string `json:"target_id"`
	Nominal  int64  `json:"nominal"`
}

// --- employees ---

func (c *Client) GetEmployees(ctx context.Context) ([]models.Employee, error) {
	var out []models.Employee
	err := c.do(ctx, http.MethodGet, "/employees", nil, nil, &out)
	return out, err
}

func (c *Client) GetEmployee(ctx context.Context, id string) (*models.Employee, error) {
	var out models.Employee
	if err := c.do(ctx, http.MethodGet, "/employees/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateEmployee(ctx context.Context, in EmployeeInput) (*models.Employee, error) {
	var out models.Employee
	if err := c.do(ctx, http.MethodPost, "/employees", nil, in.body(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, id string, in EmployeeInput) (*models.Employee, error) {
	var out models.Employee
	if err := c.do(ctx, http.MethodPut, "/employees/"+url.PathEscape(id), nil, in.body(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/employees/"+url.PathEscape(id), nil, nil, nil)
}

// ViewEmployees fetches one filtered page of employees.
func (c *Client) ViewEmployees(ctx context.Context, s filter.State) (*Page[models.Employee], error) {
	var out Page[models.Employee]
	if err := c.do(ctx, http.MethodGet, "/employees/view", stateQuery(s), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- catalog ---

func (c *Client) GetCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	err := c.do(ctx, http.MethodGet, "/categories", nil, nil, &out)
	return out, err
}

func (c *Client) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	var out models.Category
	if err := c.do(ctx, http.MethodPost, "/categories", nil, map[string]string{"name": name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RenameCategory(ctx context.Context, id, name string) (*models.Category, error) {
	var out models.Category
	if err := c.do(ctx, http.MethodPatch, "/categories/"+url.PathEscape(id), nil, map[string]string{"name": name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/categories/"+url.PathEscape(id), nil, nil, nil)
}

func (c *Client) GetProducts(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	err := c.do(ctx, http.MethodGet, "/products", nil, nil, &out)
	return out, err
}

func (c *Client) CreateProduct(ctx context.Context, name, categoryID string) (*models.Product, error) {
	var out models.Product
	body := map[string]string{"name": name, "category_id": categoryID}
	if err := c.do(ctx, http.MethodPost, "/products", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProduct changes the non-empty fields.
func (c *Client) UpdateProduct(ctx context.Context, id, name, categoryID string) (*models.Product, error) {
	body := map[string]string{}
	if name != "" {
		body["name"] = name
	}
	if categoryID != "" {
		body["category_id"] = categoryID
	}
	var out models.Product
	if err := c.do(ctx, http.MethodPatch, "/products/"+url.PathEscape(id), nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), nil, nil, nil)
}

// --- targets ---

func (c *Client) GetTargets(ctx context.Context) ([]*models.Target, error) {
	var out []*models.Target
	err := c.do(ctx, http.MethodGet, "/targets", nil, nil, &out)
	return out, err
}

func (c *Client) GetTarget(ctx context.Context, id string) (*models.Target, error) {
	var out models.Target
	if err := c.do(ctx, http.MethodGet, "/targets/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTargetsByEmployee lists one employee's targets. An employee with no
// targets yields *NotFoundError.
func (c *Client) GetTargetsByEmployee(ctx context.Context, employeeID string) ([]*models.Target, error) {
	var out []*models.Target
	err := c.do(ctx, http.MethodGet, "/targets/employee/"+url.PathEscape(employeeID), nil, nil, &out)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return nil, &NotFoundError{Resource: "targets for employee", ID: employeeID, Message: apiErr.Message}
	}
	return out, err
}

// ViewTargets fetches one filtered page of targets.
func (c *Client) ViewTargets(ctx context.Context, s filter.State) (*Page[*models.Target], error) {
	var out Page[*models.Target]
	if err := c.do(ctx, http.MethodGet, "/targets/view", stateQuery(s), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateTarget(ctx context.Context, in TargetInput) (*models.Target, error) {
	var out models.Target
	if err := c.do(ctx, http.MethodPost, "/targets", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTarget changes the target's product and nominal.
func (c *Client) UpdateTarget(ctx context.Context, id string, update consistency.TargetUpdate) (*models.Target, error) {
	var out models.Target
	if err := c.do(ctx, http.MethodPut, "/targets/"+url.PathEscape(id), nil, update, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveTargetWithAchievement performs the combined edit in a single server
// transaction.
func (c *Client) SaveTargetWithAchievement(ctx context.Context, id, productID string, nominal int64, achievementNominal *int64) (*models.Target, error) {
	body := struct {
		ProductID          string `json:"product_id"`
		Nominal            int64  `json:"nominal"`
		AchievementNominal *int64 `json:"achievement_nominal,omitempty"`
	}{productID, nominal, achievementNominal}

	var out models.Target
	if err := c.do(ctx, http.MethodPut, "/targets/"+url.PathEscape(id)+"/combined", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTarget(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/targets/"+url.PathEscape(id), nil, nil, nil)
}

// --- achievements ---

func (c *Client) GetAchievements(ctx context.Context) ([]*models.Achievement, error) {
	var out []*models.Achievement
	err := c.do(ctx, http.MethodGet, "/achievements", nil, nil, &out)
	return out, err
}

// ViewAchievements fetches one filtered page of achievements.
func (c *Client) ViewAchievements(ctx context.Context, s filter.State) (*Page[*models.Achievement], error) {
	var out Page[*models.Achievement]
	if err := c.do(ctx, http.MethodGet, "/achievements/view", stateQuery(s), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateAchievement(ctx context.Context, targetID string, nominal int64) (*models.Achievement, error) {
	var out models.Achievement
	if err := c.do(ctx, http.MethodPost, "/achievements", nil, achievementBody{targetID, nominal}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateAchievement(ctx context.Context, targetID string, nominal int64) (*models.Achievement, error) {
	var out models.Achievement
	path := "/achievements/" + url.PathEscape(targetID)
	if err := c.do(ctx, http.MethodPut, path, nil, achievementBody{targetID, nominal}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAchievement removes the target's achievement. A target without an
// achievement is not an error.
func (c *Client) DeleteAchievement(ctx context.Context, targetID string) error {
	err := c.do(ctx, http.MethodDelete, "/achievements/"+url.PathEscape(targetID), nil, nil, nil)
	if IsStatus(err, http.StatusNotFound) {
		return nil
	}
	return err
}

var _ consistency.Backend = (*Client)(nil)

// --- analytics ---

func yearQuery(year int) url.Values {
	q := url.Values{}
	if year != 0 {
		q.Set("year", strconv.Itoa(year))
	}
	return q
}

func (c *Client) AvailableYears(ctx context.Context) ([]int, error) {
	var out []int
	err := c.do(ctx, http.MethodGet, "/analytics/years", nil, nil, &out)
	return out, err
}

func (c *Client) MonthlySummary(ctx context.Context, year int) ([]analytics.MonthlyPoint, error) {
	var out []analytics.MonthlyPoint
	err := c.do(ctx, http.MethodGet, "/analytics/summary/monthly", yearQuery(year), nil, &out)
	return out, err
}

func (c *Client) MonthlySummaryByCategory(ctx context.Context, year int) ([]analytics.CategorySeries, error) {
	var out []analytics.CategorySeries
	err := c.do(ctx, http.MethodGet, "/analytics/summary/monthly-by-category", yearQuery(year), nil, &out)
	return out, err
}

// ProductTargetSummary fetches per-product totals, optionally restricted to
// an inclusive month range.
func (c *Client) ProductTargetSummary(ctx context.Context, year int, months *analytics.MonthRange) ([]analytics.ProductTotal, error) {
	q := yearQuery(year)
	if months != nil {
		q.Set("from_month", strconv.Itoa(months.From))
		q.Set("to_month", strconv.Itoa(months.To))
	}
	var out []analytics.ProductTotal
	err := c.do(ctx, http.MethodGet, "/analytics/products/targets", q, nil, &out)
	return out, err
}

// EmployeePerformance fetches one employee's monthly series. An empty
// productID covers every product. Month keys may be numbers or "YYYY-MM"
// strings; the result is numeric and ascending by month.
func (c *Client) EmployeePerformance(ctx context.Context, employeeID string, year int, productID string) ([]analytics.MonthlyPoint, error) {
	q := yearQuery(year)
	if productID != "" {
		q.Set("productId", productID)
	}
	var raw []analytics.RawPerformancePoint
	path := "/analytics/employee/" + url.PathEscape(employeeID) + "/performance"
	if err := c.do(ctx, http.MethodGet, path, q, nil, &raw); err != nil {
		return nil, err
	}
	points, err := analytics.NormalizePerformance(raw)
	if err != nil {
		return nil, fmt.Errorf("normalizing performance of employee %s: %w", employeeID, err)
	}
	return points, nil
}

func (c *Client) TopAchievers(ctx context.Context, limit int) ([]analytics.TopEmployee, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var out []analytics.TopEmployee
	err := c.do(ctx, http.MethodGet, "/analytics/employees/top-achievers", q, nil, &out)
	return out, err
}

// stateQuery encodes the non-zero dimensions of s as view query parameters.
func stateQuery(s filter.State) url.Values {
	q := url.Values{}
	setString := func(key, v string) {
		if v != "" {
			q.Set(key, v)
		}
	}
	setInt := func(key string, v int) {
		if v != 0 {
			q.Set(key, strconv.Itoa(v))
		}
	}
	setString("search", s.Search)
	setInt("year", s.Year)
	setInt("month", s.Month)
	setInt("from_month", s.FromMonth)
	setInt("to_month", s.ToMonth)
	setString("employee", s.EmployeeName)
	setString("product", s.ProductName)
	setString("position", string(s.Position))
	setString("office", s.Office)
	setInt("entry_year", s.EntryYear)
	setString("status", string(s.AchievedStatus))
	setInt("page", s.Page)
	return q
}
