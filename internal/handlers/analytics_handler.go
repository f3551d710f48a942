package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"targetrack/internal/analytics"
	apperrors "targetrack/internal/errors"
	"targetrack/internal/services"
)

// AnalyticsHandler serves the rollups and the leaderboard.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServicer
	now              func() time.Time
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService services.AnalyticsServicer) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService, now: time.Now}
}

// AnalyticsQuery holds the query parameters shared by the analytics endpoints.
// A missing year means the current year; missing range bounds are open.
type AnalyticsQuery struct {
	Year      int    `form:"year" binding:"omitempty,min=1900,max=9999"`
	FromMonth int    `form:"from_month" binding:"omitempty,min=1,max=12"`
	ToMonth   int    `form:"to_month" binding:"omitempty,min=1,max=12"`
	ProductID string `form:"productId" binding:"omitempty,uuid"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

func (h *AnalyticsHandler) bindQuery(c *gin.Context) (AnalyticsQuery, bool) {
	var q AnalyticsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithBindError(c, err)
		return q, false
	}
	if q.Year == 0 {
		q.Year = h.now().Year()
	}
	return q, true
}

// monthRange returns nil when neither bound is set.
func (q AnalyticsQuery) monthRange() (*analytics.MonthRange, error) {
	if q.FromMonth == 0 && q.ToMonth == 0 {
		return nil, nil
	}
	r := &analytics.MonthRange{From: 1, To: 12}
	if q.FromMonth != 0 {
		r.From = q.FromMonth
	}
	if q.ToMonth != 0 {
		r.To = q.ToMonth
	}
	if r.From > r.To {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "from_month must not be after to_month")
	}
	return r, nil
}

// GetYears lists the years that have targets
// @Summary     Years with data
// @Tags        analytics
// @Produce     json
// @Success     200 {array} int
// @Router      /analytics/years [get]
func (h *AnalyticsHandler) GetYears(c *gin.Context) {
	years, err := h.analyticsService.AvailableYears()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, years)
}

// GetMonthlySummary returns the monthly rollup for a year
// @Summary     Monthly summary
// @Tags        analytics
// @Produce     json
// @Param       year query int false "Year (default: current)"
// @Success     200 {array} analytics.MonthlyPoint
// @Router      /analytics/summary/monthly [get]
func (h *AnalyticsHandler) GetMonthlySummary(c *gin.Context) {
	q, ok := h.bindQuery(c)
	if !ok {
		return
	}

	points, err := h.analyticsService.MonthlySummary(q.Year)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

// GetMonthlySummaryByCategory returns one monthly rollup per category
// @Summary     Monthly summary by category
// @Tags        analytics
// @Produce     json
// @Param       year query int false "Year (default: current)"
// @Success     200 {array} analytics.CategorySeries
// @Router      /analytics/summary/monthly-by-category [get]
func (h *AnalyticsHandler) GetMonthlySummaryByCategory(c *gin.Context) {
	q, ok := h.bindQuery(c)
	if !ok {
		return
	}

	series, err := h.analyticsService.MonthlySummaryByCategory(q.Year)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

// GetProductTargets returns target totals per product
// @Summary     Product target totals
// @Tags        analytics
// @Produce     json
// @Param       year       query int false "Year (default: current)"
// @Param       from_month query int false "Range start month"
// @Param       to_month   query int false "Range end month"
// @Success     200 {array} analytics.ProductTotal
// @Failure     400 {object} ErrorResponse "Invalid range"
// @Router      /analytics/products/targets [get]
func (h *AnalyticsHandler) GetProductTargets(c *gin.Context) {
	q, ok := h.bindQuery(c)
	if !ok {
		return
	}
	months, err := q.monthRange()
	if err != nil {
		respondWithError(c, err)
		return
	}

	totals, err := h.analyticsService.ProductTargetSummary(q.Year, months)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}

// GetEmployeePerformance returns one employee's monthly series
// @Summary     Employee performance
// @Tags        analytics
// @Produce     json
// @Param       id        path  string true  "Employee ID"
// @Param       year      query int    false "Year (default: current)"
// @Param       productId query string false "Restrict to one product"
// @Success     200 {array} analytics.MonthlyPoint
// @Failure     404 {object} ErrorResponse "Employee not found"
// @Router      /analytics/employee/{id}/performance [get]
func (h *AnalyticsHandler) GetEmployeePerformance(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	q, ok := h.bindQuery(c)
	if !ok {
		return
	}

	points, err := h.analyticsService.EmployeePerformance(id, q.Year, q.ProductID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

// GetTopAchievers returns the leaderboard
// @Summary     Top achievers
// @Tags        analytics
// @Produce     json
// @Param       limit query int false "Number of rows (default 5)"
// @Success     200 {array} analytics.TopEmployee
// @Router      /analytics/employees/top-achievers [get]
func (h *AnalyticsHandler) GetTopAchievers(c *gin.Context) {
	q, ok := h.bindQuery(c)
	if !ok {
		return
	}

	top, err := h.analyticsService.TopEmployees(q.Limit)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, top)
}
