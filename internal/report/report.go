// Package report builds the terminal dashboard: it fetches targets from the
// API, runs them through the aggregation and ranking engines and renders
// the result as tables.
package report

import (
	"context"
	"fmt"

	"targetrack/internal/analytics"
	"targetrack/internal/models"
)

// Source supplies the flat target list the dashboard is computed from.
type Source interface {
	GetTargets(ctx context.Context) ([]*models.Target, error)
}

// Totals is the year-wide sum of all monthly points.
type Totals struct {
	Target      int64
	Achievement int64
	Percentage  float64
}

// Dashboard is everything the report prints for one year.
type Dashboard struct {
	Year       int
	Totals     Totals
	Monthly    []analytics.MonthlyPoint
	ByCategory []analytics.CategorySeries
	Products   []analytics.ProductTotal
	Top        []analytics.TopEmployee
}

// Build computes the dashboard for year from targets. The leaderboard
// covers every year and skips soft-deleted employees, as the API's does.
func Build(targets []*models.Target, year, topN int) *Dashboard {
	d := &Dashboard{
		Year:       year,
		Monthly:    analytics.MonthlySummary(targets, year),
		ByCategory: analytics.MonthlySummaryByCategory(targets, year),
		Products:   analytics.ProductTargetSummary(targets, year, nil),
		Top:        analytics.TopEmployees(analytics.ActiveTargets(targets), topN),
	}
	for _, p := range d.Monthly {
		d.Totals.Target += p.Target
		d.Totals.Achievement += p.Achievement
	}
	d.Totals.Percentage = models.Percentage(d.Totals.Target, d.Totals.Achievement)
	return d
}

// Load fetches targets from src and builds the dashboard.
func Load(ctx context.Context, src Source, year, topN int) (*Dashboard, error) {
	targets, err := src.GetTargets(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching targets: %w", err)
	}
	return Build(targets, year, topN), nil
}
