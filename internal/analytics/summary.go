// Package analytics turns flat target collections into monthly rollups,
// per-category and per-product summaries, employee performance series and
// the top-performer leaderboard. All functions are pure and never return
// nil slices.
package analytics

import (
	"sort"

	"targetrack/internal/models"
)

// UncategorizedName labels targets whose product or category is unknown.
const UncategorizedName = "Uncategorized"

// MonthlyPoint is one month of a rollup.
type MonthlyPoint struct {
	Month       int     `json:"month"`
	Target      int64   `json:"target"`
	Achievement int64   `json:"achievement"`
	Percentage  float64 `json:"percentage"`
}

// CategorySeries is the monthly rollup of a single category.
type CategorySeries struct {
	CategoryName string         `json:"category_name"`
	Months       []MonthlyPoint `json:"months"`
}

// ProductTotal is the quota allocated to one product.
type ProductTotal struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	TotalNominal int64  `json:"total_nominal"`
	CategoryName string `json:"category_name"`
}

// MonthRange is an inclusive month interval.
type MonthRange struct {
	From int
	To   int
}

// Contains reports whether month lies within the range.
func (r MonthRange) Contains(month int) bool {
	return month >= r.From && month <= r.To
}

// rollup sums targets into per-month buckets. Months with no targets get no
// bucket; the result is sorted by month.
func rollup(targets []*models.Target) []MonthlyPoint {
	buckets := make(map[int]*MonthlyPoint)
	for _, t := range targets {
		p, ok := buckets[t.Month]
		if !ok {
			p = &MonthlyPoint{Month: t.Month}
			buckets[t.Month] = p
		}
		p.Target += t.Nominal
		p.Achievement += t.AchievementNominal()
	}

	points := make([]MonthlyPoint, 0, len(buckets))
	for _, p := range buckets {
		p.Percentage = models.Percentage(p.Target, p.Achievement)
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Month < points[j].Month })
	return points
}

func inYear(targets []*models.Target, year int) []*models.Target {
	out := make([]*models.Target, 0, len(targets))
	for _, t := range targets {
		if t.Year == year {
			out = append(out, t)
		}
	}
	return out
}

// MonthlySummary rolls up every target of year by month.
func MonthlySummary(targets []*models.Target, year int) []MonthlyPoint {
	return rollup(inYear(targets, year))
}

// MonthlySummaryByCategory groups the year's targets by product category
// and rolls each group up by month. Series are ordered by category name.
func MonthlySummaryByCategory(targets []*models.Target, year int) []CategorySeries {
	groups := make(map[string][]*models.Target)
	for _, t := range inYear(targets, year) {
		name := t.Product.CategoryName()
		if name == "" {
			name = UncategorizedName
		}
		groups[name] = append(groups[name], t)
	}

	series := make([]CategorySeries, 0, len(groups))
	for name, group := range groups {
		series = append(series, CategorySeries{CategoryName: name, Months: rollup(group)})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].CategoryName < series[j].CategoryName })
	return series
}

// ProductTargetSummary sums target nominal per product for year, optionally
// restricted to a month range. It measures quota allocation, so achievement
// is deliberately not involved. Results are ordered by total descending,
// then product name.
func ProductTargetSummary(targets []*models.Target, year int, months *MonthRange) []ProductTotal {
	totals := make(map[string]*ProductTotal)
	for _, t := range inYear(targets, year) {
		if months != nil && !months.Contains(t.Month) {
			continue
		}
		pt, ok := totals[t.ProductID]
		if !ok {
			category := t.Product.CategoryName()
			if category == "" {
				category = UncategorizedName
			}
			pt = &ProductTotal{
				ProductID:    t.ProductID,
				ProductName:  t.ProductName(),
				CategoryName: category,
			}
			totals[t.ProductID] = pt
		}
		pt.TotalNominal += t.Nominal
	}

	out := make([]ProductTotal, 0, len(totals))
	for _, pt := range totals {
		out = append(out, *pt)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalNominal != out[j].TotalNominal {
			return out[i].TotalNominal > out[j].TotalNominal
		}
		if out[i].ProductName != out[j].ProductName {
			return out[i].ProductName < out[j].ProductName
		}
		return out[i].ProductID < out[j].ProductID
	})
	return out
}

// EmployeePerformance rolls up one employee's targets for year by month.
// An empty productID includes every product.
func EmployeePerformance(targets []*models.Target, employeeID string, year int, productID string) []MonthlyPoint {
	mine := make([]*models.Target, 0)
	for _, t := range inYear(targets, year) {
		if t.EmployeeID != employeeID {
			continue
		}
		if productID != "" && t.ProductID != productID {
			continue
		}
		mine = append(mine, t)
	}
	return rollup(mine)
}

// AvailableYears returns the distinct years present in targets, ascending.
func AvailableYears(targets []*models.Target) []int {
	seen := make(map[int]struct{})
	years := make([]int, 0)
	for _, t := range targets {
		if _, ok := seen[t.Year]; ok {
			continue
		}
		seen[t.Year] = struct{}{}
		years = append(years, t.Year)
	}
	sort.Ints(years)
	return years
}
