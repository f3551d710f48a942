package filter

import (
	"strconv"
	"strings"
	"time"

	"targetrack/internal/models"
	"targetrack/internal/pagination"
)

// Predicate reports whether a record passes one filter dimension.
type Predicate[T any] func(T) bool

// And combines predicates with logical AND. With no predicates every
// record passes.
func And[T any](preds ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range preds {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// Apply returns the records that pass p, preserving input order. The result
// is never nil.
func Apply[T any](items []T, p Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, v := range items {
		if p(v) {
			out = append(out, v)
		}
	}
	return out
}

// Paginate cuts the state's page out of the filtered records using the
// view page size. The returned state carries the page clamped into range.
func Paginate[T any](items []T, s State) (pagination.PageResponse[T], State) {
	resp := pagination.Slice(items, pagination.PageRequest{
		Page:     s.CurrentPage(),
		PageSize: pagination.ViewPageSize,
	})
	s.Page = resp.Page
	return resp, s
}

// containsFold reports whether any field contains needle, ignoring case.
func containsFold(needle string, fields ...string) bool {
	needle = strings.ToLower(needle)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func periodMatcher(s State) []Predicate[*models.Target] {
	var preds []Predicate[*models.Target]
	if s.Year != 0 {
		preds = append(preds, func(t *models.Target) bool { return t.Year == s.Year })
	}
	if s.Month != 0 {
		preds = append(preds, func(t *models.Target) bool { return t.Month == s.Month })
	}
	if s.FromMonth != 0 || s.ToMonth != 0 {
		preds = append(preds, func(t *models.Target) bool { return inMonthRange(s, t.Year, t.Month) })
	}
	return preds
}

// inMonthRange compares the record's period against the range bounds. The
// bounds take the filter year, or the record's own year when no year is
// selected.
func inMonthRange(s State, year, month int) bool {
	record := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	boundYear := s.Year
	if boundYear == 0 {
		boundYear = year
	}
	if s.FromMonth != 0 {
		from := time.Date(boundYear, time.Month(s.FromMonth), 1, 0, 0, 0, 0, time.UTC)
		if record.Before(from) {
			return false
		}
	}
	if s.ToMonth != 0 {
		to := time.Date(boundYear, time.Month(s.ToMonth), 1, 0, 0, 0, 0, time.UTC)
		if record.After(to) {
			return false
		}
	}
	return true
}

// Targets builds the predicate for target list views.
func Targets(s State) Predicate[*models.Target] {
	preds := periodMatcher(s)

	if search := strings.TrimSpace(s.Search); search != "" {
		preds = append(preds, func(t *models.Target) bool {
			return containsFold(search,
				t.EmployeeName(),
				t.ProductName(),
				strconv.Itoa(t.Year),
				models.MonthName(t.Month),
			)
		})
	}
	if s.EmployeeName != "" {
		preds = append(preds, func(t *models.Target) bool { return t.EmployeeName() == s.EmployeeName })
	}
	if s.ProductName != "" {
		preds = append(preds, func(t *models.Target) bool { return t.ProductName() == s.ProductName })
	}
	if s.Position != "" {
		preds = append(preds, func(t *models.Target) bool {
			return t.Employee != nil && t.Employee.Position == s.Position
		})
	}
	if s.Office != "" {
		preds = append(preds, func(t *models.Target) bool {
			return t.Employee != nil && t.Employee.OfficeLocation == s.Office
		})
	}
	switch s.AchievedStatus {
	case StatusAchieved:
		preds = append(preds, func(t *models.Target) bool { return models.Achieved(t) })
	case StatusNotAchieved:
		preds = append(preds, func(t *models.Target) bool { return !models.Achieved(t) })
	}

	return And(preds...)
}

// Achievements builds the predicate for achievement list views. Every
// dimension is evaluated against the achievement's target; an achievement
// whose target was not loaded fails any active dimension.
func Achievements(s State) Predicate[*models.Achievement] {
	matchTarget := Targets(s)
	active := s.hasTargetDimensions()
	return func(a *models.Achievement) bool {
		if a.Target == nil {
			return !active
		}
		view := *a.Target
		view.Achievement = &models.Achievement{Base: a.Base, TargetID: a.TargetID, Nominal: a.Nominal}
		return matchTarget(&view)
	}
}

func (s State) hasTargetDimensions() bool {
	return strings.TrimSpace(s.Search) != "" || s.Year != 0 || s.Month != 0 ||
		s.FromMonth != 0 || s.ToMonth != 0 || s.EmployeeName != "" || s.ProductName != "" ||
		s.Position != "" || s.Office != "" || s.AchievedStatus != StatusAll
}

// Employees builds the predicate for employee list views. Search matches
// name, position and office location.
func Employees(s State) Predicate[*models.Employee] {
	var preds []Predicate[*models.Employee]

	if search := strings.TrimSpace(s.Search); search != "" {
		preds = append(preds, func(e *models.Employee) bool {
			return containsFold(search, e.Name, string(e.Position), e.OfficeLocation)
		})
	}
	if s.Position != "" {
		preds = append(preds, func(e *models.Employee) bool { return e.Position == s.Position })
	}
	if s.Office != "" {
		preds = append(preds, func(e *models.Employee) bool { return e.OfficeLocation == s.Office })
	}
	if s.EntryYear != 0 {
		preds = append(preds, func(e *models.Employee) bool { return e.EntryDate.Year() == s.EntryYear })
	}

	return And(preds...)
}
