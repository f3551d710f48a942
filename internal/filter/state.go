// Package filter implements the predicate combinator behind every list
// view: an immutable State describing the active dimensions, predicate
// builders per record type, and deterministic pagination.
package filter

import "targetrack/internal/models"

// AchievedStatus narrows targets by whether their goal was met.
type AchievedStatus string

const (
	StatusAll         AchievedStatus = ""
	StatusAchieved    AchievedStatus = "achieved"
	StatusNotAchieved AchievedStatus = "not-achieved"
)

// State is the full set of filter dimensions for a list view. The zero
// value of every field means "all". State is a value type: the With
// methods return modified copies and never mutate the receiver.
type State struct {
	Search         string          `json:"search,omitempty" form:"search"`
	Year           int             `json:"year,omitempty" form:"year" binding:"omitempty,min=1900,max=9999"`
	Month          int             `json:"month,omitempty" form:"month" binding:"omitempty,min=1,max=12"`
	FromMonth      int             `json:"from_month,omitempty" form:"from_month" binding:"omitempty,min=1,max=12"`
	ToMonth        int             `json:"to_month,omitempty" form:"to_month" binding:"omitempty,min=1,max=12"`
	EmployeeName   string          `json:"employee,omitempty" form:"employee"`
	ProductName    string          `json:"product,omitempty" form:"product"`
	Position       models.Position `json:"position,omitempty" form:"position" binding:"omitempty,position"`
	Office         string          `json:"office,omitempty" form:"office"`
	EntryYear      int             `json:"entry_year,omitempty" form:"entry_year" binding:"omitempty,min=1900,max=9999"`
	AchievedStatus AchievedStatus  `json:"status,omitempty" form:"status" binding:"omitempty,achieved_status"`
	Page           int             `json:"page,omitempty" form:"page" binding:"omitempty,min=1"`
}

// New returns an unfiltered state positioned on the first page.
func New() State {
	return State{Page: 1}
}

// CurrentPage returns the page, treating an unset page as 1.
func (s State) CurrentPage() int {
	if s.Page < 1 {
		return 1
	}
	return s.Page
}

func (s State) WithSearch(search string) State {
	s.Search = search
	s.Page = 1
	return s
}

func (s State) WithYear(year int) State {
	s.Year = year
	s.Page = 1
	return s
}

func (s State) WithMonth(month int) State {
	s.Month = month
	s.Page = 1
	return s
}

// WithMonthRange sets an inclusive month range. Pass 0 for a side to leave
// it open.
func (s State) WithMonthRange(from, to int) State {
	s.FromMonth = from
	s.ToMonth = to
	s.Page = 1
	return s
}

func (s State) WithEmployeeName(name string) State {
	s.EmployeeName = name
	s.Page = 1
	return s
}

func (s State) WithProductName(name string) State {
	s.ProductName = name
	s.Page = 1
	return s
}

func (s State) WithOffice(office string) State {
	s.Office = office
	s.Page = 1
	return s
}

func (s State) WithEntryYear(year int) State {
	s.EntryYear = year
	s.Page = 1
	return s
}

func (s State) WithAchievedStatus(status AchievedStatus) State {
	s.AchievedStatus = status
	s.Page = 1
	return s
}

// WithPosition switches the position tab. Switching tabs clears every
// other dimension.
func (s State) WithPosition(position models.Position) State {
	return State{Position: position, Page: 1}
}

// GoTo moves to page when it lies in [1, totalPages]. Out-of-range
// requests leave the state unchanged.
func (s State) GoTo(page, totalPages int) State {
	if page < 1 || page > totalPages {
		return s
	}
	s.Page = page
	return s
}
