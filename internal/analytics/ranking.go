package analytics

import (
	"sort"

	"targetrack/internal/models"
)

// DefaultTopN is the leaderboard size used when callers pass n <= 0.
const DefaultTopN = 5

// TopEmployee is one leaderboard row.
type TopEmployee struct {
	EmployeeID       string  `json:"employee_id"`
	Name             string  `json:"name"`
	OfficeLocation   string  `json:"office_location"`
	TotalTarget      int64   `json:"total_target"`
	TotalAchievement int64   `json:"total_achievement"`
	AchievementRate  float64 `json:"achievement_rate"`
}

// TopEmployees ranks employees by achievement rate over all their targets
// and returns the first n. Ties are broken by total achievement
// (descending), then name, then employee ID, so the order is deterministic.
func TopEmployees(targets []*models.Target, n int) []TopEmployee {
	if n <= 0 {
		n = DefaultTopN
	}

	rows := make(map[string]*TopEmployee)
	for _, t := range targets {
		row, ok := rows[t.EmployeeID]
		if !ok {
			row = &TopEmployee{EmployeeID: t.EmployeeID}
			rows[t.EmployeeID] = row
		}
		if t.Employee != nil && row.Name == "" {
			row.Name = t.Employee.Name
			row.OfficeLocation = t.Employee.OfficeLocation
		}
		row.TotalTarget += t.Nominal
		row.TotalAchievement += t.AchievementNominal()
	}

	board := make([]TopEmployee, 0, len(rows))
	for _, row := range rows {
		row.AchievementRate = models.Percentage(row.TotalTarget, row.TotalAchievement)
		board = append(board, *row)
	}

	sort.Slice(board, func(i, j int) bool {
		a, b := board[i], board[j]
		if a.AchievementRate != b.AchievementRate {
			return a.AchievementRate > b.AchievementRate
		}
		if a.TotalAchievement != b.TotalAchievement {
			return a.TotalAchievement > b.TotalAchievement
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.EmployeeID < b.EmployeeID
	})

	if len(board) > n {
		board = board[:n]
	}
	return board
}

// ActiveTargets drops targets whose employee has been soft-deleted. The
// leaderboard only ranks current staff; rollups keep every target.
func ActiveTargets(targets []*models.Target) []*models.Target {
	active := make([]*models.Target, 0, len(targets))
	for _, t := range targets {
		if t.Employee != nil && t.Employee.DeletedAt.Valid {
			continue
		}
		active = append(active, t)
	}
	return active
}
